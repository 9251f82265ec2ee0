// Package wasmencode serializes an in-memory, name-resolved module
// definition into canonical WebAssembly 2.0 binary format. Every
// cross-reference in the definition (functions, types, tables, memories,
// globals, elements, data, locals, block labels) is a symbolic name,
// resolved to a 0-based index at encode time; see the op subpackage for the
// instruction DSL used to build a function's body.
package wasmencode

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
	"github.com/gowasm/wasmencode/internal/wasm/binary"
)

// Re-exported module definition schema: the public shapes callers build a
// Module out of. These are the same types internal/wasm works with
// directly, aliased here so the root package is the only import most
// callers need.
type (
	Module            = wasm.Module
	Function          = wasm.Function
	Global            = wasm.Global
	Table             = wasm.Table
	Memory            = wasm.Memory
	Import            = wasm.Import
	ElementSegment    = wasm.ElementSegment
	ElementMode       = wasm.ElementMode
	DataSegment       = wasm.DataSegment
	DataMode          = wasm.DataMode
	CustomSection     = wasm.CustomSection
	CustomType        = wasm.CustomType
	RecType           = wasm.RecType
	SubType           = wasm.SubType
	CompositeType     = wasm.CompositeType
	ArrayType         = wasm.ArrayType
	StructType        = wasm.StructType
	FunctionSignature = wasm.FunctionSignature
	FieldType         = wasm.FieldType
	ValueType         = wasm.ValueType
	NamedValueType    = wasm.NamedValueType
	RefType           = wasm.RefType
	Limits            = wasm.Limits
	Instruction       = wasm.Instruction
)

const (
	ElementModeActiveTableZeroFuncs = wasm.ElementModeActiveTableZeroFuncs
	ElementModePassiveFuncs         = wasm.ElementModePassiveFuncs
	ElementModeActiveFuncs          = wasm.ElementModeActiveFuncs
	ElementModeDeclarativeFuncs     = wasm.ElementModeDeclarativeFuncs
	ElementModeActiveTableZeroExprs = wasm.ElementModeActiveTableZeroExprs
	ElementModePassiveExprs         = wasm.ElementModePassiveExprs
	ElementModeActiveExprs          = wasm.ElementModeActiveExprs
	ElementModeDeclarativeExprs     = wasm.ElementModeDeclarativeExprs

	DataModeActiveMemoryZero = wasm.DataModeActiveMemoryZero
	DataModePassive          = wasm.DataModePassive
	DataModeActive           = wasm.DataModeActive
)

// Error kinds surfaced by the encoder. All three carry the offending
// mnemonic or name so the caller can locate it in the source module
// definition; see internal/wasm/errors.go for the Error() text each
// produces.
type (
	UnresolvedNameError = wasm.UnresolvedNameError
	InvalidValueError   = wasm.InvalidValueError
	MalformedInputError = wasm.MalformedInputError
)

// Sentinel errors for use with errors.Is against the values above.
var (
	ErrUnresolvedName = wasm.ErrUnresolvedName
	ErrInvalidValue   = wasm.ErrInvalidValue
	ErrMalformedInput = wasm.ErrMalformedInput
)

// EncodeModule produces the full .wasm bytes for definition, using the
// default EncoderConfig.
func EncodeModule(definition *Module) ([]byte, error) {
	return NewEncoderConfig().EncodeModule(definition)
}

// EncodeModule produces the full .wasm bytes for definition under this
// configuration's sink-capacity hint and logger.
func (c *EncoderConfig) EncodeModule(definition *Module) ([]byte, error) {
	return binary.EncodeModule(definition, c.sinkCapacityHint, c.logger)
}

// EncodeUint encodes v as unsigned LEB128, for callers assembling an
// initializer expression's raw bytes by hand instead of through Op.
func EncodeUint(v uint64) []byte {
	return leb128.EncodeUint64(v)
}

// EncodeInt encodes v as signed LEB128, for callers assembling an
// initializer expression's raw bytes by hand instead of through Op.
func EncodeInt(v int64) []byte {
	return leb128.EncodeInt64(v)
}

// Opcode is the numeric identifier of an instruction mnemonic.
type Opcode = binary.Opcode

// OpcodeTable returns a fresh copy of the mnemonic -> numeric opcode map
// the encoder uses internally.
func OpcodeTable() map[string]Opcode {
	return binary.OpcodeTable()
}
