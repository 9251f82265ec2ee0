// Package op is the instruction construction DSL: one function per
// instruction family that returns a wasm.Instruction (or a block-structured
// one carrying a nested body), so a caller builds a module's code the way
// they would write WebAssembly text format, but in Go, with symbolic names
// standing in for every index space until encode time.
//
// Every cross-reference (a local, function, type, table, memory, global,
// element segment, data segment, or block label) is a string here. The
// encoder resolves each one against the module's Context when it emits the
// enclosing instruction, and reports an UnresolvedNameError if the name was
// never registered.
package op

import (
	"math/big"

	"github.com/gowasm/wasmencode/api"
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// Seq flattens a mix of Instruction, []Instruction and nested slices thereof
// into one ordered slice, depth-first. Used to assemble a function body or a
// block's instructions from literal values and previously-built slices
// without manual concatenation.
func Seq(items ...interface{}) []wasm.Instruction {
	return wasm.Flatten(items...)
}

// Op constructs a bare instruction with no immediate operand from its raw
// mnemonic. It is the generic escape hatch covering any mnemonic in the
// opcode table that does not have a dedicated constructor below (most of
// the SIMD, GC, and atomic surface). The encoder resolves the mnemonic
// against its opcode table when it emits the instruction, and reports a
// MalformedInputError for an unknown one.
func Op(mnemonic string) wasm.Instruction {
	return wasm.Instruction{Mnemonic: mnemonic}
}

// OpWithUintImmediate is Op's immediate-carrying counterpart for an
// uncovered mnemonic whose sole immediate is a single unsigned LEB128
// value: the generic escape hatch for the arbitrary-precision half of the
// LEB128 codec's public contract, for a value too wide for a machine
// uint64 (v must be non-negative).
func OpWithUintImmediate(mnemonic string, v *big.Int) wasm.Instruction {
	return withImmediate(mnemonic, func(sink *wasm.Sink, ctx *wasm.Context) error {
		sink.AppendMany(leb128.EncodeUintBig(v)...)
		return nil
	})
}

// OpWithIntImmediate is OpWithUintImmediate for a signed LEB128 immediate.
func OpWithIntImmediate(mnemonic string, v *big.Int) wasm.Instruction {
	return withImmediate(mnemonic, func(sink *wasm.Sink, ctx *wasm.Context) error {
		sink.AppendMany(leb128.EncodeIntBig(v)...)
		return nil
	})
}

// leaf is the internal equivalent of Op, used by the named constructors
// below so their own mnemonic string literal is the single source of truth.
func leaf(mnemonic string) wasm.Instruction {
	return wasm.Instruction{Mnemonic: mnemonic}
}

// withImmediate builds a leaf instruction whose immediate bytes depend on
// the resolution context (a name lookup) or are pure data (a constant).
func withImmediate(mnemonic string, immediate func(sink *wasm.Sink, ctx *wasm.Context) error) wasm.Instruction {
	return wasm.Instruction{Mnemonic: mnemonic, Immediate: immediate}
}

// ValueType re-exports api.ValueType so callers building block result types
// need not import the api package directly.
type ValueType = api.ValueType

const (
	I32       = api.ValueTypeI32
	I64       = api.ValueTypeI64
	F32       = api.ValueTypeF32
	F64       = api.ValueTypeF64
	V128      = api.ValueTypeV128
	Funcref   = api.ValueTypeFuncref
	Externref = api.ValueTypeExternref
)
