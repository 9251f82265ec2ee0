// Package api defines the constants shared between the instruction DSL and
// the module encoder: value types, reference-type heap ids, and the kinds
// used for imports/exports.
package api

import "fmt"

// ValueType is a byte read from the WebAssembly binary format that describes
// the shape of a local, parameter, result, or global.
//
// See https://webassembly.github.io/spec/core/binary/types.html#binary-valtype
type ValueType = byte

const (
	// ValueTypeI32 is a 32-bit integer.
	ValueTypeI32 ValueType = 0x7f
	// ValueTypeI64 is a 64-bit integer.
	ValueTypeI64 ValueType = 0x7e
	// ValueTypeF32 is a 32-bit floating point number.
	ValueTypeF32 ValueType = 0x7d
	// ValueTypeF64 is a 64-bit floating point number.
	ValueTypeF64 ValueType = 0x7c
	// ValueTypeV128 is a 128-bit vector type, introduced by the SIMD proposal.
	ValueTypeV128 ValueType = 0x7b

	// ValueTypeFuncref is a short-form reference to a function.
	ValueTypeFuncref ValueType = 0x70
	// ValueTypeExternref is a short-form reference to a host value.
	ValueTypeExternref ValueType = 0x6f
)

// StorageType additionally includes the packed storage shapes legal only
// inside a GC proposal field definition (struct/array element types).
type StorageType = byte

const (
	// StorageTypeI8 packs an i32 into a single byte when stored in a struct
	// or array field.
	StorageTypeI8 StorageType = 0x78
	// StorageTypeI16 packs an i32 into two bytes when stored in a struct or
	// array field.
	StorageTypeI16 StorageType = 0x77
)

// ValueTypeName returns the WebAssembly text format name of t, or t's
// hexadecimal byte value (e.g. "0x40") for an undefined value.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeFuncref:
		return "funcref"
	case ValueTypeExternref:
		return "externref"
	}
	return fmt.Sprintf("%#x", t)
}

// HeapType identifies the category of a reference type, either one of the
// predefined abstract heap types below or, for "long" reference-type forms,
// a user-defined composite type index instead.
//
// See https://webassembly.github.io/gc/core/binary/types.html#heap-types
type HeapType = byte

const (
	HeapTypeNoFunc   HeapType = 0x73
	HeapTypeNoExtern HeapType = 0x72
	HeapTypeNone     HeapType = 0x71
	HeapTypeFunc     HeapType = 0x70
	HeapTypeExtern   HeapType = 0x6f
	HeapTypeAny      HeapType = 0x6e
	HeapTypeEq       HeapType = 0x6d
	HeapTypeI31      HeapType = 0x6c
	HeapTypeStruct   HeapType = 0x6b
	HeapTypeArray    HeapType = 0x6a
)

// Long reference-type prefix bytes: nullable vs. non-nullable, each followed
// by either a HeapType id byte or a signed LEB128 type index.
const (
	RefTypePrefixNullable    byte = 0x63
	RefTypePrefixNonNullable byte = 0x64
)

// ExternalKind classifies an import or export entry.
//
// See https://webassembly.github.io/spec/core/binary/modules.html#binary-importdesc
type ExternalKind = byte

const (
	ExternalKindFunc   ExternalKind = 0x00
	ExternalKindTable  ExternalKind = 0x01
	ExternalKindMemory ExternalKind = 0x02
	ExternalKindGlobal ExternalKind = 0x03
)

// ExternalKindName returns the WebAssembly text format field name for k.
func ExternalKindName(k ExternalKind) string {
	switch k {
	case ExternalKindFunc:
		return "func"
	case ExternalKindTable:
		return "table"
	case ExternalKindMemory:
		return "memory"
	case ExternalKindGlobal:
		return "global"
	}
	return fmt.Sprintf("%#x", k)
}
