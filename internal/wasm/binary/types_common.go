package binary

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

const (
	refTypeLongNullable    = 0x63
	refTypeLongNonNullable = 0x64
)

// encodeLimits writes the resizable-limits pair shared by table and memory
// definitions.
func encodeLimits(sink *wasm.Sink, l wasm.Limits) {
	if l.Max != nil {
		sink.AppendOne(0x01)
		sink.AppendMany(leb128.EncodeUint32(l.Min)...)
		sink.AppendMany(leb128.EncodeUint32(*l.Max)...)
		return
	}
	sink.AppendOne(0x00)
	sink.AppendMany(leb128.EncodeUint32(l.Min)...)
}

// encodeRefType writes a reference type.
// The short form (a single heap-type-id byte) is used whenever the type is
// not long; concrete type indices always use the long form, since a bare
// index byte in the value-type position is ambiguous with the predefined
// heap-type ids.
func encodeRefType(sink *wasm.Sink, ctx *wasm.Context, rt wasm.RefType) error {
	if !rt.Long {
		sink.AppendOne(rt.HeapType)
		return nil
	}
	if rt.Nullable {
		sink.AppendOne(refTypeLongNullable)
	} else {
		sink.AppendOne(refTypeLongNonNullable)
	}
	if !rt.ByTypeName {
		sink.AppendOne(rt.HeapType)
		return nil
	}
	idx, err := ctx.ResolveType(rt.TypeName)
	if err != nil {
		return err
	}
	sink.AppendMany(leb128.EncodeInt64(int64(idx))...)
	return nil
}

// encodeValueTypeList writes a length-prefixed array of raw value-type
// bytes, used for function parameter/result lists.
func encodeValueTypeList(sink *wasm.Sink, types []wasm.ValueType) {
	sink.AppendMany(leb128.EncodeUint32(uint32(len(types)))...)
	for _, t := range types {
		sink.AppendOne(t)
	}
}
