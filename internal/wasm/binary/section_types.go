package binary

import (
	"github.com/gowasm/wasmencode/api"
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

const (
	typeRecGroup     = 0x4e
	typeSubFinal     = 0x4f
	typeSubOpen      = 0x50
	typeArrayPrefix  = 0x5e
	typeStructPrefix = 0x5f
	typeFuncPrefix   = 0x60
)

// writeTypesSection builds the types section body: one entry per function
// signature (in function order, so function index i's signature lands at
// type index i), followed by one entry per custom type. Returns nil when
// there is nothing to emit, so the section is omitted entirely.
func writeTypesSection(ctx *wasm.Context, m *wasm.Module) (*wasm.Sink, error) {
	importSigs := 0
	for _, imp := range m.Imports {
		if imp.Kind == api.ExternalKindFunc {
			importSigs++
		}
	}
	if importSigs == 0 && len(m.Functions) == 0 && len(m.CustomTypes) == 0 {
		return nil, nil
	}
	sink := wasm.NewSink(64)
	sink.AppendMany(leb128.EncodeUint32(uint32(importSigs+len(m.Functions)+len(m.CustomTypes)))...)

	for _, imp := range m.Imports {
		if imp.Kind == api.ExternalKindFunc {
			encodeFunctionSignature(sink, imp.FuncSignature)
		}
	}
	for _, fn := range m.Functions {
		encodeFunctionSignature(sink, fn.Signature())
	}
	for _, ct := range m.CustomTypes {
		if err := encodeRecType(sink, ctx, ct.Rec); err != nil {
			return nil, err
		}
	}
	return sink, nil
}

func encodeFunctionSignature(sink *wasm.Sink, sig wasm.FunctionSignature) {
	sink.AppendOne(typeFuncPrefix)
	encodeValueTypeList(sink, sig.Params)
	encodeValueTypeList(sink, sig.Results)
}

func encodeRecType(sink *wasm.Sink, ctx *wasm.Context, rec wasm.RecType) error {
	if len(rec.Subtypes) != 1 {
		sink.AppendOne(typeRecGroup)
		sink.AppendMany(leb128.EncodeUint32(uint32(len(rec.Subtypes)))...)
	}
	for _, st := range rec.Subtypes {
		if err := encodeSubType(sink, ctx, st); err != nil {
			return err
		}
	}
	return nil
}

func encodeSubType(sink *wasm.Sink, ctx *wasm.Context, st wasm.SubType) error {
	if len(st.Supertypes) > 0 {
		if st.Final {
			sink.AppendOne(typeSubFinal)
		} else {
			sink.AppendOne(typeSubOpen)
		}
		sink.AppendMany(leb128.EncodeUint32(uint32(len(st.Supertypes)))...)
		for _, name := range st.Supertypes {
			idx, err := ctx.ResolveType(name)
			if err != nil {
				return err
			}
			sink.AppendMany(leb128.EncodeUint32(idx)...)
		}
	}
	return encodeComposite(sink, st.Composite)
}

func encodeComposite(sink *wasm.Sink, c wasm.CompositeType) error {
	switch v := c.(type) {
	case wasm.ArrayType:
		sink.AppendOne(typeArrayPrefix)
		encodeFieldType(sink, v.Field)
	case wasm.StructType:
		sink.AppendOne(typeStructPrefix)
		sink.AppendMany(leb128.EncodeUint32(uint32(len(v.Fields)))...)
		for _, f := range v.Fields {
			encodeFieldType(sink, f)
		}
	case wasm.FunctionSignature:
		encodeFunctionSignature(sink, v)
	default:
		return &wasm.MalformedInputError{What: "composite type", Detail: "unknown composite type shape"}
	}
	return nil
}

func encodeFieldType(sink *wasm.Sink, f wasm.FieldType) {
	sink.AppendOne(f.Storage)
	if f.Mutable {
		sink.AppendOne(0x01)
	} else {
		sink.AppendOne(0x00)
	}
}
