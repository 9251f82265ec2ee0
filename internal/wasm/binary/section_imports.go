package binary

import (
	"github.com/gowasm/wasmencode/api"
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

func encodeName(sink *wasm.Sink, s string) {
	sink.AppendMany(leb128.EncodeUint32(uint32(len(s)))...)
	sink.AppendMany([]byte(s)...)
}

// writeImportsSection builds the imports section body.
func writeImportsSection(ctx *wasm.Context, m *wasm.Module) (*wasm.Sink, error) {
	if len(m.Imports) == 0 {
		return nil, nil
	}
	sink := wasm.NewSink(64)
	sink.AppendMany(leb128.EncodeUint32(uint32(len(m.Imports)))...)

	for _, imp := range m.Imports {
		encodeName(sink, imp.ModuleName)
		encodeName(sink, imp.Name)
		sink.AppendOne(imp.Kind)
		switch imp.Kind {
		case api.ExternalKindFunc:
			idx, err := ctx.ResolveType(imp.EntityName)
			if err != nil {
				return nil, err
			}
			sink.AppendMany(leb128.EncodeUint32(idx)...)
		case api.ExternalKindTable:
			if err := encodeRefType(sink, ctx, imp.TableRefType); err != nil {
				return nil, err
			}
			encodeLimits(sink, imp.TableLimits)
		case api.ExternalKindMemory:
			encodeLimits(sink, imp.MemoryLimits)
		case api.ExternalKindGlobal:
			sink.AppendOne(imp.GlobalType)
			if imp.GlobalMutable {
				sink.AppendOne(0x01)
			} else {
				sink.AppendOne(0x00)
			}
		default:
			return nil, &wasm.MalformedInputError{What: "import kind", Detail: "unknown external kind"}
		}
	}
	return sink, nil
}
