package binary

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// writeGlobalsSection builds the globals section: per entry, a value type,
// a mutability byte, and the constant initializer expression (which the
// caller terminates with an explicit end instruction).
func writeGlobalsSection(ctx *wasm.Context, m *wasm.Module) (*wasm.Sink, error) {
	if len(m.Globals) == 0 {
		return nil, nil
	}
	sink := wasm.NewSink(64)
	sink.AppendMany(leb128.EncodeUint32(uint32(len(m.Globals)))...)
	for _, g := range m.Globals {
		sink.AppendOne(g.Type)
		if g.Mutable {
			sink.AppendOne(0x01)
		} else {
			sink.AppendOne(0x00)
		}
		if err := emitInstructions(sink, ctx, g.Init); err != nil {
			return nil, err
		}
	}
	return sink, nil
}
