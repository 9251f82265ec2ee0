package binary

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// writeStartSection builds the start section: a single function index, only
// present when the module names a start function.
func writeStartSection(ctx *wasm.Context, m *wasm.Module) (*wasm.Sink, error) {
	if m.Start == "" {
		return nil, nil
	}
	idx, err := ctx.ResolveFunction(m.Start)
	if err != nil {
		return nil, err
	}
	sink := wasm.NewSink(8)
	sink.AppendMany(leb128.EncodeUint32(idx)...)
	return sink, nil
}
