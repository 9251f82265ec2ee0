package binary

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// writeFunctionsSection builds the functions section: one type index per
// declared function, in function order.
func writeFunctionsSection(ctx *wasm.Context, m *wasm.Module) (*wasm.Sink, error) {
	if len(m.Functions) == 0 {
		return nil, nil
	}
	sink := wasm.NewSink(32)
	sink.AppendMany(leb128.EncodeUint32(uint32(len(m.Functions)))...)
	for _, fn := range m.Functions {
		idx, err := ctx.ResolveType(fn.Name)
		if err != nil {
			return nil, err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
	}
	return sink, nil
}
