package binary

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// writeTablesSection builds the tables section: one reference type +
// limits pair per declared table.
func writeTablesSection(ctx *wasm.Context, m *wasm.Module) (*wasm.Sink, error) {
	if len(m.Tables) == 0 {
		return nil, nil
	}
	sink := wasm.NewSink(32)
	sink.AppendMany(leb128.EncodeUint32(uint32(len(m.Tables)))...)
	for _, t := range m.Tables {
		if err := encodeRefType(sink, ctx, t.RefType); err != nil {
			return nil, err
		}
		encodeLimits(sink, t.Limits)
	}
	return sink, nil
}

// writeMemoriesSection builds the memories section: limits only, per
// declared memory.
func writeMemoriesSection(m *wasm.Module) *wasm.Sink {
	if len(m.Memories) == 0 {
		return nil
	}
	sink := wasm.NewSink(16)
	sink.AppendMany(leb128.EncodeUint32(uint32(len(m.Memories)))...)
	for _, mem := range m.Memories {
		encodeLimits(sink, mem.Limits)
	}
	return sink
}
