package binary

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// writeDataCountSection builds the data count section: a single count of
// data segments, present whenever the module declares at least one. Engines
// that support bulk memory use this to validate memory.init/data.drop
// indices ahead of the code section.
func writeDataCountSection(m *wasm.Module) *wasm.Sink {
	if len(m.Data) == 0 {
		return nil
	}
	sink := wasm.NewSink(8)
	sink.AppendMany(leb128.EncodeUint32(uint32(len(m.Data)))...)
	return sink
}
