package binary

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// writeDataSection builds the data section. DataMode's iota ordering in
// module.go matches the flags byte (0-2) used on the wire.
func writeDataSection(ctx *wasm.Context, m *wasm.Module) (*wasm.Sink, error) {
	if len(m.Data) == 0 {
		return nil, nil
	}
	sink := wasm.NewSink(64)
	sink.AppendMany(leb128.EncodeUint32(uint32(len(m.Data)))...)
	for _, d := range m.Data {
		if err := encodeDataSegment(sink, ctx, d); err != nil {
			return nil, err
		}
	}
	return sink, nil
}

func encodeDataSegment(sink *wasm.Sink, ctx *wasm.Context, d wasm.DataSegment) error {
	sink.AppendOne(byte(d.Mode))

	switch d.Mode {
	case wasm.DataModeActiveMemoryZero:
		if err := emitInstructions(sink, ctx, d.Offset); err != nil {
			return err
		}
	case wasm.DataModePassive:
		// no offset, no memory index
	case wasm.DataModeActive:
		memIdx, err := ctx.ResolveMemory(d.Memory)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(memIdx)...)
		if err := emitInstructions(sink, ctx, d.Offset); err != nil {
			return err
		}
	default:
		return &wasm.MalformedInputError{What: "data segment", Detail: "unknown mode"}
	}

	sink.AppendMany(leb128.EncodeUint32(uint32(len(d.Bytes)))...)
	sink.AppendMany(d.Bytes...)
	return nil
}
