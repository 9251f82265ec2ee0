package binary

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// writeCodeSection builds the code section: one length-prefixed body per
// declared function, each prefixed with its own local-declaration groups.
func writeCodeSection(ctx *wasm.Context, m *wasm.Module) (*wasm.Sink, error) {
	if len(m.Functions) == 0 {
		return nil, nil
	}
	sink := wasm.NewSink(128)
	sink.AppendMany(leb128.EncodeUint32(uint32(len(m.Functions)))...)
	for _, fn := range m.Functions {
		body, err := encodeFunctionBody(ctx, fn)
		if err != nil {
			return nil, err
		}
		sink.AppendMany(leb128.EncodeUint32(uint32(body.Length()))...)
		sink.AppendMany(body.View()...)
	}
	return sink, nil
}

// encodeFunctionBody assembles one function's body: its parameters and
// locals are registered into a fresh per-function Context (params take the
// low indices), each declared local is emitted as its own group of one, and
// the instruction list follows.
func encodeFunctionBody(ctx *wasm.Context, fn wasm.Function) (*wasm.Sink, error) {
	fnCtx := ctx.EnterFunction()
	for _, p := range fn.Params {
		if _, err := fnCtx.DefineLocal(p.Name); err != nil {
			return nil, err
		}
	}
	for _, l := range fn.Locals {
		if _, err := fnCtx.DefineLocal(l.Name); err != nil {
			return nil, err
		}
	}

	body := wasm.NewSink(64)
	encodeLocalGroups(body, fn.Locals)
	if err := emitInstructions(body, fnCtx, fn.Instructions); err != nil {
		return nil, err
	}
	return body, nil
}

// encodeLocalGroups emits one (count=1, type) group per declared local, in
// declaration order. Each declared local is its own group, never run-length
// merged with a neighbor of the same type, so local indices track
// declaration order byte-for-byte.
func encodeLocalGroups(sink *wasm.Sink, locals []wasm.NamedValueType) {
	sink.AppendMany(leb128.EncodeUint32(uint32(len(locals)))...)
	for _, l := range locals {
		sink.AppendMany(leb128.EncodeUint32(1)...)
		sink.AppendOne(l.Type)
	}
}
