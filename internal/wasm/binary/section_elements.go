package binary

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

const elemKindFuncref = 0x00

// writeElementsSection builds the elements section. Each segment's Mode
// selects one of the eight on-wire layouts; ElementMode's iota ordering in
// module.go matches the flags byte (0-7) used by the bulk-memory proposal.
func writeElementsSection(ctx *wasm.Context, m *wasm.Module) (*wasm.Sink, error) {
	if len(m.Elements) == 0 {
		return nil, nil
	}
	sink := wasm.NewSink(64)
	sink.AppendMany(leb128.EncodeUint32(uint32(len(m.Elements)))...)
	for _, e := range m.Elements {
		if err := encodeElementSegment(sink, ctx, e); err != nil {
			return nil, err
		}
	}
	return sink, nil
}

func encodeElementSegment(sink *wasm.Sink, ctx *wasm.Context, e wasm.ElementSegment) error {
	flags := byte(e.Mode)
	sink.AppendOne(flags)

	switch e.Mode {
	case wasm.ElementModeActiveTableZeroFuncs:
		if err := emitInstructions(sink, ctx, e.Offset); err != nil {
			return err
		}
		return encodeFuncNameList(sink, ctx, e.FuncNames)

	case wasm.ElementModePassiveFuncs:
		sink.AppendOne(elemKindFuncref)
		return encodeFuncNameList(sink, ctx, e.FuncNames)

	case wasm.ElementModeActiveFuncs:
		tableIdx, err := ctx.ResolveTable(e.Table)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(tableIdx)...)
		if err := emitInstructions(sink, ctx, e.Offset); err != nil {
			return err
		}
		sink.AppendOne(elemKindFuncref)
		return encodeFuncNameList(sink, ctx, e.FuncNames)

	case wasm.ElementModeDeclarativeFuncs:
		sink.AppendOne(elemKindFuncref)
		return encodeFuncNameList(sink, ctx, e.FuncNames)

	case wasm.ElementModeActiveTableZeroExprs:
		if err := emitInstructions(sink, ctx, e.Offset); err != nil {
			return err
		}
		return encodeExprList(sink, ctx, e.Exprs)

	case wasm.ElementModePassiveExprs:
		if err := encodeRefType(sink, ctx, e.RefType); err != nil {
			return err
		}
		return encodeExprList(sink, ctx, e.Exprs)

	case wasm.ElementModeActiveExprs:
		tableIdx, err := ctx.ResolveTable(e.Table)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(tableIdx)...)
		if err := emitInstructions(sink, ctx, e.Offset); err != nil {
			return err
		}
		if err := encodeRefType(sink, ctx, e.RefType); err != nil {
			return err
		}
		return encodeExprList(sink, ctx, e.Exprs)

	case wasm.ElementModeDeclarativeExprs:
		if err := encodeRefType(sink, ctx, e.RefType); err != nil {
			return err
		}
		return encodeExprList(sink, ctx, e.Exprs)
	}

	return &wasm.MalformedInputError{What: "element segment", Detail: "unknown mode"}
}

func encodeFuncNameList(sink *wasm.Sink, ctx *wasm.Context, names []string) error {
	sink.AppendMany(leb128.EncodeUint32(uint32(len(names)))...)
	for _, name := range names {
		idx, err := ctx.ResolveFunction(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
	}
	return nil
}

func encodeExprList(sink *wasm.Sink, ctx *wasm.Context, exprs [][]wasm.Instruction) error {
	sink.AppendMany(leb128.EncodeUint32(uint32(len(exprs)))...)
	for _, expr := range exprs {
		if err := emitInstructions(sink, ctx, expr); err != nil {
			return err
		}
	}
	return nil
}
