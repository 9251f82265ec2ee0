package binary

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

const emptyBlockType = 0x40

// emitInstruction writes one instruction: opcode bytes, then its
// immediates or, for block/loop/if, a block-type byte followed by its
// nested body under a fresh block-stack frame.
func emitInstruction(sink *wasm.Sink, ctx *wasm.Context, ins wasm.Instruction) error {
	encoded := lookupOpcode(ins.Mnemonic)
	if encoded == nil {
		return &wasm.MalformedInputError{What: "instruction", Detail: "unknown mnemonic " + ins.Mnemonic}
	}
	sink.AppendMany(encoded...)

	switch ins.Mnemonic {
	case "block", "loop", "if":
		if err := emitBlockType(sink, ctx, ins); err != nil {
			return err
		}
		inner := ctx.PushBlock(ins.BlockName)
		return emitInstructions(sink, inner, ins.Body)
	default:
		if ins.Immediate != nil {
			return emitImmediate(sink, ctx, ins)
		}
		return nil
	}
}

// emitImmediate invokes the instruction's immediates emitter, translating the
// leb128 package's negative-unsigned-value panic into an InvalidValueError
// naming the offending mnemonic. Any other panic is a programmer error and
// propagates.
func emitImmediate(sink *wasm.Sink, ctx *wasm.Context, ins wasm.Instruction) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if leb128.IsNegativeValueError(r) {
				err = &wasm.InvalidValueError{Mnemonic: ins.Mnemonic, Reason: "negative value for unsigned LEB128"}
				return
			}
			panic(r)
		}
	}()
	return ins.Immediate(sink, ctx)
}

// emitBlockType writes a block/loop/if's type: a named function type
// (multi-value, s33 signed LEB128 type index), a single result value type,
// or the 0x40 empty block type, per the multi-value proposal's block type
// encoding.
func emitBlockType(sink *wasm.Sink, ctx *wasm.Context, ins wasm.Instruction) error {
	if ins.BlockTypeName != "" {
		idx, err := ctx.ResolveType(ins.BlockTypeName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeInt64(int64(idx))...)
		return nil
	}
	if ins.HasReturn {
		sink.AppendOne(ins.Returns[0])
		return nil
	}
	sink.AppendOne(emptyBlockType)
	return nil
}

// emitInstructions emits a flat instruction sequence in order, stopping at
// the first error.
func emitInstructions(sink *wasm.Sink, ctx *wasm.Context, body []wasm.Instruction) error {
	for _, ins := range body {
		if err := emitInstruction(sink, ctx, ins); err != nil {
			return err
		}
	}
	return nil
}
