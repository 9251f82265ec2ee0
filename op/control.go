package op

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// Unreachable, Nop are the two immediate-free control instructions that
// never carry a body.
func Unreachable() wasm.Instruction { return leaf("unreachable") }
func Nop() wasm.Instruction         { return leaf("nop") }

// Block opens a block with no result (the 0x40 empty block type) around
// body, labeled name for Br/BrIf/BrTable within it.
func Block(name string, body ...interface{}) wasm.Instruction {
	return wasm.Instruction{Mnemonic: "block", BlockName: name, Body: wasm.Flatten(body...)}
}

// BlockResult opens a block that yields a single result value type.
func BlockResult(name string, result ValueType, body ...interface{}) wasm.Instruction {
	return wasm.Instruction{
		Mnemonic: "block", BlockName: name,
		Returns: []ValueType{result}, HasReturn: true,
		Body: wasm.Flatten(body...),
	}
}

// Loop opens a loop with no result; a Br/BrIf naming it jumps to the top.
func Loop(name string, body ...interface{}) wasm.Instruction {
	return wasm.Instruction{Mnemonic: "loop", BlockName: name, Body: wasm.Flatten(body...)}
}

// LoopResult opens a loop that yields a single result value type.
func LoopResult(name string, result ValueType, body ...interface{}) wasm.Instruction {
	return wasm.Instruction{
		Mnemonic: "loop", BlockName: name,
		Returns: []ValueType{result}, HasReturn: true,
		Body: wasm.Flatten(body...),
	}
}

// BlockMulti opens a block typed by the named custom function-type entry
// (its params and results), for the multi-value proposal: any block with
// more than one result, or with parameters, needs a type-section entry
// rather than the single-result shorthand BlockResult uses.
func BlockMulti(name, typeName string, body ...interface{}) wasm.Instruction {
	return wasm.Instruction{Mnemonic: "block", BlockName: name, BlockTypeName: typeName, Body: wasm.Flatten(body...)}
}

// LoopMulti is BlockMulti for a loop.
func LoopMulti(name, typeName string, body ...interface{}) wasm.Instruction {
	return wasm.Instruction{Mnemonic: "loop", BlockName: name, BlockTypeName: typeName, Body: wasm.Flatten(body...)}
}

// IfMulti is BlockMulti for a conditional.
func IfMulti(name, typeName string, body ...interface{}) wasm.Instruction {
	return wasm.Instruction{Mnemonic: "if", BlockName: name, BlockTypeName: typeName, Body: wasm.Flatten(body...)}
}

// If opens a conditional block with no result, consuming the top-of-stack
// i32 condition. body is the flat then/else instruction stream: include an
// Else() leaf where the alternative arm begins, and always finish with an
// End() leaf; the DSL never inserts either automatically.
func If(name string, body ...interface{}) wasm.Instruction {
	return wasm.Instruction{Mnemonic: "if", BlockName: name, Body: wasm.Flatten(body...)}
}

// IfResult opens a conditional block yielding a single result value type;
// the format requires both arms to be present when a result type is given.
func IfResult(name string, result ValueType, body ...interface{}) wasm.Instruction {
	return wasm.Instruction{
		Mnemonic: "if", BlockName: name,
		Returns: []ValueType{result}, HasReturn: true,
		Body: wasm.Flatten(body...),
	}
}

// Else marks the start of an if instruction's alternative arm. It is an
// ordinary leaf placed inline in the body passed to If/IfResult.
func Else() wasm.Instruction { return leaf("else") }

// End terminates a block, loop, if, or function body. The DSL never
// inserts it automatically; every body the caller builds must end with one.
func End() wasm.Instruction { return leaf("end") }

// Br branches to the block, loop, or if named name, unwinding to its start
// (loop) or end (block/if).
func Br(name string) wasm.Instruction {
	return withImmediate("br", func(sink *wasm.Sink, ctx *wasm.Context) error {
		depth, err := ctx.BranchDepth(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(depth)...)
		return nil
	})
}

// BrIf is Br, conditional on the top-of-stack i32 operand.
func BrIf(name string) wasm.Instruction {
	return withImmediate("br_if", func(sink *wasm.Sink, ctx *wasm.Context) error {
		depth, err := ctx.BranchDepth(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(depth)...)
		return nil
	})
}

// BrTable selects one of targets by the top-of-stack i32 index, falling
// back to def when the index is out of range.
func BrTable(def string, targets ...string) wasm.Instruction {
	return withImmediate("br_table", func(sink *wasm.Sink, ctx *wasm.Context) error {
		sink.AppendMany(leb128.EncodeUint32(uint32(len(targets)))...)
		for _, name := range targets {
			depth, err := ctx.BranchDepth(name)
			if err != nil {
				return err
			}
			sink.AppendMany(leb128.EncodeUint32(depth)...)
		}
		depth, err := ctx.BranchDepth(def)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(depth)...)
		return nil
	})
}

// Return exits the current function, per the result types on its stack.
func Return() wasm.Instruction { return leaf("return") }

// Call invokes the function named name directly.
func Call(name string) wasm.Instruction {
	return withImmediate("call", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveFunction(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// CallIndirect invokes a function looked up in table tableName at the
// top-of-stack index, checked against the signature named typeName.
func CallIndirect(typeName, tableName string) wasm.Instruction {
	return withImmediate("call_indirect", func(sink *wasm.Sink, ctx *wasm.Context) error {
		typeIdx, err := ctx.ResolveType(typeName)
		if err != nil {
			return err
		}
		tableIdx, err := ctx.ResolveTable(tableName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(typeIdx)...)
		sink.AppendMany(leb128.EncodeUint32(tableIdx)...)
		return nil
	})
}

// ReturnCall is the tail-call proposal's fused Call+Return.
func ReturnCall(name string) wasm.Instruction {
	return withImmediate("return_call", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveFunction(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// ReturnCallIndirect is the tail-call proposal's fused CallIndirect+Return.
func ReturnCallIndirect(typeName, tableName string) wasm.Instruction {
	return withImmediate("return_call_indirect", func(sink *wasm.Sink, ctx *wasm.Context) error {
		typeIdx, err := ctx.ResolveType(typeName)
		if err != nil {
			return err
		}
		tableIdx, err := ctx.ResolveTable(tableName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(typeIdx)...)
		sink.AppendMany(leb128.EncodeUint32(tableIdx)...)
		return nil
	})
}

// CallRef invokes a typed function reference on top of the stack, checked
// against the signature named typeName.
func CallRef(typeName string) wasm.Instruction {
	return withImmediate("call_ref", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveType(typeName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// ReturnCallRef is the tail-call proposal's fused CallRef+Return.
func ReturnCallRef(typeName string) wasm.Instruction {
	return withImmediate("return_call_ref", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveType(typeName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// BrOnNull branches to name if the top-of-stack reference is null,
// otherwise leaves it on the stack as non-null.
func BrOnNull(name string) wasm.Instruction {
	return withImmediate("br_on_null", func(sink *wasm.Sink, ctx *wasm.Context) error {
		depth, err := ctx.BranchDepth(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(depth)...)
		return nil
	})
}

// BrOnNonNull branches to name if the top-of-stack reference is non-null.
func BrOnNonNull(name string) wasm.Instruction {
	return withImmediate("br_on_non_null", func(sink *wasm.Sink, ctx *wasm.Context) error {
		depth, err := ctx.BranchDepth(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(depth)...)
		return nil
	})
}

// Drop discards the top-of-stack value.
func Drop() wasm.Instruction { return leaf("drop") }

// Select picks between the two preceding operands by the top-of-stack i32,
// with its operand type inferred by validation (not carried in the binary).
func Select() wasm.Instruction { return leaf("select") }

// SelectWithType is Select with an explicit single operand type, required
// when the operands are reference types.
func SelectWithType(t ValueType) wasm.Instruction {
	return withImmediate("select_with_type", func(sink *wasm.Sink, ctx *wasm.Context) error {
		sink.AppendMany(leb128.EncodeUint32(1)...)
		sink.AppendOne(t)
		return nil
	})
}
