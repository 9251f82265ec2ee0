package op

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// multiMemoryFlag is the bit the multi-memory proposal borrows from the
// memarg's align field to signal that an explicit memory index follows the
// offset, rather than the implicit memory 0.
const multiMemoryFlag = 0x40

// memArg emits a load/store instruction's alignment+offset (+ explicit
// memory index, when memoryName does not resolve to memory index 0).
func memArg(mnemonic string, align, offset uint32, memoryName string) wasm.Instruction {
	return withImmediate(mnemonic, func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveMemory(memoryName)
		if err != nil {
			return err
		}
		if idx == 0 {
			sink.AppendMany(leb128.EncodeUint32(align)...)
			sink.AppendMany(leb128.EncodeUint32(offset)...)
			return nil
		}
		sink.AppendMany(leb128.EncodeUint32(align | multiMemoryFlag)...)
		sink.AppendMany(leb128.EncodeUint32(offset)...)
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

func I32Load(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i32.load", align, offset, memoryName) }
func I64Load(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.load", align, offset, memoryName) }
func F32Load(align, offset uint32, memoryName string) wasm.Instruction { return memArg("f32.load", align, offset, memoryName) }
func F64Load(align, offset uint32, memoryName string) wasm.Instruction { return memArg("f64.load", align, offset, memoryName) }

func I32Load8S(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("i32.load8_s", align, offset, memoryName) }
func I32Load8U(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("i32.load8_u", align, offset, memoryName) }
func I32Load16S(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i32.load16_s", align, offset, memoryName) }
func I32Load16U(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i32.load16_u", align, offset, memoryName) }
func I64Load8S(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("i64.load8_s", align, offset, memoryName) }
func I64Load8U(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("i64.load8_u", align, offset, memoryName) }
func I64Load16S(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.load16_s", align, offset, memoryName) }
func I64Load16U(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.load16_u", align, offset, memoryName) }
func I64Load32S(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.load32_s", align, offset, memoryName) }
func I64Load32U(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.load32_u", align, offset, memoryName) }

func I32Store(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("i32.store", align, offset, memoryName) }
func I64Store(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("i64.store", align, offset, memoryName) }
func F32Store(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("f32.store", align, offset, memoryName) }
func F64Store(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("f64.store", align, offset, memoryName) }
func I32Store8(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("i32.store8", align, offset, memoryName) }
func I32Store16(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i32.store16", align, offset, memoryName) }
func I64Store8(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("i64.store8", align, offset, memoryName) }
func I64Store16(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.store16", align, offset, memoryName) }
func I64Store32(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.store32", align, offset, memoryName) }

// MemorySize pushes the current size, in pages, of memoryName.
func MemorySize(memoryName string) wasm.Instruction {
	return withImmediate("memory.size", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveMemory(memoryName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// MemoryGrow grows memoryName by the top-of-stack page count, pushing the
// previous size or -1 on failure.
func MemoryGrow(memoryName string) wasm.Instruction {
	return withImmediate("memory.grow", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveMemory(memoryName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// MemoryInit copies from the passive data segment named dataName into
// memoryName.
func MemoryInit(dataName, memoryName string) wasm.Instruction {
	return withImmediate("memory.init", func(sink *wasm.Sink, ctx *wasm.Context) error {
		dataIdx, err := ctx.ResolveData(dataName)
		if err != nil {
			return err
		}
		memIdx, err := ctx.ResolveMemory(memoryName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(dataIdx)...)
		sink.AppendMany(leb128.EncodeUint32(memIdx)...)
		return nil
	})
}

// DataDrop releases the passive data segment named dataName; a later
// MemoryInit referring to it traps.
func DataDrop(dataName string) wasm.Instruction {
	return withImmediate("data.drop", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveData(dataName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// MemoryCopy copies between two memories (or within one): the immediate is
// the source memory index followed by the destination memory index.
func MemoryCopy(destMemory, sourceMemory string) wasm.Instruction {
	return withImmediate("memory.copy", func(sink *wasm.Sink, ctx *wasm.Context) error {
		srcIdx, err := ctx.ResolveMemory(sourceMemory)
		if err != nil {
			return err
		}
		destIdx, err := ctx.ResolveMemory(destMemory)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(srcIdx)...)
		sink.AppendMany(leb128.EncodeUint32(destIdx)...)
		return nil
	})
}

// MemoryFill fills a range of memoryName with the top-of-stack byte value.
func MemoryFill(memoryName string) wasm.Instruction {
	return withImmediate("memory.fill", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveMemory(memoryName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// TableGet reads an element of tableName at the top-of-stack index.
func TableGet(tableName string) wasm.Instruction {
	return withImmediate("table.get", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveTable(tableName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// TableSet writes an element of tableName at the top-of-stack index.
func TableSet(tableName string) wasm.Instruction {
	return withImmediate("table.set", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveTable(tableName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// TableInit copies from the element segment named elemName into tableName.
func TableInit(elemName, tableName string) wasm.Instruction {
	return withImmediate("table.init", func(sink *wasm.Sink, ctx *wasm.Context) error {
		elemIdx, err := ctx.ResolveElement(elemName)
		if err != nil {
			return err
		}
		tableIdx, err := ctx.ResolveTable(tableName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(elemIdx)...)
		sink.AppendMany(leb128.EncodeUint32(tableIdx)...)
		return nil
	})
}

// ElemDrop releases the element segment named elemName, resolved against
// the module's element namespace (not reused as a data-segment lookup).
func ElemDrop(elemName string) wasm.Instruction {
	return withImmediate("elem.drop", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveElement(elemName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// TableCopy copies between two tables (or within one): the immediate is the
// source table index followed by the destination table index, matching
// memory.copy's field order.
func TableCopy(destTable, sourceTable string) wasm.Instruction {
	return withImmediate("table.copy", func(sink *wasm.Sink, ctx *wasm.Context) error {
		srcIdx, err := ctx.ResolveTable(sourceTable)
		if err != nil {
			return err
		}
		destIdx, err := ctx.ResolveTable(destTable)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(srcIdx)...)
		sink.AppendMany(leb128.EncodeUint32(destIdx)...)
		return nil
	})
}

// TableGrow grows tableName by the top-of-stack count, filling new slots
// with the preceding reference operand, pushing the previous size or -1.
func TableGrow(tableName string) wasm.Instruction {
	return withImmediate("table.grow", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveTable(tableName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// TableSize pushes the current size of tableName.
func TableSize(tableName string) wasm.Instruction {
	return withImmediate("table.size", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveTable(tableName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// TableFill fills a range of tableName with the preceding reference
// operand.
func TableFill(tableName string) wasm.Instruction {
	return withImmediate("table.fill", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveTable(tableName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}
