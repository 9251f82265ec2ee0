package op

import "github.com/gowasm/wasmencode/internal/wasm"

// MemoryAtomicNotify wakes up to the top-of-stack count of agents waiting
// on the address below it.
func MemoryAtomicNotify(align, offset uint32, memoryName string) wasm.Instruction {
	return memArg("memory.atomic.notify", align, offset, memoryName)
}

// MemoryAtomicWait32 suspends the current agent until notified, timed out,
// or the observed i32 at the address differs from the expected value.
func MemoryAtomicWait32(align, offset uint32, memoryName string) wasm.Instruction {
	return memArg("memory.atomic.wait32", align, offset, memoryName)
}

// MemoryAtomicWait64 is MemoryAtomicWait32 over an i64 comparand.
func MemoryAtomicWait64(align, offset uint32, memoryName string) wasm.Instruction {
	return memArg("memory.atomic.wait64", align, offset, memoryName)
}

// AtomicFence is a full sequentially-consistent memory barrier; it carries
// a single reserved immediate byte, always zero.
func AtomicFence() wasm.Instruction {
	return withImmediate("atomic.fence", func(sink *wasm.Sink, ctx *wasm.Context) error {
		sink.AppendOne(0x00)
		return nil
	})
}

func I32AtomicLoad(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i32.atomic.load", align, offset, memoryName) }
func I64AtomicLoad(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.atomic.load", align, offset, memoryName) }
func I32AtomicLoad8U(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("i32.atomic.load8_u", align, offset, memoryName) }
func I32AtomicLoad16U(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i32.atomic.load16_u", align, offset, memoryName) }
func I64AtomicLoad8U(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("i64.atomic.load8_u", align, offset, memoryName) }
func I64AtomicLoad16U(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.atomic.load16_u", align, offset, memoryName) }
func I64AtomicLoad32U(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.atomic.load32_u", align, offset, memoryName) }

func I32AtomicStore(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i32.atomic.store", align, offset, memoryName) }
func I64AtomicStore(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.atomic.store", align, offset, memoryName) }
func I32AtomicStore8(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("i32.atomic.store8", align, offset, memoryName) }
func I32AtomicStore16(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i32.atomic.store16", align, offset, memoryName) }
func I64AtomicStore8(align, offset uint32, memoryName string) wasm.Instruction  { return memArg("i64.atomic.store8", align, offset, memoryName) }
func I64AtomicStore16(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.atomic.store16", align, offset, memoryName) }
func I64AtomicStore32(align, offset uint32, memoryName string) wasm.Instruction { return memArg("i64.atomic.store32", align, offset, memoryName) }

// AtomicRMW builds any member of the read-modify-write family, all of which
// share the plain memarg immediate shape; mnemonic is one of the rmw
// mnemonics from
// internal/wasm/binary's atomicOpcodes table (e.g. "i32.atomic.rmw.add",
// "i64.atomic.rmw8.xchg_u", "i32.atomic.rmw.cmpxchg").
func AtomicRMW(mnemonic string, align, offset uint32, memoryName string) wasm.Instruction {
	return memArg(mnemonic, align, offset, memoryName)
}
