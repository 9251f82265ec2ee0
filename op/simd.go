package op

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// V128Load reads a full 128-bit lane vector from memory.
func V128Load(align, offset uint32, memoryName string) wasm.Instruction {
	return memArg("v128.load", align, offset, memoryName)
}

// V128Store writes a full 128-bit lane vector to memory.
func V128Store(align, offset uint32, memoryName string) wasm.Instruction {
	return memArg("v128.store", align, offset, memoryName)
}

// V128LoadSplat variants load a single lane-width value and splat it across
// all lanes of the result: width is one of 8, 16, 32, 64.
func V128LoadSplat(width int, align, offset uint32, memoryName string) wasm.Instruction {
	mnemonic := map[int]string{8: "v128.load8_splat", 16: "v128.load16_splat", 32: "v128.load32_splat", 64: "v128.load64_splat"}[width]
	return memArg(mnemonic, align, offset, memoryName)
}

// V128Const pushes a literal 128-bit constant, 16 bytes in lane-index order.
func V128Const(bytes [16]byte) wasm.Instruction {
	return withImmediate("v128.const", func(sink *wasm.Sink, ctx *wasm.Context) error {
		sink.AppendMany(bytes[:]...)
		return nil
	})
}

// Shuffle selects 16 output lanes from the concatenation of the two
// top-of-stack vectors, indices is the per-output-lane source index in
// [0,32).
func Shuffle(indices [16]byte) wasm.Instruction {
	return withImmediate("i8x16.shuffle", func(sink *wasm.Sink, ctx *wasm.Context) error {
		sink.AppendMany(indices[:]...)
		return nil
	})
}

// laneOp builds a lane-indexed instruction: one byte naming which of the
// vector's lanes to read or write.
func laneOp(mnemonic string, lane byte) wasm.Instruction {
	return withImmediate(mnemonic, func(sink *wasm.Sink, ctx *wasm.Context) error {
		sink.AppendOne(lane)
		return nil
	})
}

func I8x16ExtractLaneS(lane byte) wasm.Instruction { return laneOp("i8x16.extract_lane_s", lane) }
func I8x16ExtractLaneU(lane byte) wasm.Instruction { return laneOp("i8x16.extract_lane_u", lane) }
func I8x16ReplaceLane(lane byte) wasm.Instruction  { return laneOp("i8x16.replace_lane", lane) }
func I16x8ExtractLaneS(lane byte) wasm.Instruction { return laneOp("i16x8.extract_lane_s", lane) }
func I16x8ExtractLaneU(lane byte) wasm.Instruction { return laneOp("i16x8.extract_lane_u", lane) }
func I16x8ReplaceLane(lane byte) wasm.Instruction  { return laneOp("i16x8.replace_lane", lane) }
func I32x4ExtractLane(lane byte) wasm.Instruction  { return laneOp("i32x4.extract_lane", lane) }
func I32x4ReplaceLane(lane byte) wasm.Instruction  { return laneOp("i32x4.replace_lane", lane) }
func I64x2ExtractLane(lane byte) wasm.Instruction  { return laneOp("i64x2.extract_lane", lane) }
func I64x2ReplaceLane(lane byte) wasm.Instruction  { return laneOp("i64x2.replace_lane", lane) }
func F32x4ExtractLane(lane byte) wasm.Instruction  { return laneOp("f32x4.extract_lane", lane) }
func F32x4ReplaceLane(lane byte) wasm.Instruction  { return laneOp("f32x4.replace_lane", lane) }
func F64x2ExtractLane(lane byte) wasm.Instruction  { return laneOp("f64x2.extract_lane", lane) }
func F64x2ReplaceLane(lane byte) wasm.Instruction  { return laneOp("f64x2.replace_lane", lane) }

// laneMemArg builds v128.load*_lane/v128.store*_lane: a memarg followed by
// the target lane index.
func laneMemArg(mnemonic string, align, offset uint32, memoryName string, lane byte) wasm.Instruction {
	return withImmediate(mnemonic, func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveMemory(memoryName)
		if err != nil {
			return err
		}
		if idx == 0 {
			sink.AppendMany(leb128.EncodeUint32(align)...)
			sink.AppendMany(leb128.EncodeUint32(offset)...)
		} else {
			sink.AppendMany(leb128.EncodeUint32(align|multiMemoryFlag)...)
			sink.AppendMany(leb128.EncodeUint32(offset)...)
			sink.AppendMany(leb128.EncodeUint32(idx)...)
		}
		sink.AppendOne(lane)
		return nil
	})
}

func V128Load8Lane(align, offset uint32, memoryName string, lane byte) wasm.Instruction {
	return laneMemArg("v128.load8_lane", align, offset, memoryName, lane)
}
func V128Load16Lane(align, offset uint32, memoryName string, lane byte) wasm.Instruction {
	return laneMemArg("v128.load16_lane", align, offset, memoryName, lane)
}
func V128Load32Lane(align, offset uint32, memoryName string, lane byte) wasm.Instruction {
	return laneMemArg("v128.load32_lane", align, offset, memoryName, lane)
}
func V128Load64Lane(align, offset uint32, memoryName string, lane byte) wasm.Instruction {
	return laneMemArg("v128.load64_lane", align, offset, memoryName, lane)
}
func V128Store8Lane(align, offset uint32, memoryName string, lane byte) wasm.Instruction {
	return laneMemArg("v128.store8_lane", align, offset, memoryName, lane)
}
func V128Store16Lane(align, offset uint32, memoryName string, lane byte) wasm.Instruction {
	return laneMemArg("v128.store16_lane", align, offset, memoryName, lane)
}
func V128Store32Lane(align, offset uint32, memoryName string, lane byte) wasm.Instruction {
	return laneMemArg("v128.store32_lane", align, offset, memoryName, lane)
}
func V128Store64Lane(align, offset uint32, memoryName string, lane byte) wasm.Instruction {
	return laneMemArg("v128.store64_lane", align, offset, memoryName, lane)
}

// The remaining SIMD surface (splats, bitwise ops, per-shape arithmetic and
// comparisons) carries no immediate operand. A representative, commonly
// used subset is named below; anything else in the opcode table (the full
// shape x operation matrix, relaxed-SIMD, etc.) is reachable through Op.
var (
	I8x16Splat = leaf("i8x16.splat")
	I16x8Splat = leaf("i16x8.splat")
	I32x4Splat = leaf("i32x4.splat")
	I64x2Splat = leaf("i64x2.splat")
	F32x4Splat = leaf("f32x4.splat")
	F64x2Splat = leaf("f64x2.splat")

	V128Not       = leaf("v128.not")
	V128And       = leaf("v128.and")
	V128Andnot    = leaf("v128.andnot")
	V128Or        = leaf("v128.or")
	V128Xor       = leaf("v128.xor")
	V128Bitselect = leaf("v128.bitselect")
	V128AnyTrue   = leaf("v128.any_true")

	I8x16Add = leaf("i8x16.add")
	I8x16Sub = leaf("i8x16.sub")
	I16x8Add = leaf("i16x8.add")
	I16x8Sub = leaf("i16x8.sub")
	I16x8Mul = leaf("i16x8.mul")
	I32x4Add = leaf("i32x4.add")
	I32x4Sub = leaf("i32x4.sub")
	I32x4Mul = leaf("i32x4.mul")
	I64x2Add = leaf("i64x2.add")
	I64x2Sub = leaf("i64x2.sub")
	I64x2Mul = leaf("i64x2.mul")

	F32x4Add = leaf("f32x4.add")
	F32x4Sub = leaf("f32x4.sub")
	F32x4Mul = leaf("f32x4.mul")
	F32x4Div = leaf("f32x4.div")
	F64x2Add = leaf("f64x2.add")
	F64x2Sub = leaf("f64x2.sub")
	F64x2Mul = leaf("f64x2.mul")
	F64x2Div = leaf("f64x2.div")

	I32x4TruncSatF32x4S = leaf("i32x4.trunc_sat_f32x4_s")
	I32x4TruncSatF32x4U = leaf("i32x4.trunc_sat_f32x4_u")
	F32x4ConvertI32x4S  = leaf("f32x4.convert_i32x4_s")
	F32x4ConvertI32x4U  = leaf("f32x4.convert_i32x4_u")
)
