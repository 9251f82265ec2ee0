package op

import (
	"math"

	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// I32Const pushes a constant i32, signed LEB128 encoded.
func I32Const(v int32) wasm.Instruction {
	return withImmediate("i32.const", func(sink *wasm.Sink, ctx *wasm.Context) error {
		sink.AppendMany(leb128.EncodeInt32(v)...)
		return nil
	})
}

// I64Const pushes a constant i64, signed LEB128 encoded.
func I64Const(v int64) wasm.Instruction {
	return withImmediate("i64.const", func(sink *wasm.Sink, ctx *wasm.Context) error {
		sink.AppendMany(leb128.EncodeInt64(v)...)
		return nil
	})
}

// F32Const pushes a constant f32, little-endian IEEE 754 encoded.
func F32Const(v float32) wasm.Instruction {
	return withImmediate("f32.const", func(sink *wasm.Sink, ctx *wasm.Context) error {
		bits := math.Float32bits(v)
		sink.AppendMany(byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
		return nil
	})
}

// F64Const pushes a constant f64, little-endian IEEE 754 encoded.
func F64Const(v float64) wasm.Instruction {
	return withImmediate("f64.const", func(sink *wasm.Sink, ctx *wasm.Context) error {
		bits := math.Float64bits(v)
		sink.AppendMany(
			byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24),
			byte(bits>>32), byte(bits>>40), byte(bits>>48), byte(bits>>56),
		)
		return nil
	})
}

// The remaining numeric instructions carry no immediate operand; each is a
// thin named wrapper over Op so callers get compile-time-checked names for
// the common arithmetic, comparison, conversion and bit-manipulation
// mnemonics instead of having to spell the string out.
var (
	I32Eqz  = leaf("i32.eqz")
	I32Eq   = leaf("i32.eq")
	I32Ne   = leaf("i32.ne")
	I32LtS  = leaf("i32.lt_s")
	I32LtU  = leaf("i32.lt_u")
	I32GtS  = leaf("i32.gt_s")
	I32GtU  = leaf("i32.gt_u")
	I32LeS  = leaf("i32.le_s")
	I32LeU  = leaf("i32.le_u")
	I32GeS  = leaf("i32.ge_s")
	I32GeU  = leaf("i32.ge_u")

	I64Eqz = leaf("i64.eqz")
	I64Eq  = leaf("i64.eq")
	I64Ne  = leaf("i64.ne")
	I64LtS = leaf("i64.lt_s")
	I64LtU = leaf("i64.lt_u")
	I64GtS = leaf("i64.gt_s")
	I64GtU = leaf("i64.gt_u")
	I64LeS = leaf("i64.le_s")
	I64LeU = leaf("i64.le_u")
	I64GeS = leaf("i64.ge_s")
	I64GeU = leaf("i64.ge_u")

	F32Eq = leaf("f32.eq")
	F32Ne = leaf("f32.ne")
	F32Lt = leaf("f32.lt")
	F32Gt = leaf("f32.gt")
	F32Le = leaf("f32.le")
	F32Ge = leaf("f32.ge")

	F64Eq = leaf("f64.eq")
	F64Ne = leaf("f64.ne")
	F64Lt = leaf("f64.lt")
	F64Gt = leaf("f64.gt")
	F64Le = leaf("f64.le")
	F64Ge = leaf("f64.ge")

	I32Clz    = leaf("i32.clz")
	I32Ctz    = leaf("i32.ctz")
	I32Popcnt = leaf("i32.popcnt")
	I32Add    = leaf("i32.add")
	I32Sub    = leaf("i32.sub")
	I32Mul    = leaf("i32.mul")
	I32DivS   = leaf("i32.div_s")
	I32DivU   = leaf("i32.div_u")
	I32RemS   = leaf("i32.rem_s")
	I32RemU   = leaf("i32.rem_u")
	I32And    = leaf("i32.and")
	I32Or     = leaf("i32.or")
	I32Xor    = leaf("i32.xor")
	I32Shl    = leaf("i32.shl")
	I32ShrS   = leaf("i32.shr_s")
	I32ShrU   = leaf("i32.shr_u")
	I32Rotl   = leaf("i32.rotl")
	I32Rotr   = leaf("i32.rotr")

	I64Clz    = leaf("i64.clz")
	I64Ctz    = leaf("i64.ctz")
	I64Popcnt = leaf("i64.popcnt")
	I64Add    = leaf("i64.add")
	I64Sub    = leaf("i64.sub")
	I64Mul    = leaf("i64.mul")
	I64DivS   = leaf("i64.div_s")
	I64DivU   = leaf("i64.div_u")
	I64RemS   = leaf("i64.rem_s")
	I64RemU   = leaf("i64.rem_u")
	I64And    = leaf("i64.and")
	I64Or     = leaf("i64.or")
	I64Xor    = leaf("i64.xor")
	I64Shl    = leaf("i64.shl")
	I64ShrS   = leaf("i64.shr_s")
	I64ShrU   = leaf("i64.shr_u")
	I64Rotl   = leaf("i64.rotl")
	I64Rotr   = leaf("i64.rotr")

	F32Abs      = leaf("f32.abs")
	F32Neg      = leaf("f32.neg")
	F32Ceil     = leaf("f32.ceil")
	F32Floor    = leaf("f32.floor")
	F32Trunc    = leaf("f32.trunc")
	F32Nearest  = leaf("f32.nearest")
	F32Sqrt     = leaf("f32.sqrt")
	F32Add      = leaf("f32.add")
	F32Sub      = leaf("f32.sub")
	F32Mul      = leaf("f32.mul")
	F32Div      = leaf("f32.div")
	F32Min      = leaf("f32.min")
	F32Max      = leaf("f32.max")
	F32Copysign = leaf("f32.copysign")

	F64Abs      = leaf("f64.abs")
	F64Neg      = leaf("f64.neg")
	F64Ceil     = leaf("f64.ceil")
	F64Floor    = leaf("f64.floor")
	F64Trunc    = leaf("f64.trunc")
	F64Nearest  = leaf("f64.nearest")
	F64Sqrt     = leaf("f64.sqrt")
	F64Add      = leaf("f64.add")
	F64Sub      = leaf("f64.sub")
	F64Mul      = leaf("f64.mul")
	F64Div      = leaf("f64.div")
	F64Min      = leaf("f64.min")
	F64Max      = leaf("f64.max")
	F64Copysign = leaf("f64.copysign")

	I32WrapI64        = leaf("i32.wrap_i64")
	I32TruncF32S      = leaf("i32.trunc_f32_s")
	I32TruncF32U      = leaf("i32.trunc_f32_u")
	I32TruncF64S      = leaf("i32.trunc_f64_s")
	I32TruncF64U      = leaf("i32.trunc_f64_u")
	I64ExtendI32S     = leaf("i64.extend_i32_s")
	I64ExtendI32U     = leaf("i64.extend_i32_u")
	I64TruncF32S      = leaf("i64.trunc_f32_s")
	I64TruncF32U      = leaf("i64.trunc_f32_u")
	I64TruncF64S      = leaf("i64.trunc_f64_s")
	I64TruncF64U      = leaf("i64.trunc_f64_u")
	F32ConvertI32S    = leaf("f32.convert_i32_s")
	F32ConvertI32U    = leaf("f32.convert_i32_u")
	F32ConvertI64S    = leaf("f32.convert_i64_s")
	F32ConvertI64U    = leaf("f32.convert_i64_u")
	F32DemoteF64      = leaf("f32.demote_f64")
	F64ConvertI32S    = leaf("f64.convert_i32_s")
	F64ConvertI32U    = leaf("f64.convert_i32_u")
	F64ConvertI64S    = leaf("f64.convert_i64_s")
	F64ConvertI64U    = leaf("f64.convert_i64_u")
	F64PromoteF32     = leaf("f64.promote_f32")
	I32ReinterpretF32 = leaf("i32.reinterpret_f32")
	I64ReinterpretF64 = leaf("i64.reinterpret_f64")
	F32ReinterpretI32 = leaf("f32.reinterpret_i32")
	F64ReinterpretI64 = leaf("f64.reinterpret_i64")

	I32Extend8S  = leaf("i32.extend8_s")
	I32Extend16S = leaf("i32.extend16_s")
	I64Extend8S  = leaf("i64.extend8_s")
	I64Extend16S = leaf("i64.extend16_s")
	I64Extend32S = leaf("i64.extend32_s")

	I32TruncSatF32S = leaf("i32.trunc_sat_f32_s")
	I32TruncSatF32U = leaf("i32.trunc_sat_f32_u")
	I32TruncSatF64S = leaf("i32.trunc_sat_f64_s")
	I32TruncSatF64U = leaf("i32.trunc_sat_f64_u")
	I64TruncSatF32S = leaf("i64.trunc_sat_f32_s")
	I64TruncSatF32U = leaf("i64.trunc_sat_f32_u")
	I64TruncSatF64S = leaf("i64.trunc_sat_f64_s")
	I64TruncSatF64U = leaf("i64.trunc_sat_f64_u")
)
