package binary

// simdOpcodes covers the fixed-width SIMD proposal's v128 instruction set
// plus the relaxed-SIMD follow-on proposal, all under the SIMD (0xFD)
// prefix. Lane-access immediates (load_lane/store_lane/extract_lane/
// replace_lane/shuffle) are encoded by the op package, not here; this table
// only maps mnemonic to opcode.
var simdOpcodes = map[string]Opcode{
	"v128.load":         op2(prefixSIMD, 0x00),
	"v128.load8x8_s":    op2(prefixSIMD, 0x01),
	"v128.load8x8_u":    op2(prefixSIMD, 0x02),
	"v128.load16x4_s":   op2(prefixSIMD, 0x03),
	"v128.load16x4_u":   op2(prefixSIMD, 0x04),
	"v128.load32x2_s":   op2(prefixSIMD, 0x05),
	"v128.load32x2_u":   op2(prefixSIMD, 0x06),
	"v128.load8_splat":  op2(prefixSIMD, 0x07),
	"v128.load16_splat": op2(prefixSIMD, 0x08),
	"v128.load32_splat": op2(prefixSIMD, 0x09),
	"v128.load64_splat": op2(prefixSIMD, 0x0A),
	"v128.store":        op2(prefixSIMD, 0x0B),
	"v128.const":        op2(prefixSIMD, 0x0C),
	"i8x16.shuffle":     op2(prefixSIMD, 0x0D),

	"i8x16.swizzle":  op2(prefixSIMD, 0x0E),
	"i8x16.splat":    op2(prefixSIMD, 0x0F),
	"i16x8.splat":    op2(prefixSIMD, 0x10),
	"i32x4.splat":    op2(prefixSIMD, 0x11),
	"i64x2.splat":    op2(prefixSIMD, 0x12),
	"f32x4.splat":    op2(prefixSIMD, 0x13),
	"f64x2.splat":    op2(prefixSIMD, 0x14),

	"i8x16.extract_lane_s": op2(prefixSIMD, 0x15),
	"i8x16.extract_lane_u": op2(prefixSIMD, 0x16),
	"i8x16.replace_lane":   op2(prefixSIMD, 0x17),
	"i16x8.extract_lane_s": op2(prefixSIMD, 0x18),
	"i16x8.extract_lane_u": op2(prefixSIMD, 0x19),
	"i16x8.replace_lane":   op2(prefixSIMD, 0x1A),
	"i32x4.extract_lane":   op2(prefixSIMD, 0x1B),
	"i32x4.replace_lane":   op2(prefixSIMD, 0x1C),
	"i64x2.extract_lane":   op2(prefixSIMD, 0x1D),
	"i64x2.replace_lane":   op2(prefixSIMD, 0x1E),
	"f32x4.extract_lane":   op2(prefixSIMD, 0x1F),
	"f32x4.replace_lane":   op2(prefixSIMD, 0x20),
	"f64x2.extract_lane":   op2(prefixSIMD, 0x21),
	"f64x2.replace_lane":   op2(prefixSIMD, 0x22),

	"i8x16.eq":  op2(prefixSIMD, 0x23),
	"i8x16.ne":  op2(prefixSIMD, 0x24),
	"i8x16.lt_s": op2(prefixSIMD, 0x25),
	"i8x16.lt_u": op2(prefixSIMD, 0x26),
	"i8x16.gt_s": op2(prefixSIMD, 0x27),
	"i8x16.gt_u": op2(prefixSIMD, 0x28),
	"i8x16.le_s": op2(prefixSIMD, 0x29),
	"i8x16.le_u": op2(prefixSIMD, 0x2A),
	"i8x16.ge_s": op2(prefixSIMD, 0x2B),
	"i8x16.ge_u": op2(prefixSIMD, 0x2C),

	"i16x8.eq":  op2(prefixSIMD, 0x2D),
	"i16x8.ne":  op2(prefixSIMD, 0x2E),
	"i16x8.lt_s": op2(prefixSIMD, 0x2F),
	"i16x8.lt_u": op2(prefixSIMD, 0x30),
	"i16x8.gt_s": op2(prefixSIMD, 0x31),
	"i16x8.gt_u": op2(prefixSIMD, 0x32),
	"i16x8.le_s": op2(prefixSIMD, 0x33),
	"i16x8.le_u": op2(prefixSIMD, 0x34),
	"i16x8.ge_s": op2(prefixSIMD, 0x35),
	"i16x8.ge_u": op2(prefixSIMD, 0x36),

	"i32x4.eq":  op2(prefixSIMD, 0x37),
	"i32x4.ne":  op2(prefixSIMD, 0x38),
	"i32x4.lt_s": op2(prefixSIMD, 0x39),
	"i32x4.lt_u": op2(prefixSIMD, 0x3A),
	"i32x4.gt_s": op2(prefixSIMD, 0x3B),
	"i32x4.gt_u": op2(prefixSIMD, 0x3C),
	"i32x4.le_s": op2(prefixSIMD, 0x3D),
	"i32x4.le_u": op2(prefixSIMD, 0x3E),
	"i32x4.ge_s": op2(prefixSIMD, 0x3F),
	"i32x4.ge_u": op2(prefixSIMD, 0x40),

	"f32x4.eq": op2(prefixSIMD, 0x41),
	"f32x4.ne": op2(prefixSIMD, 0x42),
	"f32x4.lt": op2(prefixSIMD, 0x43),
	"f32x4.gt": op2(prefixSIMD, 0x44),
	"f32x4.le": op2(prefixSIMD, 0x45),
	"f32x4.ge": op2(prefixSIMD, 0x46),

	"f64x2.eq": op2(prefixSIMD, 0x47),
	"f64x2.ne": op2(prefixSIMD, 0x48),
	"f64x2.lt": op2(prefixSIMD, 0x49),
	"f64x2.gt": op2(prefixSIMD, 0x4A),
	"f64x2.le": op2(prefixSIMD, 0x4B),
	"f64x2.ge": op2(prefixSIMD, 0x4C),

	"v128.not":       op2(prefixSIMD, 0x4D),
	"v128.and":       op2(prefixSIMD, 0x4E),
	"v128.andnot":    op2(prefixSIMD, 0x4F),
	"v128.or":        op2(prefixSIMD, 0x50),
	"v128.xor":       op2(prefixSIMD, 0x51),
	"v128.bitselect": op2(prefixSIMD, 0x52),
	"v128.any_true":  op2(prefixSIMD, 0x53),

	"v128.load8_lane":  op2(prefixSIMD, 0x54),
	"v128.load16_lane": op2(prefixSIMD, 0x55),
	"v128.load32_lane": op2(prefixSIMD, 0x56),
	"v128.load64_lane": op2(prefixSIMD, 0x57),
	"v128.store8_lane":  op2(prefixSIMD, 0x58),
	"v128.store16_lane": op2(prefixSIMD, 0x59),
	"v128.store32_lane": op2(prefixSIMD, 0x5A),
	"v128.store64_lane": op2(prefixSIMD, 0x5B),
	"v128.load32_zero":  op2(prefixSIMD, 0x5C),
	"v128.load64_zero":  op2(prefixSIMD, 0x5D),

	"f32x4.demote_f64x2_zero":  op2(prefixSIMD, 0x5E),
	"f64x2.promote_low_f32x4":  op2(prefixSIMD, 0x5F),

	"i8x16.abs":          op2(prefixSIMD, 0x60),
	"i8x16.neg":          op2(prefixSIMD, 0x61),
	"i8x16.popcnt":       op2(prefixSIMD, 0x62),
	"i8x16.all_true":     op2(prefixSIMD, 0x63),
	"i8x16.bitmask":      op2(prefixSIMD, 0x64),
	"i8x16.narrow_i16x8_s": op2(prefixSIMD, 0x65),
	"i8x16.narrow_i16x8_u": op2(prefixSIMD, 0x66),
	"i8x16.shl":          op2(prefixSIMD, 0x6B),
	"i8x16.shr_s":        op2(prefixSIMD, 0x6C),
	"i8x16.shr_u":        op2(prefixSIMD, 0x6D),
	"i8x16.add":          op2(prefixSIMD, 0x6E),
	"i8x16.add_sat_s":    op2(prefixSIMD, 0x6F),
	"i8x16.add_sat_u":    op2(prefixSIMD, 0x70),
	"i8x16.sub":          op2(prefixSIMD, 0x71),
	"i8x16.sub_sat_s":    op2(prefixSIMD, 0x72),
	"i8x16.sub_sat_u":    op2(prefixSIMD, 0x73),
	"i8x16.min_s":        op2(prefixSIMD, 0x76),
	"i8x16.min_u":        op2(prefixSIMD, 0x77),
	"i8x16.max_s":        op2(prefixSIMD, 0x78),
	"i8x16.max_u":        op2(prefixSIMD, 0x79),
	"i8x16.avgr_u":       op2(prefixSIMD, 0x7B),

	"i16x8.extadd_pairwise_i8x16_s": op2(prefixSIMD, 0x7C),
	"i16x8.extadd_pairwise_i8x16_u": op2(prefixSIMD, 0x7D),
	"i32x4.extadd_pairwise_i16x8_s": op2(prefixSIMD, 0x7E),
	"i32x4.extadd_pairwise_i16x8_u": op2(prefixSIMD, 0x7F),

	"i16x8.abs":          op2(prefixSIMD, 0x80),
	"i16x8.neg":          op2(prefixSIMD, 0x81),
	"i16x8.q15mulr_sat_s": op2(prefixSIMD, 0x82),
	"i16x8.all_true":     op2(prefixSIMD, 0x83),
	"i16x8.bitmask":      op2(prefixSIMD, 0x84),
	"i16x8.narrow_i32x4_s": op2(prefixSIMD, 0x85),
	"i16x8.narrow_i32x4_u": op2(prefixSIMD, 0x86),
	"i16x8.extend_low_i8x16_s":  op2(prefixSIMD, 0x87),
	"i16x8.extend_high_i8x16_s": op2(prefixSIMD, 0x88),
	"i16x8.extend_low_i8x16_u":  op2(prefixSIMD, 0x89),
	"i16x8.extend_high_i8x16_u": op2(prefixSIMD, 0x8A),
	"i16x8.shl":          op2(prefixSIMD, 0x8B),
	"i16x8.shr_s":        op2(prefixSIMD, 0x8C),
	"i16x8.shr_u":        op2(prefixSIMD, 0x8D),
	"i16x8.add":          op2(prefixSIMD, 0x8E),
	"i16x8.add_sat_s":    op2(prefixSIMD, 0x8F),
	"i16x8.add_sat_u":    op2(prefixSIMD, 0x90),
	"i16x8.sub":          op2(prefixSIMD, 0x91),
	"i16x8.sub_sat_s":    op2(prefixSIMD, 0x92),
	"i16x8.sub_sat_u":    op2(prefixSIMD, 0x93),
	"i16x8.mul":          op2(prefixSIMD, 0x95),
	"i16x8.min_s":        op2(prefixSIMD, 0x96),
	"i16x8.min_u":        op2(prefixSIMD, 0x97),
	"i16x8.max_s":        op2(prefixSIMD, 0x98),
	"i16x8.max_u":        op2(prefixSIMD, 0x99),
	"i16x8.avgr_u":       op2(prefixSIMD, 0x9B),
	"i16x8.extmul_low_i8x16_s":  op2(prefixSIMD, 0x9C),
	"i16x8.extmul_high_i8x16_s": op2(prefixSIMD, 0x9D),
	"i16x8.extmul_low_i8x16_u":  op2(prefixSIMD, 0x9E),
	"i16x8.extmul_high_i8x16_u": op2(prefixSIMD, 0x9F),

	"i32x4.abs":          op2(prefixSIMD, 0xA0),
	"i32x4.neg":          op2(prefixSIMD, 0xA1),
	"i32x4.all_true":     op2(prefixSIMD, 0xA3),
	"i32x4.bitmask":      op2(prefixSIMD, 0xA4),
	"i32x4.extend_low_i16x8_s":  op2(prefixSIMD, 0xA7),
	"i32x4.extend_high_i16x8_s": op2(prefixSIMD, 0xA8),
	"i32x4.extend_low_i16x8_u":  op2(prefixSIMD, 0xA9),
	"i32x4.extend_high_i16x8_u": op2(prefixSIMD, 0xAA),
	"i32x4.shl":          op2(prefixSIMD, 0xAB),
	"i32x4.shr_s":        op2(prefixSIMD, 0xAC),
	"i32x4.shr_u":        op2(prefixSIMD, 0xAD),
	"i32x4.add":          op2(prefixSIMD, 0xAE),
	"i32x4.sub":          op2(prefixSIMD, 0xB1),
	"i32x4.mul":          op2(prefixSIMD, 0xB5),
	"i32x4.min_s":        op2(prefixSIMD, 0xB6),
	"i32x4.min_u":        op2(prefixSIMD, 0xB7),
	"i32x4.max_s":        op2(prefixSIMD, 0xB8),
	"i32x4.max_u":        op2(prefixSIMD, 0xB9),
	"i32x4.dot_i16x8_s":  op2(prefixSIMD, 0xBA),
	"i32x4.extmul_low_i16x8_s":  op2(prefixSIMD, 0xBC),
	"i32x4.extmul_high_i16x8_s": op2(prefixSIMD, 0xBD),
	"i32x4.extmul_low_i16x8_u":  op2(prefixSIMD, 0xBE),
	"i32x4.extmul_high_i16x8_u": op2(prefixSIMD, 0xBF),

	"i64x2.abs":          op2(prefixSIMD, 0xC0),
	"i64x2.neg":          op2(prefixSIMD, 0xC1),
	"i64x2.all_true":     op2(prefixSIMD, 0xC3),
	"i64x2.bitmask":      op2(prefixSIMD, 0xC4),
	"i64x2.extend_low_i32x4_s":  op2(prefixSIMD, 0xC7),
	"i64x2.extend_high_i32x4_s": op2(prefixSIMD, 0xC8),
	"i64x2.extend_low_i32x4_u":  op2(prefixSIMD, 0xC9),
	"i64x2.extend_high_i32x4_u": op2(prefixSIMD, 0xCA),
	"i64x2.shl":          op2(prefixSIMD, 0xCB),
	"i64x2.shr_s":        op2(prefixSIMD, 0xCC),
	"i64x2.shr_u":        op2(prefixSIMD, 0xCD),
	"i64x2.add":          op2(prefixSIMD, 0xCE),
	"i64x2.sub":          op2(prefixSIMD, 0xD1),
	"i64x2.mul":          op2(prefixSIMD, 0xD5),
	"i64x2.eq":           op2(prefixSIMD, 0xD6),
	"i64x2.ne":           op2(prefixSIMD, 0xD7),
	"i64x2.lt_s":         op2(prefixSIMD, 0xD8),
	"i64x2.gt_s":         op2(prefixSIMD, 0xD9),
	"i64x2.le_s":         op2(prefixSIMD, 0xDA),
	"i64x2.ge_s":         op2(prefixSIMD, 0xDB),
	"i64x2.extmul_low_i32x4_s":  op2(prefixSIMD, 0xDC),
	"i64x2.extmul_high_i32x4_s": op2(prefixSIMD, 0xDD),
	"i64x2.extmul_low_i32x4_u":  op2(prefixSIMD, 0xDE),
	"i64x2.extmul_high_i32x4_u": op2(prefixSIMD, 0xDF),

	"f32x4.ceil":    op2(prefixSIMD, 0x67),
	"f32x4.floor":   op2(prefixSIMD, 0x68),
	"f32x4.trunc":   op2(prefixSIMD, 0x69),
	"f32x4.nearest": op2(prefixSIMD, 0x6A),
	"f64x2.ceil":    op2(prefixSIMD, 0x74),
	"f64x2.floor":   op2(prefixSIMD, 0x75),
	"f64x2.trunc":   op2(prefixSIMD, 0x7A),
	"f64x2.nearest": op2(prefixSIMD, 0x94),

	"f32x4.abs":     op2(prefixSIMD, 0xE0),
	"f32x4.neg":     op2(prefixSIMD, 0xE1),
	"f32x4.sqrt":    op2(prefixSIMD, 0xE3),
	"f32x4.add":     op2(prefixSIMD, 0xE4),
	"f32x4.sub":     op2(prefixSIMD, 0xE5),
	"f32x4.mul":     op2(prefixSIMD, 0xE6),
	"f32x4.div":     op2(prefixSIMD, 0xE7),
	"f32x4.min":     op2(prefixSIMD, 0xE8),
	"f32x4.max":     op2(prefixSIMD, 0xE9),
	"f32x4.pmin":    op2(prefixSIMD, 0xEA),
	"f32x4.pmax":    op2(prefixSIMD, 0xEB),

	"f64x2.abs":  op2(prefixSIMD, 0xEC),
	"f64x2.neg":  op2(prefixSIMD, 0xED),
	"f64x2.sqrt": op2(prefixSIMD, 0xEF),
	"f64x2.add":  op2(prefixSIMD, 0xF0),
	"f64x2.sub":  op2(prefixSIMD, 0xF1),
	"f64x2.mul":  op2(prefixSIMD, 0xF2),
	"f64x2.div":  op2(prefixSIMD, 0xF3),
	"f64x2.min":  op2(prefixSIMD, 0xF4),
	"f64x2.max":  op2(prefixSIMD, 0xF5),
	"f64x2.pmin": op2(prefixSIMD, 0xF6),
	"f64x2.pmax": op2(prefixSIMD, 0xF7),

	"i32x4.trunc_sat_f32x4_s": op2(prefixSIMD, 0xF8),
	"i32x4.trunc_sat_f32x4_u": op2(prefixSIMD, 0xF9),
	"f32x4.convert_i32x4_s":   op2(prefixSIMD, 0xFA),
	"f32x4.convert_i32x4_u":   op2(prefixSIMD, 0xFB),
	"i32x4.trunc_sat_f64x2_s_zero": op2(prefixSIMD, 0xFC),
	"i32x4.trunc_sat_f64x2_u_zero": op2(prefixSIMD, 0xFD),
	"f64x2.convert_low_i32x4_s":    op2(prefixSIMD, 0xFE),
	"f64x2.convert_low_i32x4_u":    op2(prefixSIMD, 0xFF),

	// Relaxed SIMD proposal (a representative subset).
	"i8x16.relaxed_swizzle":       op3(prefixSIMD, 0x100),
	"i32x4.relaxed_trunc_f32x4_s": op3(prefixSIMD, 0x101),
	"i32x4.relaxed_trunc_f32x4_u": op3(prefixSIMD, 0x102),
	"i32x4.relaxed_trunc_f64x2_s_zero": op3(prefixSIMD, 0x103),
	"i32x4.relaxed_trunc_f64x2_u_zero": op3(prefixSIMD, 0x104),
	"f32x4.relaxed_madd":    op3(prefixSIMD, 0x105),
	"f32x4.relaxed_nmadd":   op3(prefixSIMD, 0x106),
	"f64x2.relaxed_madd":    op3(prefixSIMD, 0x107),
	"f64x2.relaxed_nmadd":   op3(prefixSIMD, 0x108),
	"i8x16.relaxed_laneselect": op3(prefixSIMD, 0x109),
	"i16x8.relaxed_laneselect": op3(prefixSIMD, 0x10A),
	"i32x4.relaxed_laneselect": op3(prefixSIMD, 0x10B),
	"i64x2.relaxed_laneselect": op3(prefixSIMD, 0x10C),
	"f32x4.relaxed_min": op3(prefixSIMD, 0x10D),
	"f32x4.relaxed_max": op3(prefixSIMD, 0x10E),
	"f64x2.relaxed_min": op3(prefixSIMD, 0x10F),
	"f64x2.relaxed_max": op3(prefixSIMD, 0x110),
	"i16x8.relaxed_q15mulr_s": op3(prefixSIMD, 0x111),
	"i16x8.relaxed_dot_i8x16_i7x16_s":     op3(prefixSIMD, 0x112),
	"i32x4.relaxed_dot_i8x16_i7x16_add_s": op3(prefixSIMD, 0x113),
}
