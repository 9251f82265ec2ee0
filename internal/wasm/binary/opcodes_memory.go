package binary

// memoryOpcodes covers the unprefixed core load/store instructions and
// memory.size/memory.grow.
var memoryOpcodes = map[string]Opcode{
	"i32.load":    0x28,
	"i64.load":    0x29,
	"f32.load":    0x2A,
	"f64.load":    0x2B,
	"i32.load8_s":  0x2C,
	"i32.load8_u":  0x2D,
	"i32.load16_s": 0x2E,
	"i32.load16_u": 0x2F,
	"i64.load8_s":  0x30,
	"i64.load8_u":  0x31,
	"i64.load16_s": 0x32,
	"i64.load16_u": 0x33,
	"i64.load32_s": 0x34,
	"i64.load32_u": 0x35,

	"i32.store":   0x36,
	"i64.store":   0x37,
	"f32.store":   0x38,
	"f64.store":   0x39,
	"i32.store8":  0x3A,
	"i32.store16": 0x3B,
	"i64.store8":  0x3C,
	"i64.store16": 0x3D,
	"i64.store32": 0x3E,

	"memory.size": 0x3F,
	"memory.grow": 0x40,
}

// bulkMemoryOpcodes covers the bulk-memory proposal's memory/table/elem/data
// management instructions (all under the misc 0xFC prefix).
var bulkMemoryOpcodes = map[string]Opcode{
	"memory.init": op2(prefixMisc, 0x08),
	"data.drop":   op2(prefixMisc, 0x09),
	"memory.copy": op2(prefixMisc, 0x0A),
	"memory.fill": op2(prefixMisc, 0x0B),

	"table.init": op2(prefixMisc, 0x0C),
	"elem.drop":  op2(prefixMisc, 0x0D),
	"table.copy": op2(prefixMisc, 0x0E),
	"table.grow": op2(prefixMisc, 0x0F),
	"table.size": op2(prefixMisc, 0x10),
	"table.fill": op2(prefixMisc, 0x11),
}

// tableOpcodes covers the reference-types proposal's direct table.get/set.
var tableOpcodes = map[string]Opcode{
	"table.get": 0x25,
	"table.set": 0x26,
}

// atomicOpcodes covers the threads proposal: memory.atomic.notify/wait and
// the read-modify-write/fence family, all under the atomic 0xFE prefix.
var atomicOpcodes = map[string]Opcode{
	"memory.atomic.notify":   op2(prefixAtomic, 0x00),
	"memory.atomic.wait32":   op2(prefixAtomic, 0x01),
	"memory.atomic.wait64":   op2(prefixAtomic, 0x02),
	"atomic.fence":           op2(prefixAtomic, 0x03),

	"i32.atomic.load":    op2(prefixAtomic, 0x10),
	"i64.atomic.load":    op2(prefixAtomic, 0x11),
	"i32.atomic.load8_u":  op2(prefixAtomic, 0x12),
	"i32.atomic.load16_u": op2(prefixAtomic, 0x13),
	"i64.atomic.load8_u":  op2(prefixAtomic, 0x14),
	"i64.atomic.load16_u": op2(prefixAtomic, 0x15),
	"i64.atomic.load32_u": op2(prefixAtomic, 0x16),
	"i32.atomic.store":    op2(prefixAtomic, 0x17),
	"i64.atomic.store":    op2(prefixAtomic, 0x18),
	"i32.atomic.store8":   op2(prefixAtomic, 0x19),
	"i32.atomic.store16":  op2(prefixAtomic, 0x1A),
	"i64.atomic.store8":   op2(prefixAtomic, 0x1B),
	"i64.atomic.store16":  op2(prefixAtomic, 0x1C),
	"i64.atomic.store32":  op2(prefixAtomic, 0x1D),

	"i32.atomic.rmw.add":       op2(prefixAtomic, 0x1E),
	"i64.atomic.rmw.add":       op2(prefixAtomic, 0x1F),
	"i32.atomic.rmw8.add_u":    op2(prefixAtomic, 0x20),
	"i32.atomic.rmw16.add_u":   op2(prefixAtomic, 0x21),
	"i64.atomic.rmw8.add_u":    op2(prefixAtomic, 0x22),
	"i64.atomic.rmw16.add_u":   op2(prefixAtomic, 0x23),
	"i64.atomic.rmw32.add_u":   op2(prefixAtomic, 0x24),

	"i32.atomic.rmw.sub":     op2(prefixAtomic, 0x25),
	"i64.atomic.rmw.sub":     op2(prefixAtomic, 0x26),
	"i32.atomic.rmw8.sub_u":  op2(prefixAtomic, 0x27),
	"i32.atomic.rmw16.sub_u": op2(prefixAtomic, 0x28),
	"i64.atomic.rmw8.sub_u":  op2(prefixAtomic, 0x29),
	"i64.atomic.rmw16.sub_u": op2(prefixAtomic, 0x2A),
	"i64.atomic.rmw32.sub_u": op2(prefixAtomic, 0x2B),

	"i32.atomic.rmw.and":     op2(prefixAtomic, 0x2C),
	"i64.atomic.rmw.and":     op2(prefixAtomic, 0x2D),
	"i32.atomic.rmw8.and_u":  op2(prefixAtomic, 0x2E),
	"i32.atomic.rmw16.and_u": op2(prefixAtomic, 0x2F),
	"i64.atomic.rmw8.and_u":  op2(prefixAtomic, 0x30),
	"i64.atomic.rmw16.and_u": op2(prefixAtomic, 0x31),
	"i64.atomic.rmw32.and_u": op2(prefixAtomic, 0x32),

	"i32.atomic.rmw.or":     op2(prefixAtomic, 0x33),
	"i64.atomic.rmw.or":     op2(prefixAtomic, 0x34),
	"i32.atomic.rmw8.or_u":  op2(prefixAtomic, 0x35),
	"i32.atomic.rmw16.or_u": op2(prefixAtomic, 0x36),
	"i64.atomic.rmw8.or_u":  op2(prefixAtomic, 0x37),
	"i64.atomic.rmw16.or_u": op2(prefixAtomic, 0x38),
	"i64.atomic.rmw32.or_u": op2(prefixAtomic, 0x39),

	"i32.atomic.rmw.xor":     op2(prefixAtomic, 0x3A),
	"i64.atomic.rmw.xor":     op2(prefixAtomic, 0x3B),
	"i32.atomic.rmw8.xor_u":  op2(prefixAtomic, 0x3C),
	"i32.atomic.rmw16.xor_u": op2(prefixAtomic, 0x3D),
	"i64.atomic.rmw8.xor_u":  op2(prefixAtomic, 0x3E),
	"i64.atomic.rmw16.xor_u": op2(prefixAtomic, 0x3F),
	"i64.atomic.rmw32.xor_u": op2(prefixAtomic, 0x40),

	"i32.atomic.rmw.xchg":     op2(prefixAtomic, 0x41),
	"i64.atomic.rmw.xchg":     op2(prefixAtomic, 0x42),
	"i32.atomic.rmw8.xchg_u":  op2(prefixAtomic, 0x43),
	"i32.atomic.rmw16.xchg_u": op2(prefixAtomic, 0x44),
	"i64.atomic.rmw8.xchg_u":  op2(prefixAtomic, 0x45),
	"i64.atomic.rmw16.xchg_u": op2(prefixAtomic, 0x46),
	"i64.atomic.rmw32.xchg_u": op2(prefixAtomic, 0x47),

	"i32.atomic.rmw.cmpxchg":     op2(prefixAtomic, 0x48),
	"i64.atomic.rmw.cmpxchg":     op2(prefixAtomic, 0x49),
	"i32.atomic.rmw8.cmpxchg_u":  op2(prefixAtomic, 0x4A),
	"i32.atomic.rmw16.cmpxchg_u": op2(prefixAtomic, 0x4B),
	"i64.atomic.rmw8.cmpxchg_u":  op2(prefixAtomic, 0x4C),
	"i64.atomic.rmw16.cmpxchg_u": op2(prefixAtomic, 0x4D),
	"i64.atomic.rmw32.cmpxchg_u": op2(prefixAtomic, 0x4E),
}
