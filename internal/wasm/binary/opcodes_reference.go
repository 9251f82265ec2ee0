package binary

// referenceOpcodes covers the reference-types proposal's core ref.*
// instructions.
var referenceOpcodes = map[string]Opcode{
	"ref.null":    0xD0,
	"ref.is_null": 0xD1,
	"ref.func":    0xD2,
	"ref.eq":      0xD3,
	"ref.as_non_null": 0xD4,
}

// gcOpcodes covers the garbage-collection proposal's struct/array/i31/any/
// extern/cast family, all under the GC (0xFB) prefix.
var gcOpcodes = map[string]Opcode{
	"struct.new":         op2(prefixGC, 0x00),
	"struct.new_default": op2(prefixGC, 0x01),
	"struct.get":         op2(prefixGC, 0x02),
	"struct.get_s":       op2(prefixGC, 0x03),
	"struct.get_u":       op2(prefixGC, 0x04),
	"struct.set":         op2(prefixGC, 0x05),

	"array.new":           op2(prefixGC, 0x06),
	"array.new_default":   op2(prefixGC, 0x07),
	"array.new_fixed":     op2(prefixGC, 0x08),
	"array.new_data":      op2(prefixGC, 0x09),
	"array.new_elem":      op2(prefixGC, 0x0A),
	"array.get":           op2(prefixGC, 0x0B),
	"array.get_s":         op2(prefixGC, 0x0C),
	"array.get_u":         op2(prefixGC, 0x0D),
	"array.set":           op2(prefixGC, 0x0E),
	"array.len":           op2(prefixGC, 0x0F),
	"array.fill":          op2(prefixGC, 0x10),
	"array.copy":          op2(prefixGC, 0x11),
	"array.init_data":     op2(prefixGC, 0x12),
	"array.init_elem":     op2(prefixGC, 0x13),

	"ref.test":           op2(prefixGC, 0x14),
	"ref.test_null":      op2(prefixGC, 0x15),
	"ref.cast":           op2(prefixGC, 0x16),
	"ref.cast_null":      op2(prefixGC, 0x17),
	"br_on_cast":         op2(prefixGC, 0x18),
	"br_on_cast_fail":    op2(prefixGC, 0x19),

	"any.convert_extern": op2(prefixGC, 0x1A),
	"extern.convert_any": op2(prefixGC, 0x1B),

	"ref.i31":      op2(prefixGC, 0x1C),
	"i31.get_s":    op2(prefixGC, 0x1D),
	"i31.get_u":    op2(prefixGC, 0x1E),
}
