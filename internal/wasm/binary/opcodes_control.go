package binary

// controlOpcodes covers unreachable/nop/block/loop/if/else/end, branches,
// calls, and the tail-call and typed-function-reference additions.
var controlOpcodes = map[string]Opcode{
	"unreachable": 0x00,
	"nop":         0x01,
	"block":       0x02,
	"loop":        0x03,
	"if":          0x04,
	"else":        0x05,
	"end":         0x0B,

	"br":       0x0C,
	"br_if":    0x0D,
	"br_table": 0x0E,
	"return":   0x0F,

	"call":          0x10,
	"call_indirect": 0x11,

	// Tail calls proposal.
	"return_call":          0x12,
	"return_call_indirect": 0x13,

	// Typed function references proposal.
	"call_ref":        0x14,
	"return_call_ref": 0x15,

	// GC/function-references branch instructions.
	"br_on_null":     0xD5,
	"br_on_non_null": 0xD6,
}

// parametricOpcodes covers drop/select.
var parametricOpcodes = map[string]Opcode{
	"drop":             0x1A,
	"select":           0x1B,
	"select_with_type": 0x1C,
}

// variableOpcodes covers local/global access.
var variableOpcodes = map[string]Opcode{
	"local.get":  0x20,
	"local.set":  0x21,
	"local.tee":  0x22,
	"global.get": 0x23,
	"global.set": 0x24,
}
