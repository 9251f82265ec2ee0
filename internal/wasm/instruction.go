package wasm

import "github.com/gowasm/wasmencode/api"

// Instruction is one instruction of a function body, global initializer, or
// element/data offset expression: a mnemonic, an immediates emitter closure
// invoked at emission time with the sink and the then-current resolution
// context, and, for block-structured instructions, a block name and nested
// body. Every other instruction is a leaf with a nil Body.
//
// Instruction values are constructed exclusively by the op package, consumed
// once during encoding, and then discarded; they carry no other lifetime.
type Instruction struct {
	Mnemonic  string
	Immediate func(sink *Sink, ctx *Context) error

	// BlockName and Body are set only for block, loop, and if. Body is a flat,
	// already-nested-flattened instruction list; for if, an else arm (if any)
	// is simply an "else" leaf instruction appearing inside Body, and the
	// block's own terminating "end" leaf is likewise the caller's
	// responsibility to include as Body's last element; the DSL never
	// auto-inserts it.
	BlockName string
	Returns   []api.ValueType // single-result shorthand; empty means the 0x40 empty block type
	HasReturn bool

	// BlockTypeName names a custom function-type entry to use as this
	// block's type, resolved at emission time to a signed LEB128 type
	// index. Set only for a multi-value block (more than one result, or
	// any parameters); the single-result shorthand above covers the
	// common case without requiring a type-section entry.
	BlockTypeName string

	Body []Instruction
}

// Flatten accepts a mix of Instruction, []Instruction, and nested slices
// thereof and returns a single depth-first flattened slice, so nested
// instruction lists are permitted anywhere instructions are expected.
func Flatten(items ...interface{}) []Instruction {
	out := make([]Instruction, 0, len(items))
	var walk func(interface{})
	walk = func(item interface{}) {
		switch v := item.(type) {
		case Instruction:
			out = append(out, v)
		case []Instruction:
			for _, ins := range v {
				out = append(out, ins)
			}
		case [][]Instruction:
			for _, group := range v {
				walk(group)
			}
		case []interface{}:
			for _, n := range v {
				walk(n)
			}
		case nil:
			// skip
		}
	}
	for _, item := range items {
		walk(item)
	}
	return out
}
