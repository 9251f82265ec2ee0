package wasmencode_test

import (
	"fmt"
	"log"

	"github.com/gowasm/wasmencode"
	"github.com/gowasm/wasmencode/op"
)

// This example builds a two-parameter add function by name and encodes it to
// a complete .wasm binary. Every cross-reference (the parameters here, but
// equally functions, globals, tables, or block labels) is a symbolic name
// resolved to its index at encode time.
func ExampleEncodeModule() {
	m := &wasmencode.Module{
		Functions: []wasmencode.Function{
			{
				Name:   "add",
				Export: true,
				Params: []wasmencode.NamedValueType{
					{Name: "num1", Type: op.I32},
					{Name: "num2", Type: op.I32},
				},
				Results: []wasmencode.ValueType{op.I32},
				Instructions: op.Seq(
					op.LocalGet("num1"),
					op.LocalGet("num2"),
					op.I32Add,
					op.End(),
				),
			},
		},
	}

	bin, err := wasmencode.EncodeModule(m)
	if err != nil {
		log.Panicln(err)
	}

	fmt.Printf("%x\n", bin[:8])
	// Output:
	// 0061736d01000000
}

// This example assembles the same module incrementally with an Encoder, the
// entry point for callers that build a module up piecemeal.
func ExampleNewEncoder() {
	bin, err := wasmencode.NewEncoder().
		AddFunction(wasmencode.Function{
			Name:    "doNothing",
			Export:  true,
			Results: []wasmencode.ValueType{op.I32},
			Instructions: op.Seq(
				op.I32Const(0),
				op.End(),
			),
		}).
		AddCustomSection(wasmencode.CustomSection{Name: "producers", Content: []byte{0x00}}).
		Encode()
	if err != nil {
		log.Panicln(err)
	}

	fmt.Println(len(bin) > 8)
	// Output:
	// true
}
