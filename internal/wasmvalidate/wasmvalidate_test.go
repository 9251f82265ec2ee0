// Package wasmvalidate is not a library package: it exercises the encoder
// end to end by handing its output to the real tetratelabs/wazero runtime
// and checking the returned values, rather than only inspecting bytes.
package wasmvalidate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/gowasm/wasmencode"
	"github.com/gowasm/wasmencode/op"
)

func runExported(t *testing.T, wasmBytes []byte, fnName string, args ...uint64) []uint64 {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, wasmBytes)
	require.NoError(t, err)

	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	require.NoError(t, err)
	defer mod.Close(ctx)

	fn := mod.ExportedFunction(fnName)
	require.NotNil(t, fn, "export %q not found", fnName)

	results, err := fn.Call(ctx, args...)
	require.NoError(t, err)
	return results
}

func TestDoNothing(t *testing.T) {
	// A no-op function returning a constant 0.
	e := wasmencode.NewEncoder().AddFunction(wasmencode.Function{
		Name:    "doNothing",
		Export:  true,
		Results: []wasmencode.ValueType{op.I32},
		Instructions: op.Seq(
			op.I32Const(0),
			op.End(),
		),
	})
	out, err := e.Encode()
	require.NoError(t, err)

	results := runExported(t, out, "doNothing")
	require.Equal(t, []uint64{0}, results)
}

func TestAdd(t *testing.T) {
	// add(5, 3) == 8.
	e := wasmencode.NewEncoder().AddFunction(wasmencode.Function{
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
	})
	out, err := e.Encode()
	require.NoError(t, err)

	results := runExported(t, out, "add", api.EncodeI32(5), api.EncodeI32(3))
	require.Equal(t, int32(8), api.DecodeI32(results[0]))
}

func TestIsGreaterThan(t *testing.T) {
	// isGreaterThan(a, b) == a > b, via an if/else
	// with an i32 block type.
	e := wasmencode.NewEncoder().AddFunction(wasmencode.Function{
		Name:   "isGreaterThan",
		Export: true,
		Params: []wasmencode.NamedValueType{
			{Name: "a", Type: op.I32},
			{Name: "b", Type: op.I32},
		},
		Results: []wasmencode.ValueType{op.I32},
		Instructions: op.Seq(
			op.LocalGet("a"),
			op.LocalGet("b"),
			op.I32GtS,
			op.IfResult("cmp", op.I32,
				op.I32Const(1),
				op.Else(),
				op.I32Const(0),
				op.End(),
			),
			op.End(),
		),
	})
	out, err := e.Encode()
	require.NoError(t, err)

	results := runExported(t, out, "isGreaterThan", api.EncodeI32(5), api.EncodeI32(3))
	require.Equal(t, int32(1), api.DecodeI32(results[0]))

	results = runExported(t, out, "isGreaterThan", api.EncodeI32(3), api.EncodeI32(5))
	require.Equal(t, int32(0), api.DecodeI32(results[0]))
}

func TestAdd10KTimes(t *testing.T) {
	// add10_KTimes(start, times) accumulates
	// start += 10 for times iterations via a counting loop with one
	// declared local.
	e := wasmencode.NewEncoder().AddFunction(wasmencode.Function{
		Name:   "add10_KTimes",
		Export: true,
		Params: []wasmencode.NamedValueType{
			{Name: "start", Type: op.I32},
			{Name: "times", Type: op.I32},
		},
		Results: []wasmencode.ValueType{op.I32},
		Locals: []wasmencode.NamedValueType{
			{Name: "counter", Type: op.I32},
		},
		Instructions: op.Seq(
			op.Loop("again",
				op.LocalGet("counter"),
				op.LocalGet("times"),
				op.I32LtS,
				op.IfResult("continue", op.I32,
					op.LocalGet("start"),
					op.I32Const(10),
					op.I32Add,
					op.LocalSet("start"),
					op.LocalGet("counter"),
					op.I32Const(1),
					op.I32Add,
					op.LocalSet("counter"),
					op.Br("again"),
					op.Else(),
					op.I32Const(0),
					op.End(),
				),
				op.Drop(),
				op.End(),
			),
			op.LocalGet("start"),
			op.End(),
		),
	})
	out, err := e.Encode()
	require.NoError(t, err)

	results := runExported(t, out, "add10_KTimes", api.EncodeI32(10), api.EncodeI32(7))
	require.Equal(t, int32(80), api.DecodeI32(results[0]))
}
