package binary

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gowasm/wasmencode/api"
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

func encode(t *testing.T, m *wasm.Module) []byte {
	t.Helper()
	out, err := EncodeModule(m, 64, zap.NewNop())
	require.NoError(t, err)
	return out
}

func TestEncodeModule_Empty(t *testing.T) {
	// An empty module encodes to exactly the 8-byte preamble.
	out := encode(t, &wasm.Module{})
	require.Equal(t, modulePreamble, out)
	require.Len(t, out, 8)
}

func TestEncodeModule_Determinism(t *testing.T) {
	m := &wasm.Module{
		Functions: []wasm.Function{
			{
				Name: "f", Export: true, Results: []wasm.ValueType{api.ValueTypeI32},
				Instructions: []wasm.Instruction{
					{Mnemonic: "i32.const", Immediate: constI32(0)},
					{Mnemonic: "end"},
				},
			},
		},
	}
	first := encode(t, m)
	second := encode(t, m)
	require.Equal(t, first, second)
}

func TestEncodeModule_DoNothing(t *testing.T) {
	// One exported nullary function returning a constant.
	m := &wasm.Module{
		Functions: []wasm.Function{
			{
				Name: "doNothing", Export: true,
				Results: []wasm.ValueType{api.ValueTypeI32},
				Instructions: []wasm.Instruction{
					{Mnemonic: "i32.const", Immediate: constI32(0)},
					{Mnemonic: "end"},
				},
			},
		},
	}
	out := encode(t, m)

	expected := append([]byte{}, modulePreamble...)
	expected = append(expected,
		sectionIDType, 0x05, 0x01, 0x60, 0x00, 0x01, 0x7f,
		sectionIDFunction, 0x02, 0x01, 0x00,
		sectionIDExport, 0x0d, 0x01, 0x09, 'd', 'o', 'N', 'o', 't', 'h', 'i', 'n', 'g', 0x00, 0x00,
		sectionIDCode, 0x06, 0x01, 0x04, 0x00, 0x41, 0x00, 0x0b,
	)
	require.Equal(t, expected, out)
}

func TestEncodeModule_Add(t *testing.T) {
	// Two i32 params, no declared locals: locals count 0, then
	// [0x20,0x00, 0x20,0x01, 0x6A, 0x0B].
	m := &wasm.Module{
		Functions: []wasm.Function{
			{
				Name:    "add",
				Export:  true,
				Params:  []wasm.NamedValueType{{Name: "num1", Type: api.ValueTypeI32}, {Name: "num2", Type: api.ValueTypeI32}},
				Results: []wasm.ValueType{api.ValueTypeI32},
				Instructions: []wasm.Instruction{
					localGet("num1"),
					localGet("num2"),
					{Mnemonic: "i32.add"},
					{Mnemonic: "end"},
				},
			},
		},
	}
	out := encode(t, m)

	// The code section is last: count 1, body size 7, locals count 0, then
	// the six instruction bytes.
	codeSectionStart := len(out) - 11
	require.Equal(t, []byte{sectionIDCode, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b}, out[codeSectionStart:])
}

func TestEncodeModule_SignedLEB128Edge(t *testing.T) {
	// i32.const(-1) must land as the two bytes 0x41 0x7f.
	m := &wasm.Module{
		Functions: []wasm.Function{
			{
				Name: "neg1", Results: []wasm.ValueType{api.ValueTypeI32},
				Instructions: []wasm.Instruction{
					{Mnemonic: "i32.const", Immediate: constI32(-1)},
					{Mnemonic: "end"},
				},
			},
		},
	}
	out := encode(t, m)
	require.Contains(t, string(out), string([]byte{0x41, 0x7f}))
}

func TestEncodeModule_BranchTable(t *testing.T) {
	// Three nested blocks c(innermost), b, a; br_table
	// must emit depths [2,0] then default depth 1.
	innerBody := []wasm.Instruction{
		{
			Mnemonic: "br_table",
			Immediate: func(sink *wasm.Sink, ctx *wasm.Context) error {
				targets := []string{"a", "c"}
				sink.AppendOne(byte(len(targets)))
				for _, name := range targets {
					depth, err := ctx.BranchDepth(name)
					if err != nil {
						return err
					}
					sink.AppendOne(byte(depth))
				}
				depth, err := ctx.BranchDepth("b")
				if err != nil {
					return err
				}
				sink.AppendOne(byte(depth))
				return nil
			},
		},
		{Mnemonic: "end"},
	}
	middle := wasm.Instruction{Mnemonic: "block", BlockName: "c", Body: innerBody}
	outer := wasm.Instruction{Mnemonic: "block", BlockName: "b", Body: append([]wasm.Instruction{middle}, wasm.Instruction{Mnemonic: "end"})}
	top := wasm.Instruction{Mnemonic: "block", BlockName: "a", Body: append([]wasm.Instruction{outer}, wasm.Instruction{Mnemonic: "end"})}

	m := &wasm.Module{
		Functions: []wasm.Function{
			{Name: "f", Instructions: append([]wasm.Instruction{top}, wasm.Instruction{Mnemonic: "end"})},
		},
	}
	out := encode(t, m)
	require.NotEmpty(t, out)

	depths := extractTrailingBranchTableDepths(t, out)
	require.Equal(t, []byte{2, 0, 1}, depths)
}

// extractTrailingBranchTableDepths finds the br_table opcode (0x0E) in out
// and returns the three bytes that follow its target-count byte (2, the
// two target depths, then the default depth).
func extractTrailingBranchTableDepths(t *testing.T, out []byte) []byte {
	t.Helper()
	for i, b := range out {
		if b == 0x0E && i+4 < len(out) && out[i+1] == 0x02 {
			return []byte{out[i+2], out[i+3], out[i+4]}
		}
	}
	t.Fatal("br_table opcode not found")
	return nil
}

func TestEncodeModule_SectionOrdering(t *testing.T) {
	one := uint32(1)
	m := &wasm.Module{
		Functions: []wasm.Function{
			{Name: "start", Instructions: []wasm.Instruction{{Mnemonic: "end"}}},
		},
		Globals: []wasm.Global{
			{Name: "g", Type: api.ValueTypeI32, Mutable: true},
		},
		Tables:   []wasm.Table{{Name: "t", RefType: wasm.RefType{HeapType: api.HeapTypeFunc}, Limits: wasm.Limits{Min: 1}}},
		Memories: []wasm.Memory{{Name: "m", Limits: wasm.Limits{Min: 1, Max: &one}}},
		Start:    "start",
		Elements: []wasm.ElementSegment{
			{Name: "e", Mode: wasm.ElementModePassiveFuncs, FuncNames: []string{"start"}},
		},
		Data: []wasm.DataSegment{
			{Name: "d", Mode: wasm.DataModePassive, Bytes: []byte("hi")},
		},
		CustomSections: []wasm.CustomSection{{Name: "producers", Content: []byte{0x00}}},
	}
	m.Globals[0].Init = []wasm.Instruction{{Mnemonic: "i32.const", Immediate: constI32(0)}, {Mnemonic: "end"}}

	out := encode(t, m)

	var ids []byte
	for i := 8; i < len(out); {
		id := out[i]
		ids = append(ids, id)
		i++
		length, n := readTestLEB(out[i:])
		i += n + length
	}
	require.Equal(t, []byte{
		sectionIDType, sectionIDFunction, sectionIDTable, sectionIDMemory,
		sectionIDGlobal, sectionIDStart, sectionIDElement, sectionIDDataCount,
		sectionIDCode, sectionIDData, customSectionID,
	}, ids)
}

func readTestLEB(b []byte) (value int, n int) {
	shift := 0
	for {
		v := b[n]
		value |= int(v&0x7f) << shift
		n++
		if v&0x80 == 0 {
			return value, n
		}
		shift += 7
	}
}

func constI32(v int32) func(sink *wasm.Sink, ctx *wasm.Context) error {
	return func(sink *wasm.Sink, ctx *wasm.Context) error {
		sink.AppendMany(leb128.EncodeInt32(v)...)
		return nil
	}
}

func localGet(name string) wasm.Instruction {
	return wasm.Instruction{
		Mnemonic: "local.get",
		Immediate: func(sink *wasm.Sink, ctx *wasm.Context) error {
			idx, err := ctx.ResolveLocal(name)
			if err != nil {
				return err
			}
			sink.AppendMany(leb128.EncodeUint32(idx)...)
			return nil
		},
	}
}
