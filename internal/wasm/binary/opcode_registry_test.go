package binary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpcodeTable_CachedBytesMatchFreshEncoding(t *testing.T) {
	require.NotEmpty(t, opcodeTable)
	for mnemonic, code := range opcodeTable {
		fresh, err := EncodeOpcodeValue(code)
		require.NoError(t, err, "mnemonic %s", mnemonic)
		require.Equal(t, fresh, encodedCache[mnemonic], "mnemonic %s", mnemonic)
	}
}

func TestEncodeOpcodeValue(t *testing.T) {
	tests := []struct {
		name     string
		input    Opcode
		expected []byte
	}{
		{name: "single byte", input: 0x6A, expected: []byte{0x6A}},
		{name: "misc prefix", input: op2(prefixMisc, 0x0A), expected: []byte{0xFC, 0x0A}},
		{name: "simd prefix", input: op2(prefixSIMD, 0x0C), expected: []byte{0xFD, 0x0C}},
		{name: "simd sub-opcode needing two groups", input: op2(prefixSIMD, 0x85), expected: []byte{0xFD, 0x85, 0x01}},
		{name: "wide relaxed-simd sub-opcode", input: op3(prefixSIMD, 0x105), expected: []byte{0xFD, 0x85, 0x02}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := EncodeOpcodeValue(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.expected, out)
		})
	}
}

func TestEncodeOpcodeValue_RejectsWiderThan20Bits(t *testing.T) {
	_, err := EncodeOpcodeValue(0x100000)
	require.Error(t, err)
}
