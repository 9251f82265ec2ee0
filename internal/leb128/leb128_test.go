package leb128

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeUint32(t *testing.T) {
	tests := []struct {
		name     string
		input    uint32
		expected []byte
	}{
		{name: "zero", input: 0, expected: []byte{0x00}},
		{name: "one byte max", input: 0x7f, expected: []byte{0x7f}},
		{name: "two bytes", input: 0x80, expected: []byte{0x80, 0x01}},
		{name: "624485", input: 624485, expected: []byte{0xe5, 0x8e, 0x26}},
		{name: "max uint32", input: 0xffffffff, expected: []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, EncodeUint32(tc.input))
		})
	}
}

func TestEncodeInt32(t *testing.T) {
	tests := []struct {
		name     string
		input    int32
		expected []byte
	}{
		{name: "zero", input: 0, expected: []byte{0x00}},
		{name: "minus one", input: -1, expected: []byte{0x7f}},
		{name: "63", input: 63, expected: []byte{0x3f}},
		{name: "64 needs a second group", input: 64, expected: []byte{0xc0, 0x00}},
		{name: "-624485", input: -624485, expected: []byte{0x9b, 0xf1, 0x59}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, EncodeInt32(tc.input))
		})
	}
}

func TestEncodeInt64_Edge(t *testing.T) {
	// i32.const(-1) emits [0x41, 0x7F]; here we only check the immediate
	// half, the opcode byte is exercised at the op/binary layer.
	require.Equal(t, []byte{0x7f}, EncodeInt32(-1))

	// i64.const(2^40) needs six LEB128 bytes for its immediate: the loop
	// must not stop at a fixed four groups for wide values.
	v := int64(1) << 40
	encoded := EncodeInt64(v)
	require.Len(t, encoded, 6)

	decoded := int64(0)
	shift := uint(0)
	for _, b := range encoded {
		decoded |= int64(b&0x7f) << shift
		shift += 7
	}
	if shift < 64 && encoded[len(encoded)-1]&0x40 != 0 {
		decoded |= -1 << shift
	}
	require.Equal(t, v, decoded)
}

func TestEncodeUintAndIntAgreeBelow64(t *testing.T) {
	for n := uint32(0); n < 64; n++ {
		u := EncodeUint32(n)
		s := EncodeInt32(int32(n))
		require.Equal(t, u[0]&0x7f, s[0]&0x7f, "mismatch at n=%d", n)
	}
}

func TestEncodeUintBig_NegativePanics(t *testing.T) {
	require.Panics(t, func() {
		EncodeUintBig(big.NewInt(-1))
	})
}

func TestEncodeUintBig_FallsBackBeyondUint64(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 128)
	encoded := EncodeUintBig(huge)
	require.NotEmpty(t, encoded)
	for _, b := range encoded[:len(encoded)-1] {
		require.NotZero(t, b&0x80)
	}
	require.Zero(t, encoded[len(encoded)-1]&0x80)
}

func TestEncodeIntBig_FallsBackBeyondInt64(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	encoded := EncodeIntBig(huge)
	require.NotEmpty(t, encoded)

	negHuge := new(big.Int).Neg(huge)
	encodedNeg := EncodeIntBig(negHuge)
	require.NotEmpty(t, encodedNeg)
	require.NotEqual(t, encoded, encodedNeg)
}
