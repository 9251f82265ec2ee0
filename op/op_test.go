package op

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gowasm/wasmencode/internal/wasm"
	"github.com/gowasm/wasmencode/internal/wasm/binary"
)

func TestOpWithUintImmediate_BeyondUint64(t *testing.T) {
	// "nop" is used as a stand-in mnemonic here: the test target is the
	// arbitrary-precision immediate plumbing itself, not nop's real (empty)
	// immediate shape.
	huge := new(big.Int).Lsh(big.NewInt(1), 70) // well beyond uint64 range
	m := &wasm.Module{
		Functions: []wasm.Function{
			{
				Name: "f",
				Instructions: Seq(
					OpWithUintImmediate("nop", huge),
					End(),
				),
			},
		},
	}
	out, err := binary.EncodeModule(m, 64, zap.NewNop())
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestOpWithUintImmediate_NegativeIsInvalidValue(t *testing.T) {
	m := &wasm.Module{
		Functions: []wasm.Function{
			{
				Name: "f",
				Instructions: Seq(
					OpWithUintImmediate("nop", big.NewInt(-1)),
					End(),
				),
			},
		},
	}
	_, err := binary.EncodeModule(m, 64, zap.NewNop())
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrInvalidValue)
}

func TestOpWithIntImmediate_BeyondInt64(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 70)
	neg := new(big.Int).Neg(huge)
	m := &wasm.Module{
		Functions: []wasm.Function{
			{
				Name: "f",
				Instructions: Seq(
					OpWithIntImmediate("nop", neg),
					End(),
				),
			},
		},
	}
	out, err := binary.EncodeModule(m, 64, zap.NewNop())
	require.NoError(t, err)
	require.NotEmpty(t, out)
}
