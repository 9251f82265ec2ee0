package wasm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// These tests call require.Nil rather than require.NoError on the
// Resolve*/Define* return values: their concrete return type is a pointer
// to a typed error struct, not the error interface, so a nil result boxed
// directly into require.NoError's interface{} parameter would compare as
// non-nil (the classic typed-nil-in-interface pitfall). require.Nil uses
// reflection and sees through it.

func TestContext_ResolveUnknown(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.ResolveFunction("missing")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnresolvedName))
	require.Equal(t, "missing", err.Name)
	require.Equal(t, KindFunction, err.Kind)
}

func TestContext_DefineDuplicateIsMalformed(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.DefineFunction("f")
	require.Nil(t, err)
	_, err = ctx.DefineFunction("f")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedInput))
}

func TestContext_DefineAssignsSequentialIndices(t *testing.T) {
	ctx := NewContext()
	i0, err := ctx.DefineTable("t0")
	require.Nil(t, err)
	i1, err := ctx.DefineTable("t1")
	require.Nil(t, err)
	require.Equal(t, Index(0), i0)
	require.Equal(t, Index(1), i1)
}

func TestContext_EnterFunctionResetsLocalsNotModuleNamespaces(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.DefineGlobal("g")
	require.Nil(t, err)

	fnCtx := ctx.EnterFunction()
	idx, defErr := fnCtx.DefineLocal("x")
	require.Nil(t, defErr)
	require.Equal(t, Index(0), idx)

	// A fresh EnterFunction call sees no locals from the prior one.
	otherCtx := ctx.EnterFunction()
	_, resolveErr := otherCtx.ResolveLocal("x")
	require.Error(t, resolveErr)

	// But module-wide namespaces are shared.
	gIdx, gErr := fnCtx.ResolveGlobal("g")
	require.Nil(t, gErr)
	require.Equal(t, Index(0), gIdx)
}

func TestContext_BranchDepth_NestedBlocks(t *testing.T) {
	// For nested blocks [outer [middle [inner br(outer)]]], the emitted
	// branch depth is 2; br(inner) emits 0.
	ctx := NewContext()
	outer := ctx.PushBlock("outer")
	middle := outer.PushBlock("middle")
	inner := middle.PushBlock("inner")

	depth, err := inner.BranchDepth("outer")
	require.Nil(t, err)
	require.Equal(t, uint32(2), depth)

	depth, err = inner.BranchDepth("inner")
	require.Nil(t, err)
	require.Equal(t, uint32(0), depth)

	depth, err = inner.BranchDepth("middle")
	require.Nil(t, err)
	require.Equal(t, uint32(1), depth)
}

func TestContext_BranchDepth_SiblingBlocksDoNotShareScope(t *testing.T) {
	ctx := NewContext()
	outer := ctx.PushBlock("outer")
	_ = outer.PushBlock("a")
	siblingB := outer.PushBlock("b")

	// "a" was pushed onto a different copy of the block stack and must not
	// be visible from siblingB.
	_, err := siblingB.BranchDepth("a")
	require.Error(t, err)
}

func TestContext_BranchDepth_Unresolved(t *testing.T) {
	ctx := NewContext()
	_, err := ctx.BranchDepth("nope")
	require.Error(t, err)
	require.Equal(t, KindBlock, err.Kind)
}
