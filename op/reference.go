package op

import (
	"github.com/gowasm/wasmencode/api"
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// RefNull pushes a null reference of the given abstract heap type (funcref,
// externref, or one of the typed-function-references/GC top types).
func RefNull(heapType api.HeapType) wasm.Instruction {
	return withImmediate("ref.null", func(sink *wasm.Sink, ctx *wasm.Context) error {
		sink.AppendOne(heapType)
		return nil
	})
}

// RefNullType pushes a null reference typed to the concrete GC type named
// typeName, rather than one of the abstract heap types.
func RefNullType(typeName string) wasm.Instruction {
	return withImmediate("ref.null", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveType(typeName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeInt64(int64(idx))...)
		return nil
	})
}

// RefIsNull tests whether the top-of-stack reference is null.
func RefIsNull() wasm.Instruction { return leaf("ref.is_null") }

// RefFunc pushes a reference to the function named name, which must also
// appear in some element segment or export for validation to accept it.
func RefFunc(name string) wasm.Instruction {
	return withImmediate("ref.func", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveFunction(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// RefEq compares two eqref-subtyped references for identity.
func RefEq() wasm.Instruction { return leaf("ref.eq") }

// RefAsNonNull traps if the top-of-stack reference is null, otherwise casts
// it to its non-nullable form.
func RefAsNonNull() wasm.Instruction { return leaf("ref.as_non_null") }
