package op

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

func resolveTypeIdx(typeName string, sink *wasm.Sink, ctx *wasm.Context) error {
	idx, err := ctx.ResolveType(typeName)
	if err != nil {
		return err
	}
	sink.AppendMany(leb128.EncodeUint32(idx)...)
	return nil
}

// StructNew allocates a struct of the GC type named typeName, taking its
// field values off the stack in declaration order.
func StructNew(typeName string) wasm.Instruction {
	return withImmediate("struct.new", func(sink *wasm.Sink, ctx *wasm.Context) error {
		return resolveTypeIdx(typeName, sink, ctx)
	})
}

// StructNewDefault allocates a struct of typeName with every field at its
// zero value.
func StructNewDefault(typeName string) wasm.Instruction {
	return withImmediate("struct.new_default", func(sink *wasm.Sink, ctx *wasm.Context) error {
		return resolveTypeIdx(typeName, sink, ctx)
	})
}

func structField(mnemonic, typeName string, fieldIdx uint32) wasm.Instruction {
	return withImmediate(mnemonic, func(sink *wasm.Sink, ctx *wasm.Context) error {
		if err := resolveTypeIdx(typeName, sink, ctx); err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(fieldIdx)...)
		return nil
	})
}

func StructGet(typeName string, fieldIdx uint32) wasm.Instruction   { return structField("struct.get", typeName, fieldIdx) }
func StructGetS(typeName string, fieldIdx uint32) wasm.Instruction  { return structField("struct.get_s", typeName, fieldIdx) }
func StructGetU(typeName string, fieldIdx uint32) wasm.Instruction  { return structField("struct.get_u", typeName, fieldIdx) }
func StructSet(typeName string, fieldIdx uint32) wasm.Instruction   { return structField("struct.set", typeName, fieldIdx) }

// ArrayNew allocates an array of typeName with a length and initial element
// value taken off the stack.
func ArrayNew(typeName string) wasm.Instruction {
	return withImmediate("array.new", func(sink *wasm.Sink, ctx *wasm.Context) error {
		return resolveTypeIdx(typeName, sink, ctx)
	})
}

// ArrayNewDefault allocates an array of typeName with every element at its
// zero value.
func ArrayNewDefault(typeName string) wasm.Instruction {
	return withImmediate("array.new_default", func(sink *wasm.Sink, ctx *wasm.Context) error {
		return resolveTypeIdx(typeName, sink, ctx)
	})
}

// ArrayNewFixed allocates an array of typeName with count elements taken
// directly off the stack.
func ArrayNewFixed(typeName string, count uint32) wasm.Instruction {
	return withImmediate("array.new_fixed", func(sink *wasm.Sink, ctx *wasm.Context) error {
		if err := resolveTypeIdx(typeName, sink, ctx); err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(count)...)
		return nil
	})
}

// ArrayNewData allocates an array of typeName initialised from the passive
// data segment named dataName.
func ArrayNewData(typeName, dataName string) wasm.Instruction {
	return withImmediate("array.new_data", func(sink *wasm.Sink, ctx *wasm.Context) error {
		if err := resolveTypeIdx(typeName, sink, ctx); err != nil {
			return err
		}
		idx, err := ctx.ResolveData(dataName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// ArrayNewElem allocates an array of typeName initialised from the element
// segment named elemName.
func ArrayNewElem(typeName, elemName string) wasm.Instruction {
	return withImmediate("array.new_elem", func(sink *wasm.Sink, ctx *wasm.Context) error {
		if err := resolveTypeIdx(typeName, sink, ctx); err != nil {
			return err
		}
		idx, err := ctx.ResolveElement(elemName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

func ArrayGet(typeName string) wasm.Instruction  { return arrayTypeIdxOp("array.get", typeName) }
func ArrayGetS(typeName string) wasm.Instruction { return arrayTypeIdxOp("array.get_s", typeName) }
func ArrayGetU(typeName string) wasm.Instruction { return arrayTypeIdxOp("array.get_u", typeName) }
func ArraySet(typeName string) wasm.Instruction  { return arrayTypeIdxOp("array.set", typeName) }
func ArrayFill(typeName string) wasm.Instruction { return arrayTypeIdxOp("array.fill", typeName) }

// arrayTypeIdxOp is the shared single-type-index immediate shape used by
// array.get/get_s/get_u/set/fill.
func arrayTypeIdxOp(mnemonic, typeName string) wasm.Instruction {
	return withImmediate(mnemonic, func(sink *wasm.Sink, ctx *wasm.Context) error {
		return resolveTypeIdx(typeName, sink, ctx)
	})
}

// ArrayLen pushes the length of the top-of-stack array reference.
func ArrayLen() wasm.Instruction { return leaf("array.len") }

// ArrayCopy copies a range between two arrays (or within one).
func ArrayCopy(destType, sourceType string) wasm.Instruction {
	return withImmediate("array.copy", func(sink *wasm.Sink, ctx *wasm.Context) error {
		if err := resolveTypeIdx(destType, sink, ctx); err != nil {
			return err
		}
		return resolveTypeIdx(sourceType, sink, ctx)
	})
}

// ArrayInitData initialises a range of an array of typeName from the
// passive data segment named dataName.
func ArrayInitData(typeName, dataName string) wasm.Instruction {
	return withImmediate("array.init_data", func(sink *wasm.Sink, ctx *wasm.Context) error {
		if err := resolveTypeIdx(typeName, sink, ctx); err != nil {
			return err
		}
		idx, err := ctx.ResolveData(dataName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// ArrayInitElem initialises a range of an array of typeName from the
// element segment named elemName.
func ArrayInitElem(typeName, elemName string) wasm.Instruction {
	return withImmediate("array.init_elem", func(sink *wasm.Sink, ctx *wasm.Context) error {
		if err := resolveTypeIdx(typeName, sink, ctx); err != nil {
			return err
		}
		idx, err := ctx.ResolveElement(elemName)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

func heapTypeImmediate(rt wasm.RefType, sink *wasm.Sink, ctx *wasm.Context) error {
	if !rt.ByTypeName {
		sink.AppendOne(rt.HeapType)
		return nil
	}
	idx, err := ctx.ResolveType(rt.TypeName)
	if err != nil {
		return err
	}
	sink.AppendMany(leb128.EncodeInt64(int64(idx))...)
	return nil
}

// RefTest tests whether the top-of-stack reference is an instance of rt,
// without consuming it.
func RefTest(rt wasm.RefType) wasm.Instruction {
	mnemonic := "ref.test"
	if rt.Nullable {
		mnemonic = "ref.test_null"
	}
	return withImmediate(mnemonic, func(sink *wasm.Sink, ctx *wasm.Context) error {
		return heapTypeImmediate(rt, sink, ctx)
	})
}

// RefCast casts the top-of-stack reference to rt, trapping if it is not an
// instance.
func RefCast(rt wasm.RefType) wasm.Instruction {
	mnemonic := "ref.cast"
	if rt.Nullable {
		mnemonic = "ref.cast_null"
	}
	return withImmediate(mnemonic, func(sink *wasm.Sink, ctx *wasm.Context) error {
		return heapTypeImmediate(rt, sink, ctx)
	})
}

// BrOnCast branches to name if the top-of-stack reference is an instance of
// target, leaving it cast to target on the branch path.
func BrOnCast(name string, source, target wasm.RefType) wasm.Instruction {
	return withImmediate("br_on_cast", func(sink *wasm.Sink, ctx *wasm.Context) error {
		depth, err := ctx.BranchDepth(name)
		if err != nil {
			return err
		}
		flags := byte(0)
		if source.Nullable {
			flags |= 0x01
		}
		if target.Nullable {
			flags |= 0x02
		}
		sink.AppendOne(flags)
		sink.AppendMany(leb128.EncodeUint32(depth)...)
		if err := heapTypeImmediate(source, sink, ctx); err != nil {
			return err
		}
		return heapTypeImmediate(target, sink, ctx)
	})
}

// BrOnCastFail is BrOnCast's complement: branches when the cast fails.
func BrOnCastFail(name string, source, target wasm.RefType) wasm.Instruction {
	return withImmediate("br_on_cast_fail", func(sink *wasm.Sink, ctx *wasm.Context) error {
		depth, err := ctx.BranchDepth(name)
		if err != nil {
			return err
		}
		flags := byte(0)
		if source.Nullable {
			flags |= 0x01
		}
		if target.Nullable {
			flags |= 0x02
		}
		sink.AppendOne(flags)
		sink.AppendMany(leb128.EncodeUint32(depth)...)
		if err := heapTypeImmediate(source, sink, ctx); err != nil {
			return err
		}
		return heapTypeImmediate(target, sink, ctx)
	})
}

// AnyConvertExtern converts an externref to its anyref representation.
func AnyConvertExtern() wasm.Instruction { return leaf("any.convert_extern") }

// ExternConvertAny converts an anyref to its externref representation.
func ExternConvertAny() wasm.Instruction { return leaf("extern.convert_any") }

// RefI31 wraps a top-of-stack i32 into an i31ref.
func RefI31() wasm.Instruction { return leaf("ref.i31") }

// I31GetS unwraps an i31ref as a sign-extended i32.
func I31GetS() wasm.Instruction { return leaf("i31.get_s") }

// I31GetU unwraps an i31ref as a zero-extended i32.
func I31GetU() wasm.Instruction { return leaf("i31.get_u") }
