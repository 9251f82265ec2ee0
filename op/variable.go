package op

import (
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// LocalGet reads the local (or parameter) named name.
func LocalGet(name string) wasm.Instruction {
	return withImmediate("local.get", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveLocal(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// LocalSet writes the top-of-stack value into the local named name.
func LocalSet(name string) wasm.Instruction {
	return withImmediate("local.set", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveLocal(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// LocalTee is LocalSet that also leaves the value on the stack.
func LocalTee(name string) wasm.Instruction {
	return withImmediate("local.tee", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveLocal(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// GlobalGet reads the global named name.
func GlobalGet(name string) wasm.Instruction {
	return withImmediate("global.get", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveGlobal(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}

// GlobalSet writes the top-of-stack value into the mutable global named
// name.
func GlobalSet(name string) wasm.Instruction {
	return withImmediate("global.set", func(sink *wasm.Sink, ctx *wasm.Context) error {
		idx, err := ctx.ResolveGlobal(name)
		if err != nil {
			return err
		}
		sink.AppendMany(leb128.EncodeUint32(idx)...)
		return nil
	})
}
