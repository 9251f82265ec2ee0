package binary

import (
	"github.com/gowasm/wasmencode/api"
	"github.com/gowasm/wasmencode/internal/wasm"
)

// buildContext performs the encoder's single preparation pass: it registers
// every named entity into its namespace and returns the ready resolution
// context together with the derived list of function signatures that will
// seed the types section.
//
// Imports are registered ahead of locally declared entities and share the
// same namespace and index space as declarations of the same kind: an
// imported function named "log" and a later `(func (export "log") ...)`
// both live in the Functions namespace, so a `call "log"` from anywhere in
// the module reaches whichever one exists. This goes slightly beyond a
// narrow reading of the index-space table, but without it nothing could
// ever invoke an imported function by name.
func buildContext(m *wasm.Module) (*wasm.Context, error) {
	ctx := wasm.NewContext()

	for _, imp := range m.Imports {
		var err *wasm.MalformedInputError
		switch imp.Kind {
		case api.ExternalKindFunc:
			_, err = ctx.DefineFunction(imp.EntityName)
		case api.ExternalKindTable:
			_, err = ctx.DefineTable(imp.EntityName)
		case api.ExternalKindMemory:
			_, err = ctx.DefineMemory(imp.EntityName)
		case api.ExternalKindGlobal:
			_, err = ctx.DefineGlobal(imp.EntityName)
		}
		if err != nil {
			return nil, err
		}
	}

	for _, fn := range m.Functions {
		if _, err := ctx.DefineFunction(fn.Name); err != nil {
			return nil, err
		}
	}
	for _, t := range m.Tables {
		if _, err := ctx.DefineTable(t.Name); err != nil {
			return nil, err
		}
	}
	for _, mem := range m.Memories {
		if _, err := ctx.DefineMemory(mem.Name); err != nil {
			return nil, err
		}
	}
	for _, g := range m.Globals {
		if _, err := ctx.DefineGlobal(g.Name); err != nil {
			return nil, err
		}
	}
	for _, e := range m.Elements {
		if _, err := ctx.DefineElement(e.Name); err != nil {
			return nil, err
		}
	}
	for _, d := range m.Data {
		if _, err := ctx.DefineData(d.Name); err != nil {
			return nil, err
		}
	}

	// Types: an implicit function-signature type entry per function import
	// (in import order) comes first, so an imported function's declared
	// signature has somewhere to live; then one per declared function
	// (function index i's signature at type index i relative to that
	// block); then custom types. Function/Import
	// sections resolve their own type index by name rather than assuming a
	// fixed offset, so this ordering is free to place the import block
	// first without the two contradicting each other.
	for _, imp := range m.Imports {
		if imp.Kind != api.ExternalKindFunc {
			continue
		}
		if _, err := ctx.DefineType(imp.EntityName); err != nil {
			return nil, err
		}
	}
	for _, fn := range m.Functions {
		if _, err := ctx.DefineType(fn.Name); err != nil {
			return nil, err
		}
	}
	for _, ct := range m.CustomTypes {
		if _, err := ctx.DefineType(ct.Name); err != nil {
			return nil, err
		}
	}

	return ctx, nil
}
