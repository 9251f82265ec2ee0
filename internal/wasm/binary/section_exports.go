package binary

import (
	"github.com/gowasm/wasmencode/api"
	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

type exportEntry struct {
	name string
	kind api.ExternalKind
	idx  wasm.Index
}

// deriveExports walks the module's functions, tables, memories, and globals
// and collects the ones marked for export, resolving each against the
// context built for this same module.
func deriveExports(ctx *wasm.Context, m *wasm.Module) ([]exportEntry, error) {
	var entries []exportEntry
	for _, fn := range m.Functions {
		if !fn.Export {
			continue
		}
		idx, err := ctx.ResolveFunction(fn.Name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, exportEntry{fn.Name, api.ExternalKindFunc, idx})
	}
	for _, t := range m.Tables {
		if !t.Export {
			continue
		}
		idx, err := ctx.ResolveTable(t.Name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, exportEntry{t.Name, api.ExternalKindTable, idx})
	}
	for _, mem := range m.Memories {
		if !mem.Export {
			continue
		}
		idx, err := ctx.ResolveMemory(mem.Name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, exportEntry{mem.Name, api.ExternalKindMemory, idx})
	}
	for _, g := range m.Globals {
		if !g.Export {
			continue
		}
		idx, err := ctx.ResolveGlobal(g.Name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, exportEntry{g.Name, api.ExternalKindGlobal, idx})
	}
	return entries, nil
}

// writeExportsSection builds the exports section from the already-derived
// export entries.
func writeExportsSection(entries []exportEntry) *wasm.Sink {
	if len(entries) == 0 {
		return nil
	}
	sink := wasm.NewSink(64)
	sink.AppendMany(leb128.EncodeUint32(uint32(len(entries)))...)
	for _, e := range entries {
		encodeName(sink, e.name)
		sink.AppendOne(e.kind)
		sink.AppendMany(leb128.EncodeUint32(e.idx)...)
	}
	return sink
}
