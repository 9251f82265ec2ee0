// Package binary implements the module encoder: it walks a wasm.Module
// definition, resolves every symbolic name against a Context, and emits the
// canonical section-by-section binary format.
package binary

import (
	"go.uber.org/zap"

	"github.com/gowasm/wasmencode/internal/leb128"
	"github.com/gowasm/wasmencode/internal/wasm"
)

const (
	sectionIDType      = 1
	sectionIDImport    = 2
	sectionIDFunction  = 3
	sectionIDTable     = 4
	sectionIDMemory    = 5
	sectionIDGlobal    = 6
	sectionIDExport    = 7
	sectionIDStart     = 8
	sectionIDElement   = 9
	sectionIDCode      = 10
	sectionIDData      = 11
	sectionIDDataCount = 12
)

var sectionIDNames = map[byte]string{
	sectionIDType:      "type",
	sectionIDImport:    "import",
	sectionIDFunction:  "function",
	sectionIDTable:     "table",
	sectionIDMemory:    "memory",
	sectionIDGlobal:    "global",
	sectionIDExport:    "export",
	sectionIDStart:     "start",
	sectionIDElement:   "element",
	sectionIDCode:      "code",
	sectionIDData:      "data",
	sectionIDDataCount: "data count",
}

var modulePreamble = []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}

// frameSection wraps a section body with its id byte and an unsigned
// LEB128 length prefix. A nil body (an absent section) is the caller's
// responsibility to skip before calling this.
func frameSection(id byte, body *wasm.Sink) []byte {
	out := make([]byte, 0, body.Length()+6)
	out = append(out, id)
	out = append(out, leb128.EncodeUint32(uint32(body.Length()))...)
	out = append(out, body.View()...)
	return out
}

// EncodeModule serializes m into the canonical WebAssembly binary format:
// the preamble, then every numbered section in spec order (sections with no
// content are omitted), then every custom section last. capacityHint sizes
// the top-level output buffer; logger receives one debug line per emitted
// numbered section (section name, byte length), none for custom sections,
// and may be zap.NewNop().
func EncodeModule(m *wasm.Module, capacityHint int, logger *zap.Logger) ([]byte, error) {
	ctx, err := buildContext(m)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, capacityHint)
	out = append(out, modulePreamble...)

	appendSection := func(id byte, sink *wasm.Sink) {
		if sink == nil {
			return
		}
		framed := frameSection(id, sink)
		out = append(out, framed...)
		logger.Debug("encoded section", zap.String("section", sectionIDNames[id]), zap.Int("bytes", sink.Length()))
	}

	typesSink, err := writeTypesSection(ctx, m)
	if err != nil {
		return nil, err
	}
	appendSection(sectionIDType, typesSink)

	importsSink, err := writeImportsSection(ctx, m)
	if err != nil {
		return nil, err
	}
	appendSection(sectionIDImport, importsSink)

	functionsSink, err := writeFunctionsSection(ctx, m)
	if err != nil {
		return nil, err
	}
	appendSection(sectionIDFunction, functionsSink)

	tablesSink, err := writeTablesSection(ctx, m)
	if err != nil {
		return nil, err
	}
	appendSection(sectionIDTable, tablesSink)

	appendSection(sectionIDMemory, writeMemoriesSection(m))

	globalsSink, err := writeGlobalsSection(ctx, m)
	if err != nil {
		return nil, err
	}
	appendSection(sectionIDGlobal, globalsSink)

	exportEntries, err := deriveExports(ctx, m)
	if err != nil {
		return nil, err
	}
	appendSection(sectionIDExport, writeExportsSection(exportEntries))

	startSink, err := writeStartSection(ctx, m)
	if err != nil {
		return nil, err
	}
	appendSection(sectionIDStart, startSink)

	elementsSink, err := writeElementsSection(ctx, m)
	if err != nil {
		return nil, err
	}
	appendSection(sectionIDElement, elementsSink)

	appendSection(sectionIDDataCount, writeDataCountSection(m))

	codeSink, err := writeCodeSection(ctx, m)
	if err != nil {
		return nil, err
	}
	appendSection(sectionIDCode, codeSink)

	dataSink, err := writeDataSection(ctx, m)
	if err != nil {
		return nil, err
	}
	appendSection(sectionIDData, dataSink)

	out = append(out, writeCustomSections(m)...)

	return out, nil
}
