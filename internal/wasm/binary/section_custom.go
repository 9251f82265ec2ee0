package binary

import "github.com/gowasm/wasmencode/internal/wasm"

const customSectionID = 0x00

// writeCustomSections builds one framed custom section per declared
// CustomSection, in declaration order. Unlike the numbered sections these
// carry their own name inside the body and may legally appear more than
// once and anywhere in the module; this encoder places them all after every
// numbered section, which is always a valid position.
func writeCustomSections(m *wasm.Module) []byte {
	var out []byte
	for _, cs := range m.CustomSections {
		body := wasm.NewSink(len(cs.Name) + len(cs.Content) + 8)
		encodeName(body, cs.Name)
		body.AppendMany(cs.Content...)
		out = append(out, frameSection(customSectionID, body)...)
	}
	return out
}
