package wasmencode

// Encoder supports incremental module assembly for callers who build a
// module up piecemeal (generated bindings, a multi-pass compiler backend)
// rather than constructing the whole Module literal up front. Its Add*
// methods mirror the internal section emitters one-for-one; Encode finalizes
// the accumulated definition exactly as EncodeModule would.
//
// Custom sections added between other Add* calls are recorded in that call
// order but still land after every numbered section in the output: the
// format permits a custom section anywhere, but this encoder does not
// interleave them mid-stream among the numbered sections it has not yet
// emitted.
type Encoder struct {
	config *EncoderConfig
	module Module
}

// NewEncoder returns a live, empty Encoder using the default EncoderConfig.
func NewEncoder() *Encoder {
	return &Encoder{config: NewEncoderConfig()}
}

// WithConfig replaces e's EncoderConfig.
func (e *Encoder) WithConfig(c *EncoderConfig) *Encoder {
	e.config = c
	return e
}

// AddFunction appends a function definition.
func (e *Encoder) AddFunction(fn Function) *Encoder {
	e.module.Functions = append(e.module.Functions, fn)
	return e
}

// AddGlobal appends a global definition.
func (e *Encoder) AddGlobal(g Global) *Encoder {
	e.module.Globals = append(e.module.Globals, g)
	return e
}

// AddCustomType appends a named composite type.
func (e *Encoder) AddCustomType(t CustomType) *Encoder {
	e.module.CustomTypes = append(e.module.CustomTypes, t)
	return e
}

// AddImport appends an imported entity.
func (e *Encoder) AddImport(imp Import) *Encoder {
	e.module.Imports = append(e.module.Imports, imp)
	return e
}

// AddTable appends a table definition.
func (e *Encoder) AddTable(t Table) *Encoder {
	e.module.Tables = append(e.module.Tables, t)
	return e
}

// AddMemory appends a memory definition.
func (e *Encoder) AddMemory(m Memory) *Encoder {
	e.module.Memories = append(e.module.Memories, m)
	return e
}

// SetStart names the start function.
func (e *Encoder) SetStart(functionName string) *Encoder {
	e.module.Start = functionName
	return e
}

// AddElement appends an element segment.
func (e *Encoder) AddElement(el ElementSegment) *Encoder {
	e.module.Elements = append(e.module.Elements, el)
	return e
}

// AddData appends a data segment.
func (e *Encoder) AddData(d DataSegment) *Encoder {
	e.module.Data = append(e.module.Data, d)
	return e
}

// AddCustomSection appends a verbatim custom section.
func (e *Encoder) AddCustomSection(cs CustomSection) *Encoder {
	e.module.CustomSections = append(e.module.CustomSections, cs)
	return e
}

// Encode produces the full .wasm bytes for everything added so far.
func (e *Encoder) Encode() ([]byte, error) {
	return e.config.EncodeModule(&e.module)
}
