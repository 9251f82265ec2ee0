package wasm

// Index is a 0-based position within one of the module's index spaces.
type Index = uint32

// namespace is a name->index lookup for one entity kind. Registering a
// duplicate name is a MalformedInputError raised at Context-construction
// time rather than a silent last-definition-wins overwrite (see DESIGN.md).
type namespace struct {
	kind    Kind
	indices map[string]Index
}

func newNamespace(kind Kind) *namespace {
	return &namespace{kind: kind, indices: map[string]Index{}}
}

func (n *namespace) define(name string) (*MalformedInputError, Index) {
	if _, exists := n.indices[name]; exists {
		return &MalformedInputError{
			What:   string(n.kind) + " name",
			Detail: "duplicate name " + name,
		}, 0
	}
	idx := Index(len(n.indices))
	n.indices[name] = idx
	return nil, idx
}

func (n *namespace) resolve(name string) (Index, *UnresolvedNameError) {
	idx, ok := n.indices[name]
	if !ok {
		return 0, &UnresolvedNameError{Kind: n.kind, Name: name}
	}
	return idx, nil
}

// Context is the resolution context threaded through the encoder: seven
// independent name->index namespaces plus the block stack used to turn
// symbolic branch targets into depths. It is built once per module
// (module-wide namespaces) and is extended per-function with a fresh
// locals namespace; see EnterFunction.
type Context struct {
	Functions *namespace
	Types     *namespace
	Tables    *namespace
	Memories  *namespace
	Globals   *namespace
	Elements  *namespace
	Data      *namespace

	locals *namespace
	blocks []string // LIFO; innermost block is the last element.
}

// NewContext returns an empty module-wide resolution context.
func NewContext() *Context {
	return &Context{
		Functions: newNamespace(KindFunction),
		Types:     newNamespace(KindType),
		Tables:    newNamespace(KindTable),
		Memories:  newNamespace(KindMemory),
		Globals:   newNamespace(KindGlobal),
		Elements:  newNamespace(KindElement),
		Data:      newNamespace(KindData),
	}
}

// EnterFunction returns a shallow copy of c with a fresh, empty locals
// namespace: locals are reset for each function while module-wide
// namespaces are reused unchanged.
func (c *Context) EnterFunction() *Context {
	cp := *c
	cp.locals = newNamespace(KindLocal)
	cp.blocks = nil
	return &cp
}

// DefineLocal registers a parameter or declared local in declaration order
// and returns its index.
func (c *Context) DefineLocal(name string) (Index, *MalformedInputError) {
	err, idx := c.locals.define(name)
	return idx, err
}

// ResolveLocal resolves a local's index by name.
func (c *Context) ResolveLocal(name string) (Index, *UnresolvedNameError) {
	return c.locals.resolve(name)
}

// PushBlock pushes a block name onto the block stack, returning a new
// Context value so that sibling blocks do not observe each other's scope:
// the block stack is carried by value on the call stack, not shared mutable
// state.
func (c *Context) PushBlock(name string) *Context {
	cp := *c
	cp.blocks = append(append([]string{}, c.blocks...), name)
	return &cp
}

// BranchDepth resolves a block name to its branch depth: the index of the
// named block on the stack counting from the innermost (innermost = 0).
func (c *Context) BranchDepth(name string) (uint32, *UnresolvedNameError) {
	for i := len(c.blocks) - 1; i >= 0; i-- {
		if c.blocks[i] == name {
			return uint32(len(c.blocks)-1-i), nil
		}
	}
	return 0, &UnresolvedNameError{Kind: KindBlock, Name: name}
}

// The Resolve* and Define* methods below are the only way the op and binary
// packages reach into a Context's namespaces; namespace itself stays
// unexported so nothing outside this package can bypass duplicate-name
// checking.

func (c *Context) ResolveFunction(name string) (Index, *UnresolvedNameError) { return c.Functions.resolve(name) }
func (c *Context) ResolveType(name string) (Index, *UnresolvedNameError)     { return c.Types.resolve(name) }
func (c *Context) ResolveTable(name string) (Index, *UnresolvedNameError)    { return c.Tables.resolve(name) }
func (c *Context) ResolveMemory(name string) (Index, *UnresolvedNameError)  { return c.Memories.resolve(name) }
func (c *Context) ResolveGlobal(name string) (Index, *UnresolvedNameError)  { return c.Globals.resolve(name) }
func (c *Context) ResolveElement(name string) (Index, *UnresolvedNameError) { return c.Elements.resolve(name) }
func (c *Context) ResolveData(name string) (Index, *UnresolvedNameError)   { return c.Data.resolve(name) }

func (c *Context) DefineFunction(name string) (Index, *MalformedInputError) { err, idx := c.Functions.define(name); return idx, err }
func (c *Context) DefineType(name string) (Index, *MalformedInputError)     { err, idx := c.Types.define(name); return idx, err }
func (c *Context) DefineTable(name string) (Index, *MalformedInputError)    { err, idx := c.Tables.define(name); return idx, err }
func (c *Context) DefineMemory(name string) (Index, *MalformedInputError)  { err, idx := c.Memories.define(name); return idx, err }
func (c *Context) DefineGlobal(name string) (Index, *MalformedInputError)  { err, idx := c.Globals.define(name); return idx, err }
func (c *Context) DefineElement(name string) (Index, *MalformedInputError) { err, idx := c.Elements.define(name); return idx, err }
func (c *Context) DefineData(name string) (Index, *MalformedInputError)   { err, idx := c.Data.define(name); return idx, err }
