package wasm

import "github.com/gowasm/wasmencode/api"

// ValueType is re-exported for convenience so callers constructing a module
// definition need not import api directly for the common case.
type ValueType = api.ValueType

// Limits is the resizable-limits pair shared by table and memory
// definitions: {max: 0x01 min max | 0x00 min}.
type Limits struct {
	Min uint32
	Max *uint32 // nil means unbounded
}

// RefType describes a reference type. Short forms emit a single
// heap-type-id byte; long forms emit a nullable (0x63)
// or non-nullable (0x64) prefix followed by either a heap-type id byte or a
// signed LEB128 type index (by name, resolved at encode time).
type RefType struct {
	Long       bool
	Nullable   bool   // meaningful only when Long
	ByTypeName bool   // true: resolve TypeName against the Types namespace
	HeapType   byte   // used when !ByTypeName
	TypeName   string // used when ByTypeName
}

// FieldType describes one field of a GC struct or the element type of a GC
// array: a storage type (value type or packed i8/i16) plus mutability.
type FieldType struct {
	Storage StorageType
	Mutable bool
}

// StorageType is api.StorageType, re-exported for the same reason as
// ValueType above.
type StorageType = api.StorageType

// CompositeType is the marker interface implemented by ArrayType,
// StructType, and FunctionSignature, the three composite-type shapes a
// SubType may wrap.
type CompositeType interface {
	isCompositeType()
}

// ArrayType is a GC array's element field type.
type ArrayType struct {
	Field FieldType
}

func (ArrayType) isCompositeType() {}

// StructType is a GC struct's ordered list of fields.
type StructType struct {
	Fields []FieldType
}

func (StructType) isCompositeType() {}

// FunctionSignature is a function's parameter and result value types. This
// is both a CompositeType (for use inside a recursive type group) and the
// implicit type every Function definition generates at its own type index.
type FunctionSignature struct {
	Params  []ValueType
	Results []ValueType
}

func (FunctionSignature) isCompositeType() {}

// SubType wraps a composite type with an optional supertype list (by name)
// and a final/open flag, per the GC proposal's type-recursion-group syntax.
type SubType struct {
	Supertypes []string // type names; empty means no explicit supertype
	Final      bool
	Composite  CompositeType
}

// RecType bundles one or more SubTypes that may refer to each other.
type RecType struct {
	Subtypes []SubType
}

// CustomType is a named, non-function type declared in the module; it
// occupies type index F+i (after all F function signatures) in declaration
// order.
type CustomType struct {
	Name string
	Rec  RecType
}

// NamedValueType pairs a symbolic name with its value type; used for a
// function's ordered parameter and local lists. Parameters take the low
// local indices, then declared locals follow in declaration order.
type NamedValueType struct {
	Name string
	Type ValueType
}

// Function is one function definition: a name, optional export flag,
// ordered params, a result shape, optional ordered declared locals, and its
// instruction sequence (which must end with an explicit end opcode).
type Function struct {
	Name         string
	Export       bool
	Params       []NamedValueType
	Results      []ValueType
	Locals       []NamedValueType
	Instructions []Instruction
}

// Signature derives this function's implicit FunctionSignature.
func (f *Function) Signature() FunctionSignature {
	params := make([]ValueType, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type
	}
	return FunctionSignature{Params: params, Results: f.Results}
}

// Global is one global variable definition.
type Global struct {
	Name    string
	Export  bool
	Type    ValueType
	Mutable bool
	Init    []Instruction // a constant instruction sequence terminated by end
}

// Table is one table definition.
type Table struct {
	Name    string
	Export  bool
	RefType RefType
	Limits  Limits
}

// Memory is one linear memory definition.
type Memory struct {
	Name   string
	Export bool
	Limits Limits
}

// ImportKind discriminates which payload an Import carries.
type ImportKind = api.ExternalKind

// Import is one imported entity. Exactly one of the kind-specific fields is
// meaningful, selected by Kind.
type Import struct {
	ModuleName string
	Name       string
	Kind       ImportKind

	// EntityName is the symbolic name this import is registered under in
	// the relevant namespace (Functions/Tables/Memories/Globals), so
	// instructions elsewhere in the module can refer to it exactly like a
	// locally-defined entity of the same kind.
	EntityName string

	FuncSignature FunctionSignature // Kind == ExternalKindFunc
	TableRefType  RefType           // Kind == ExternalKindTable
	TableLimits   Limits            // Kind == ExternalKindTable
	MemoryLimits  Limits            // Kind == ExternalKindMemory
	GlobalType    ValueType         // Kind == ExternalKindGlobal
	GlobalMutable bool              // Kind == ExternalKindGlobal
}

// ElementMode selects one of the eight element-segment layouts the binary
// format defines; the declaration order below matches the on-wire flags
// byte (0-7).
type ElementMode int

const (
	ElementModeActiveTableZeroFuncs ElementMode = iota
	ElementModePassiveFuncs
	ElementModeActiveFuncs
	ElementModeDeclarativeFuncs
	ElementModeActiveTableZeroExprs
	ElementModePassiveExprs
	ElementModeActiveExprs
	ElementModeDeclarativeExprs
)

// ElementSegment is one entry in the elements section.
type ElementSegment struct {
	Name  string
	Mode  ElementMode
	Table string // table name; used by the "active" variants

	// Offset is the active variants' offset expression (const instruction
	// sequence terminated by end).
	Offset []Instruction

	RefType RefType // used by the *Exprs variants

	// FuncNames is used by the *Funcs variants: a length-prefixed list of
	// function names resolved against the Functions namespace.
	FuncNames []string

	// Exprs is used by the *Exprs variants: each entry is itself a
	// constant instruction sequence (e.g. ref.func/ref.null/global.get)
	// terminated by end.
	Exprs [][]Instruction
}

// DataMode selects one of the three data-segment layouts; the declaration
// order below matches the on-wire flags byte (0-2).
type DataMode int

const (
	DataModeActiveMemoryZero DataMode = iota
	DataModePassive
	DataModeActive
)

// DataSegment is one entry in the data section.
type DataSegment struct {
	Name   string
	Mode   DataMode
	Memory string        // memory name; used by DataModeActive
	Offset []Instruction // active variants' offset expression
	Bytes  []byte
}

// CustomSection is a user-supplied, verbatim custom section.
type CustomSection struct {
	Name    string
	Content []byte
}

// Module is the top-level module definition schema. Every field is
// optional; an all-zero Module encodes to just the preamble.
type Module struct {
	Functions      []Function
	Globals        []Global
	CustomTypes    []CustomType
	Imports        []Import
	Tables         []Table
	Memories       []Memory
	Start          string // function name; empty means no start function
	Elements       []ElementSegment
	Data           []DataSegment
	CustomSections []CustomSection
}
