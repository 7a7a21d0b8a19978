// Package jovial is a semantic model and query layer for JOVIAL J73
// (MIL-STD-1589B/C) translation units. It recognises declaration statements
// (ITEM, TABLE, PROC, COMPOOL, DEFINE, TYPE, DEF, REF) in JOVIAL source text
// and builds an in-memory model that can be queried for completions, hover
// payloads, definitions, references, and document symbols — the building
// blocks an LSP host uses to answer editor requests. Framing the requests
// as JSON-RPC, handling the LSP capability handshake, and synchronising
// document content are the host's job, not this package's.
package jovial

import "strings"

// ItemType is the closed set of JOVIAL scalar data types an ITEM can carry.
type ItemType string

// Constants enumerating valid item types. The string values match the J73
// type-abbreviation tokens, except for Table/Entry/Unknown which have no
// single-letter source spelling.
const (
	ItemTypeUnknown   ItemType = "UNKNOWN"
	ItemTypeSigned    ItemType = "S"
	ItemTypeUnsigned  ItemType = "U"
	ItemTypeFloat     ItemType = "F"
	ItemTypeFixed     ItemType = "A"
	ItemTypeBit       ItemType = "B"
	ItemTypeCharacter ItemType = "C"
	ItemTypePointer   ItemType = "P"
	ItemTypeStatus    ItemType = "STATUS"
	ItemTypeTable     ItemType = "TABLE"
	ItemTypeEntry     ItemType = "ENTRY"
)

// Caps returns the item type's canonical uppercase spelling.
func (it ItemType) Caps() string {
	return strings.ToUpper(string(it))
}

// ModuleType identifies the kind of translation unit a document represents.
type ModuleType string

// Constants enumerating the module types a START/COMPOOL statement can set.
const (
	ModuleTypeUnknown ModuleType = ""
	ModuleTypeMain    ModuleType = "MAIN"
	ModuleTypeCompool ModuleType = "COMPOOL"
	ModuleTypeProc    ModuleType = "PROC"
)

// ParamMode is the passing mode of a PROC parameter.
type ParamMode string

// Constants enumerating parameter passing modes.
const (
	ParamIn    ParamMode = "IN"
	ParamOut   ParamMode = "OUT"
	ParamInOut ParamMode = "INOUT"
)

// Param is a single named parameter of a Proc, in declaration order.
type Param struct {
	Name string
	Mode ParamMode
}

// Bound is one dimension of a Table, as a (lower, upper) pair of integer
// array bounds.
type Bound struct {
	Lower int
	Upper int
}

// Item represents a single JOVIAL ITEM (scalar variable) declaration.
type Item struct {
	Name         string
	Type         ItemType
	Size         *int // bit-width for S/U/B, precision for F, length for C; nil if absent
	Scale        *int // digits after the point, for Fixed; nil if absent or not expressed by the grammar
	StatusValues []string
	IsConstant   bool
	IsStatic     bool
	IsParallel   bool
	InitialValue string // verbatim RHS text after "=", empty if absent
	Line         int
	ColStart     int
	ColEnd       int
	ParentTable  string // enclosing table's name, empty if top-level or proc-local
}

// Table represents a JOVIAL TABLE (aggregate) declaration.
type Table struct {
	Name       string
	Dimensions []Bound
	Entries    map[string]*Item // entry name (folded) -> Item, for items declared in the table's BEGIN...END body
	IsConstant bool
	IsStatic   bool
	IsParallel bool
	Wordsize   *int
	LineStart  int
	LineEnd    int
}

// Proc represents a JOVIAL PROC (procedure) declaration.
type Proc struct {
	Name        string
	Parameters  []Param
	ReturnType  ItemType // not set by Parse; always the zero value
	IsRecursive bool
	IsReentrant bool
	LocalItems  map[string]*Item  // locals declared in the proc body
	LocalTables map[string]*Table // tables declared in the proc body
	LineStart   int
	BodyStart   int
	LineEnd     int
}

// CompoolRef records a COMPOOL module declaration and the names it imports
// via DEF.
type CompoolRef struct {
	Name   string
	Items  map[string]bool
	Tables map[string]bool
	Procs  map[string]bool
	Line   int
}

// Define is a compile-time textual constant introduced by a DEFINE
// statement.
type Define struct {
	Name  string
	Value string // verbatim RHS text
	Line  int
}

// TypeDecl is a user TYPE declaration: a name bound to a free-text
// descriptor, since J73's TYPE syntax is not otherwise interpreted by this
// model.
type TypeDecl struct {
	Name        string
	Description string
	Line        int
}

// Model holds every entity recognised in one JOVIAL translation unit. A
// Model is produced in full by a single Parse call and is never mutated
// afterward; the next edit to the document discards it and parses again
// from scratch (there is no incremental update).
//
// All map keys are identifiers folded to upper case (§3 invariant iv,
// case-insensitive comparison); each entity's Name field preserves the
// casing it had in the source.
type Model struct {
	Items    map[string]*Item
	Tables   map[string]*Table
	Procs    map[string]*Proc
	Compools map[string]*CompoolRef
	Defines  map[string]*Define
	Types    map[string]*TypeDecl

	ProgramName string
	ModuleType  ModuleType
}

// NewModel returns an empty Model with all collections initialized.
func NewModel() *Model {
	return &Model{
		Items:    make(map[string]*Item),
		Tables:   make(map[string]*Table),
		Procs:    make(map[string]*Proc),
		Compools: make(map[string]*CompoolRef),
		Defines:  make(map[string]*Define),
		Types:    make(map[string]*TypeDecl),
	}
}

// foldName folds a JOVIAL identifier to its canonical lookup key. Apostrophes
// are preserved since they are legal identifier characters (§4.1), not word
// separators to be stripped.
func foldName(name string) string {
	return strings.ToUpper(name)
}

// addItem records item under its bare folded name, and additionally under a
// "<scope>.<name>" folded key when scope is non-empty — so a local item
// declared inside two different tables or procs under the same bare name
// can still be resolved unambiguously by scope, while the bare-name lookup
// always resolves to the most recently declared item with that name (§7
// duplicate-overwrite rule). This is the scoped-key scheme the original
// implementation declared but never actually populated (its current_scope
// never left "GLOBAL"); here scope is the enclosing table or proc name.
func (m *Model) addItem(item *Item, scope string) {
	m.Items[foldName(item.Name)] = item
	if scope != "" {
		m.Items[foldName(scope)+"."+foldName(item.Name)] = item
	}
}

// Item looks up a top-level item by name, case-insensitively.
func (m *Model) Item(name string) (*Item, bool) {
	it, ok := m.Items[foldName(name)]
	return it, ok
}

// ResolveScoped looks up an item declared locally within the given table or
// proc scope, falling back to the bare (unscoped) name if no scoped entry
// exists.
func (m *Model) ResolveScoped(scope, name string) (*Item, bool) {
	if scope != "" {
		if it, ok := m.Items[foldName(scope)+"."+foldName(name)]; ok {
			return it, true
		}
	}
	return m.Item(name)
}

// Table looks up a table by name, case-insensitively.
func (m *Model) Table(name string) (*Table, bool) {
	t, ok := m.Tables[foldName(name)]
	return t, ok
}

// Proc looks up a proc by name, case-insensitively.
func (m *Model) Proc(name string) (*Proc, bool) {
	p, ok := m.Procs[foldName(name)]
	return p, ok
}

// Define looks up a compile-time constant by name, case-insensitively.
func (m *Model) Define(name string) (*Define, bool) {
	d, ok := m.Defines[foldName(name)]
	return d, ok
}

// AllSymbols returns the union of item, table, proc, and define names,
// de-duplicated case-insensitively (each name keeps its source casing),
// suitable for completion enumeration (§4.6
// get_all_symbols). Scoped "<scope>.<name>" item keys are excluded, since
// they name the same entity as their bare-name counterpart.
func (m *Model) AllSymbols() []string {
	seen := make(map[string]string, len(m.Items)+len(m.Tables)+len(m.Procs)+len(m.Defines))
	for key, it := range m.Items {
		if strings.Contains(key, ".") {
			continue
		}
		seen[key] = it.Name
	}
	for key, t := range m.Tables {
		seen[key] = t.Name
	}
	for key, p := range m.Procs {
		seen[key] = p.Name
	}
	for key, d := range m.Defines {
		seen[key] = d.Name
	}
	names := make([]string, 0, len(seen))
	for _, name := range seen {
		names = append(names, name)
	}
	return names
}

// DimensionString renders a Table's dimensions as "l:u, l:u, ...", the
// format used in hover payloads and detail strings.
func (t *Table) DimensionString() string {
	parts := make([]string, len(t.Dimensions))
	for i, d := range t.Dimensions {
		parts[i] = itoa(d.Lower) + ":" + itoa(d.Upper)
	}
	return strings.Join(parts, ", ")
}

// EntryNames returns the table's member item names in map-iteration order;
// callers that need a stable order should sort the result themselves.
func (t *Table) EntryNames() []string {
	names := make([]string, 0, len(t.Entries))
	for _, it := range t.Entries {
		names = append(names, it.Name)
	}
	return names
}

// ParameterString renders a Proc's parameters as "p1 (MODE), p2 (MODE), ...",
// the format used in hover payloads.
func (p *Proc) ParameterString() string {
	parts := make([]string, len(p.Parameters))
	for i, param := range p.Parameters {
		parts[i] = param.Name + " (" + string(param.Mode) + ")"
	}
	return strings.Join(parts, ", ")
}

// ParameterNameString renders a Proc's parameter names only, comma
// separated — the format used in completion detail strings.
func (p *Proc) ParameterNameString() string {
	parts := make([]string, len(p.Parameters))
	for i, param := range p.Parameters {
		parts[i] = param.Name
	}
	return strings.Join(parts, ", ")
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}
