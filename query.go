package jovial

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// SymbolKind is the LSP-compatible integer kind code used for document
// symbols (§6). Completion items use CompletionItemKind instead.
type SymbolKind int

// Constants enumerating symbol kinds. DocumentSymbols emits Class, Method,
// Variable and Constant; Function and Keyword are defined but not emitted.
const (
	SymbolKindFunction SymbolKind = 3
	SymbolKindClass    SymbolKind = 5
	SymbolKindMethod   SymbolKind = 6
	SymbolKindVariable SymbolKind = 13
	SymbolKindKeyword  SymbolKind = 14
	SymbolKindConstant SymbolKind = 14
)

// CompletionItemKind is the LSP CompletionItemKind code space, distinct from
// SymbolKind even though some numbers coincide: completions use their own
// enumeration (e.g. Variable=6, Class=7, Constant=21) rather than the
// document-symbol one (Variable=13, Constant=14).
type CompletionItemKind int

// Constants enumerating the completion kinds this package ever emits.
const (
	CompletionKindFunction CompletionItemKind = 3
	CompletionKindVariable CompletionItemKind = 6
	CompletionKindClass    CompletionItemKind = 7
	CompletionKindKeyword  CompletionItemKind = 14
	CompletionKindConstant CompletionItemKind = 21
)

// HoverKind tags which entity kind a HoverPayload describes (§9's "typed
// implementation should model this as a tagged sum").
type HoverKind string

// Constants enumerating hover/definition/reference entity kinds.
const (
	HoverKindItem    HoverKind = "item"
	HoverKindTable   HoverKind = "table"
	HoverKindProc    HoverKind = "proc"
	HoverKindKeyword HoverKind = "keyword"
)

// CompletionItem is one entry of a completions_at result (§6).
type CompletionItem struct {
	Label      string
	Kind       CompletionItemKind
	Detail     string
	InsertText string
	SortText   string
}

// HoverPayload is the result of hover_at, tagged by Kind; only the fields
// relevant to that kind are populated (§6).
type HoverPayload struct {
	Kind HoverKind
	Name string

	// Item fields
	ItemType     ItemType
	Size         *int
	IsConstant   bool
	IsStatic     bool
	StatusValues []string
	InitialValue string
	Line         int

	// Table fields
	Dimensions string
	Entries    []string
	Wordsize   *int
	LineStart  int
	LineEnd    int

	// Proc fields
	Parameters string

	// Keyword fields
	Description string
}

// Location is a (line, character-start, character-end) source span, used
// for definition_at and references_at results (§6).
type Location struct {
	Line           int
	CharacterStart int
	CharacterEnd   int
}

// DocumentSymbol is one element of a document_symbols result (§6).
type DocumentSymbol struct {
	Name     string
	Kind     SymbolKind
	Location Location
	Detail   string
}

// GetAllSymbols returns the union of item, table, proc, and define names,
// de-duplicated case-insensitively (§4.6).
func GetAllSymbols(model *Model) []string {
	return model.AllSymbols()
}

// CompletionsAt isolates the last whitespace-separated token up to column
// on the given line as a prefix, then returns every keyword and model
// symbol whose upper-cased name starts with that prefix, sorted and
// de-duplicated (§4.6).
func CompletionsAt(model *Model, lines []string, line, column int) []CompletionItem {
	prefix := completionPrefix(lines, line, column)

	seen := make(map[string]bool)
	var names []string

	for kw := range keywords {
		if strings.HasPrefix(kw, prefix) {
			if !seen[kw] {
				seen[kw] = true
				names = append(names, kw)
			}
		}
	}
	for _, sym := range model.AllSymbols() {
		if strings.HasPrefix(strings.ToUpper(sym), prefix) {
			folded := foldName(sym)
			if !seen[folded] {
				seen[folded] = true
				names = append(names, sym)
			}
		}
	}

	sort.Strings(names)

	items := make([]CompletionItem, len(names))
	for i, name := range names {
		items[i] = completionItem(model, name, i)
	}
	return items
}

func completionPrefix(lines []string, line, column int) string {
	if line < 0 || line >= len(lines) {
		return ""
	}
	text := lines[line]
	if column > len(text) {
		column = len(text)
	}
	if column < 0 {
		column = 0
	}
	head := strings.TrimSpace(text[:column])
	if head == "" {
		return ""
	}
	fields := strings.Fields(head)
	return strings.ToUpper(fields[len(fields)-1])
}

// completionItem builds the kind/detail/insertText/sortText quadruple for
// one completion label, mirroring the priority order keyword → proc →
// table → item → define (§6).
func completionItem(model *Model, name string, index int) CompletionItem {
	kind := CompletionKindVariable
	detail := "JOVIAL symbol"

	switch {
	case IsKeyword(name):
		kind = CompletionKindKeyword
		detail = "J73 keyword"
	case hasProc(model, name):
		proc, _ := model.Proc(name)
		kind = CompletionKindFunction
		detail = "PROC (" + proc.ParameterNameString() + ")"
	case hasTable(model, name):
		table, _ := model.Table(name)
		kind = CompletionKindClass
		detail = "TABLE (" + table.DimensionString() + ")"
	case hasItem(model, name):
		item, _ := model.Item(name)
		kind = CompletionKindVariable
		detail = "ITEM " + string(item.Type)
		if item.Size != nil {
			detail += " " + strconv.Itoa(*item.Size)
		}
	case hasDefine(model, name):
		define, _ := model.Define(name)
		kind = CompletionKindConstant
		detail = "DEFINE = " + define.Value
	}

	return CompletionItem{
		Label:      name,
		Kind:       kind,
		Detail:     detail,
		InsertText: name,
		SortText:   sortText(index),
	}
}

func sortText(index int) string {
	s := strconv.Itoa(index)
	for len(s) < 4 {
		s = "0" + s
	}
	return s
}

func hasItem(model *Model, name string) bool   { _, ok := model.Item(name); return ok }
func hasTable(model *Model, name string) bool  { _, ok := model.Table(name); return ok }
func hasProc(model *Model, name string) bool   { _, ok := model.Proc(name); return ok }
func hasDefine(model *Model, name string) bool { _, ok := model.Define(name); return ok }

// HoverAt finds the identifier token whose span contains column on the
// given line and resolves it in order Item → Table → Proc → keyword,
// returning nil if the token names nothing recognised (§4.6).
func HoverAt(model *Model, lines []string, line, column int) *HoverPayload {
	word := identifierAt(lines, line, column)
	if word == "" {
		return nil
	}

	if item, ok := model.Item(word); ok {
		return &HoverPayload{
			Kind:         HoverKindItem,
			Name:         item.Name,
			ItemType:     item.Type,
			Size:         item.Size,
			IsConstant:   item.IsConstant,
			IsStatic:     item.IsStatic,
			StatusValues: item.StatusValues,
			InitialValue: item.InitialValue,
			Line:         item.Line,
		}
	}
	if table, ok := model.Table(word); ok {
		return &HoverPayload{
			Kind:       HoverKindTable,
			Name:       table.Name,
			Dimensions: table.DimensionString(),
			Entries:    table.EntryNames(),
			Wordsize:   table.Wordsize,
			LineStart:  table.LineStart,
			LineEnd:    table.LineEnd,
		}
	}
	if proc, ok := model.Proc(word); ok {
		return &HoverPayload{
			Kind:       HoverKindProc,
			Name:       proc.Name,
			Parameters: proc.ParameterString(),
			LineStart:  proc.LineStart,
			LineEnd:    proc.LineEnd,
		}
	}
	if IsKeyword(word) {
		folded := foldName(word)
		return &HoverPayload{
			Kind:        HoverKindKeyword,
			Name:        folded,
			Description: keywordDescription(folded),
		}
	}

	return nil
}

func identifierAt(lines []string, line, column int) string {
	if line < 0 || line >= len(lines) {
		return ""
	}
	text := lines[line]
	for _, loc := range reIdentifierTok.FindAllStringIndex(text, -1) {
		if loc[0] <= column && column <= loc[1] {
			return text[loc[0]:loc[1]]
		}
	}
	return ""
}

// DefinitionAt delegates to HoverAt and returns the defining location for
// an Item, Table, or Proc result; keywords and unresolved tokens yield no
// definition (§4.6).
func DefinitionAt(model *Model, lines []string, line, column int) *Location {
	hover := HoverAt(model, lines, line, column)
	if hover == nil {
		return nil
	}

	var defLine int
	switch hover.Kind {
	case HoverKindItem:
		defLine = hover.Line
	case HoverKindTable, HoverKindProc:
		defLine = hover.LineStart
	default:
		return nil
	}

	return &Location{Line: defLine, CharacterStart: 0, CharacterEnd: 100}
}

// ReferencesAt delegates to HoverAt and, if it resolves to a named entity,
// returns one Location per word-boundary, case-insensitive occurrence of
// that name across every source line, including the declaration itself
// (§4.6).
func ReferencesAt(model *Model, lines []string, line, column int) []Location {
	hover := HoverAt(model, lines, line, column)
	if hover == nil || hover.Name == "" {
		return nil
	}

	pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(hover.Name) + `\b`)

	var refs []Location
	for i, text := range lines {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			refs = append(refs, Location{Line: i, CharacterStart: loc[0], CharacterEnd: loc[1]})
		}
	}
	return refs
}

// DocumentSymbols enumerates top-level items (skipping scoped "<scope>.name"
// duplicates), tables, procs, and defines as LSP-shaped document symbols
// (§4.6).
func DocumentSymbols(model *Model) []DocumentSymbol {
	var symbols []DocumentSymbol

	// addItem stores every item under its bare folded name and, when
	// scoped, again under "<scope>.name" — only the bare entries below
	// are emitted, since the scoped copies name the same entity.
	seen := make(map[string]bool)
	for key, item := range model.Items {
		if strings.Contains(key, ".") || seen[key] {
			continue
		}
		seen[key] = true

		kind := SymbolKindVariable
		if item.IsConstant {
			kind = SymbolKindConstant
		}
		detail := strings.TrimSpace(string(item.Type))
		if item.Size != nil {
			detail += " " + strconv.Itoa(*item.Size)
		}
		symbols = append(symbols, DocumentSymbol{
			Name: item.Name,
			Kind: kind,
			Location: Location{
				Line:           item.Line,
				CharacterStart: item.ColStart,
				CharacterEnd:   item.ColEnd,
			},
			Detail: detail,
		})
	}

	for _, table := range model.Tables {
		symbols = append(symbols, DocumentSymbol{
			Name:     table.Name,
			Kind:     SymbolKindClass,
			Location: Location{Line: table.LineStart, CharacterStart: 0, CharacterEnd: 100},
			Detail:   "TABLE (" + table.DimensionString() + ")",
		})
	}

	for _, proc := range model.Procs {
		symbols = append(symbols, DocumentSymbol{
			Name:     proc.Name,
			Kind:     SymbolKindMethod,
			Location: Location{Line: proc.LineStart, CharacterStart: 0, CharacterEnd: 100},
			Detail:   "PROC (" + proc.ParameterNameString() + ")",
		})
	}

	for _, define := range model.Defines {
		symbols = append(symbols, DocumentSymbol{
			Name:     define.Name,
			Kind:     SymbolKindConstant,
			Location: Location{Line: define.Line, CharacterStart: 0, CharacterEnd: 100},
			Detail:   "DEFINE = " + define.Value,
		})
	}

	return symbols
}
