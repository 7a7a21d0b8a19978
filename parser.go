package jovial

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reStartName   = regexp.MustCompile(`(?i)^START\s+([A-Za-z][A-Za-z0-9']*)?`)
	reCompoolName = regexp.MustCompile(`(?i)^COMPOOL\s+([A-Za-z][A-Za-z0-9']*)`)

	reItemHeader = regexp.MustCompile(`(?i)^ITEM\s+([A-Za-z][A-Za-z0-9']*)\s+` +
		`((?:STATIC|CONSTANT|PARALLEL)\s+)*` +
		`(STATUS|S|U|F|A|B|C|P)\s*` +
		`(\d+)?` +
		`(.*)$`)
	reInitialValue  = regexp.MustCompile(`=\s*(.+)$`)
	reStatusValue   = regexp.MustCompile(`(?i)V\s*\(\s*([A-Za-z][A-Za-z0-9']*)\s*\)`)
	reTableHeader   = regexp.MustCompile(`(?i)^TABLE\s+([A-Za-z][A-Za-z0-9']*)\s*\(([^)]+)\)\s*(.*)$`)
	reWordsize      = regexp.MustCompile(`(?i)W\s+(\d+)`)
	reProcHeader    = regexp.MustCompile(`(?i)^PROC\s+([A-Za-z][A-Za-z0-9']*)\s*(?:\(([^)]*)\))?\s*(.*)$`)
	reTypeHeader    = regexp.MustCompile(`(?i)^TYPE\s+([A-Za-z][A-Za-z0-9']*)\s+(.+)$`)
	reDefineHeader  = regexp.MustCompile(`(?i)^DEFINE\s+([A-Za-z][A-Za-z0-9']*)\s*=?\s*(.+)$`)
	reDefReference  = regexp.MustCompile(`(?i)^DEF\s+(ITEM|TABLE|PROC)?\s*([A-Za-z][A-Za-z0-9']*)`)
	reRefReference  = regexp.MustCompile(`(?i)^REF\s+(ITEM|TABLE|PROC)?\s*([A-Za-z][A-Za-z0-9']*)`)
	reIdentifierTok = regexp.MustCompile(`\b[A-Za-z][A-Za-z0-9']*\b`)
)

var itemTypeByAbbrev = map[string]ItemType{
	"S":      ItemTypeSigned,
	"U":      ItemTypeUnsigned,
	"F":      ItemTypeFloat,
	"A":      ItemTypeFixed,
	"B":      ItemTypeBit,
	"C":      ItemTypeCharacter,
	"P":      ItemTypePointer,
	"STATUS": ItemTypeStatus,
}

// parseContext is the parser's private state, reset on every Parse call. It
// tracks which table or proc body the line loop is currently inside, so
// ITEM declarations nest into the right container and the next BEGIN/END
// pair closes the right one (§4.7).
type parseContext struct {
	currentTable string
	inTableBody  bool
	currentProc  string
	inProcBody   bool
	inCompool    bool
}

// Parse recognises declaration statements in JOVIAL source text and returns
// the semantic model they describe. Parse is total: it never returns an
// error, and an input with no recognisable declarations simply yields an
// empty Model. Parse is the library's only entry point that builds a
// Model — every query operation takes the Model it returns as an argument.
func Parse(text string) *Model {
	model := NewModel()
	ctx := &parseContext{}

	var buf strings.Builder
	var finalLine string

	for i, raw := range splitLines(text) {
		line := stripComment(raw)
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}

		buf.WriteString(" ")
		buf.WriteString(stripped)

		if isStatementEnd(stripped) {
			finalLine = stripped
			statement := strings.TrimSpace(buf.String())
			dispatchStatement(model, ctx, statement, finalLine, i)
			buf.Reset()
		}
	}

	return model
}

// dispatchStatement classifies one complete, comment-stripped statement by
// its leading word and routes it to the matching recogniser (§4.2).
func dispatchStatement(model *Model, ctx *parseContext, statement, finalLine string, lineNum int) {
	upper := strings.ToUpper(statement)

	switch {
	case strings.HasPrefix(upper, "START"):
		parseStart(model, statement)
	case strings.HasPrefix(upper, "TERM"):
		// no-op: marks end of module
	case strings.HasPrefix(upper, "COMPOOL"):
		parseCompoolStart(model, ctx, statement)
	case upper == "BEGIN":
		handleBegin(model, ctx, lineNum)
	case upper == "END":
		handleEnd(model, ctx, lineNum)
	case strings.HasPrefix(upper, "ITEM"):
		parseItemDeclaration(model, ctx, statement, finalLine, lineNum)
	case strings.HasPrefix(upper, "TABLE"):
		parseTableDeclaration(model, ctx, statement, lineNum)
	case strings.HasPrefix(upper, "PROC"):
		parseProcDeclaration(model, ctx, statement, lineNum)
	case strings.HasPrefix(upper, "TYPE"):
		parseTypeDeclaration(model, statement, lineNum)
	case strings.HasPrefix(upper, "DEFINE"):
		parseDefine(model, statement, lineNum)
	case strings.HasPrefix(upper, "DEF"):
		parseDefReference(model, statement, lineNum)
	case strings.HasPrefix(upper, "REF"):
		parseRefReference(model, statement, lineNum)
	}
}

func parseStart(model *Model, statement string) {
	if m := reStartName.FindStringSubmatch(statement); m != nil && m[1] != "" {
		model.ProgramName = m[1]
	}
	model.ModuleType = ModuleTypeMain
}

func parseCompoolStart(model *Model, ctx *parseContext, statement string) {
	if m := reCompoolName.FindStringSubmatch(statement); m != nil {
		model.ProgramName = m[1]
		model.ModuleType = ModuleTypeCompool
	}
	ctx.inCompool = true
}

// parseItemDeclaration recognises an ITEM header (§4.3). The STATUS-value
// scan and initial-value extraction run against the original, not
// upper-cased, statement text so V(name) identifiers and initializer
// expressions keep their source casing (§7).
func parseItemDeclaration(model *Model, ctx *parseContext, statement, finalLine string, lineNum int) {
	stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(statement), ";"))

	m := reItemHeader.FindStringSubmatch(stmt)
	if m == nil {
		return
	}
	name := m[1]
	attrs := strings.ToUpper(m[2])
	typeAbbrev := strings.ToUpper(m[3])
	rest := m[5]

	var size *int
	if m[4] != "" {
		n, _ := strconv.Atoi(m[4])
		size = &n
	}

	itemType, ok := itemTypeByAbbrev[typeAbbrev]
	if !ok {
		itemType = ItemTypeUnknown
	}

	var statusValues []string
	if itemType == ItemTypeStatus {
		for _, sm := range reStatusValue.FindAllStringSubmatch(statement, -1) {
			statusValues = append(statusValues, sm[1])
		}
	}

	var initialValue string
	if vm := reInitialValue.FindStringSubmatch(rest); vm != nil {
		initialValue = strings.TrimSpace(vm[1])
	}

	idx := strings.Index(strings.ToUpper(finalLine), strings.ToUpper(name))

	item := &Item{
		Name:         name,
		Type:         itemType,
		Size:         size,
		StatusValues: statusValues,
		IsConstant:   strings.Contains(attrs, "CONSTANT"),
		IsStatic:     strings.Contains(attrs, "STATIC"),
		IsParallel:   strings.Contains(attrs, "PARALLEL"),
		InitialValue: initialValue,
		Line:         lineNum,
		ColStart:     idx,
		ColEnd:       idx + len(name),
	}

	scope := ""
	if ctx.currentTable != "" && ctx.inTableBody {
		item.ParentTable = ctx.currentTable
		if table, ok := model.Table(ctx.currentTable); ok {
			table.Entries[foldName(name)] = item
		}
		scope = ctx.currentTable
	} else if ctx.currentProc != "" && ctx.inProcBody {
		if proc, ok := model.Proc(ctx.currentProc); ok {
			proc.LocalItems[foldName(name)] = item
		}
		scope = ctx.currentProc
	}

	model.addItem(item, scope)
}

// parseTableDeclaration recognises a TABLE header (§4.4) and opens table
// context so the following BEGIN enters its body.
func parseTableDeclaration(model *Model, ctx *parseContext, statement string, lineNum int) {
	stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(statement), ";"))

	m := reTableHeader.FindStringSubmatch(stmt)
	if m == nil {
		return
	}
	name := m[1]
	dimsStr := m[2]
	attrs := strings.ToUpper(m[3])

	var dims []Bound
	for _, part := range strings.Split(dimsStr, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, ":") {
			bounds := strings.SplitN(part, ":", 2)
			dims = append(dims, Bound{
				Lower: parseSignedIntOrZero(bounds[0]),
				Upper: parseSignedIntOrZero(bounds[1]),
			})
		} else {
			dims = append(dims, Bound{Lower: 1, Upper: parseUnsignedIntOrZero(part)})
		}
	}

	var wordsize *int
	if wm := reWordsize.FindStringSubmatch(attrs); wm != nil {
		n, _ := strconv.Atoi(wm[1])
		wordsize = &n
	}

	table := &Table{
		Name:       name,
		Dimensions: dims,
		Entries:    make(map[string]*Item),
		IsConstant: strings.Contains(attrs, "CONSTANT"),
		IsStatic:   strings.Contains(attrs, "STATIC"),
		IsParallel: strings.Contains(attrs, "PARALLEL"),
		Wordsize:   wordsize,
		LineStart:  lineNum,
	}

	model.Tables[foldName(name)] = table
	ctx.currentTable = name
}

// parseProcDeclaration recognises a PROC header (§4.5) and opens proc
// context so the following BEGIN enters its body.
func parseProcDeclaration(model *Model, ctx *parseContext, statement string, lineNum int) {
	stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(statement), ";"))

	m := reProcHeader.FindStringSubmatch(stmt)
	if m == nil {
		return
	}
	name := m[1]
	paramsStr := m[2]

	var params []Param
	if paramsStr != "" {
		if strings.Contains(paramsStr, ":") {
			halves := strings.SplitN(paramsStr, ":", 2)
			for _, p := range strings.Split(halves[0], ",") {
				if p = strings.TrimSpace(p); p != "" {
					params = append(params, Param{Name: p, Mode: ParamIn})
				}
			}
			for _, p := range strings.Split(halves[1], ",") {
				if p = strings.TrimSpace(p); p != "" {
					params = append(params, Param{Name: p, Mode: ParamOut})
				}
			}
		} else {
			for _, p := range strings.Split(paramsStr, ",") {
				if p = strings.TrimSpace(p); p != "" {
					params = append(params, Param{Name: p, Mode: ParamInOut})
				}
			}
		}
	}

	proc := &Proc{
		Name:        name,
		Parameters:  params,
		LocalItems:  make(map[string]*Item),
		LocalTables: make(map[string]*Table),
		LineStart:   lineNum,
	}

	model.Procs[foldName(name)] = proc
	ctx.currentProc = name
}

func parseTypeDeclaration(model *Model, statement string, lineNum int) {
	stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(statement), ";"))
	m := reTypeHeader.FindStringSubmatch(stmt)
	if m == nil {
		return
	}
	model.Types[foldName(m[1])] = &TypeDecl{Name: m[1], Description: m[2], Line: lineNum}
}

func parseDefine(model *Model, statement string, lineNum int) {
	stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(statement), ";"))
	m := reDefineHeader.FindStringSubmatch(stmt)
	if m == nil {
		return
	}
	model.Defines[foldName(m[1])] = &Define{Name: m[1], Value: m[2], Line: lineNum}
}

// parseDefReference recognises a DEF import placeholder (§4.2). Only the
// ITEM kind (or an unspecified kind, which defaults to ITEM) produces a
// stub, mirroring the original: DEF TABLE/PROC headers are recognised but
// do not currently install a placeholder table or proc.
func parseDefReference(model *Model, statement string, lineNum int) {
	stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(statement), ";"))
	m := reDefReference.FindStringSubmatch(stmt)
	if m == nil {
		return
	}
	kind := strings.ToUpper(m[1])
	name := m[2]

	if kind == "ITEM" || kind == "" {
		item := &Item{Name: name, Type: ItemTypeUnknown, Line: lineNum}
		model.addItem(item, "")
	}
}

// parseRefReference recognises a REF external reference (§4.2). The
// default kind is PROC, which installs a stub Proc with no parameters and
// no body — a later full PROC header for the same name overwrites it (§7).
func parseRefReference(model *Model, statement string, lineNum int) {
	stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(statement), ";"))
	m := reRefReference.FindStringSubmatch(stmt)
	if m == nil {
		return
	}
	kind := strings.ToUpper(m[1])
	if kind == "" {
		kind = "PROC"
	}
	name := m[2]

	if kind == "PROC" {
		model.Procs[foldName(name)] = &Proc{
			Name:        name,
			LocalItems:  make(map[string]*Item),
			LocalTables: make(map[string]*Table),
			LineStart:   lineNum,
		}
	}
}

func handleBegin(model *Model, ctx *parseContext, lineNum int) {
	if ctx.currentTable != "" {
		ctx.inTableBody = true
	}
	if ctx.currentProc != "" {
		ctx.inProcBody = true
		if proc, ok := model.Proc(ctx.currentProc); ok {
			proc.BodyStart = lineNum
		}
	}
}

func handleEnd(model *Model, ctx *parseContext, lineNum int) {
	switch {
	case ctx.inTableBody:
		ctx.inTableBody = false
		if table, ok := model.Table(ctx.currentTable); ok {
			table.LineEnd = lineNum
		}
		ctx.currentTable = ""
	case ctx.inProcBody:
		ctx.inProcBody = false
		if proc, ok := model.Proc(ctx.currentProc); ok {
			proc.LineEnd = lineNum
		}
		ctx.currentProc = ""
	}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseSignedIntOrZero parses a table bound that may carry a leading minus
// sign, returning 0 for anything that does not parse as an integer (§4.4).
func parseSignedIntOrZero(s string) int {
	s = strings.TrimSpace(s)
	if !isAllDigits(strings.TrimPrefix(s, "-")) {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// parseUnsignedIntOrZero parses a single-bound table dimension, returning 0
// for anything that is not a bare non-negative integer (§4.4).
func parseUnsignedIntOrZero(s string) int {
	s = strings.TrimSpace(s)
	if !isAllDigits(s) {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
