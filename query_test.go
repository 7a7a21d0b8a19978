package jovial

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioBSource = "TABLE WAYPOINTS (1:100);\nBEGIN\n  ITEM LAT F 32;\n  ITEM LON F 32;\nEND\n"

// TestHoverAtTableScenarioD covers spec scenario D: hovering on a table
// identifier returns its dimensions and entries.
func TestHoverAtTableScenarioD(t *testing.T) {
	lines := strings.Split(scenarioBSource, "\n")
	model := Parse(scenarioBSource)

	col := strings.Index(lines[0], "WAYPOINTS") + 2
	payload := HoverAt(model, lines, 0, col)
	require.NotNil(t, payload)

	assert.Equal(t, HoverKindTable, payload.Kind)
	assert.Equal(t, "1:100", payload.Dimensions)
	assert.ElementsMatch(t, []string{"LAT", "LON"}, payload.Entries)
}

// TestReferencesAtScenarioE covers spec scenario E: references to LAT
// return one location per word-boundary, case-insensitive occurrence.
func TestReferencesAtScenarioE(t *testing.T) {
	src := scenarioBSource + "ITEM ALT F 32 = LAT;\n"
	lines := strings.Split(src, "\n")
	model := Parse(src)

	declLine := 2
	col := strings.Index(lines[declLine], "LAT") + 1
	refs := ReferencesAt(model, lines, declLine, col)

	require.Len(t, refs, 2, "expected exactly the declaration and the other word-boundary occurrence")
	assert.Equal(t, declLine, refs[0].Line)
}

// TestCompletionsAtScenarioF covers spec scenario F: a non-empty prefix
// narrows to matching names; an empty prefix includes every keyword.
func TestCompletionsAtScenarioF(t *testing.T) {
	src := "START FLIGHT'CONTROL;\nDEFINE MAX'ALT = 50000;\nITEM ALTITUDE STATIC S 16;\nITEM MODE STATUS (V(NORMAL), V(WARN));\nTERM\n"
	model := Parse(src)

	prefixLine := []string{"  ALT"}
	completions := CompletionsAt(model, prefixLine, 0, len(prefixLine[0]))

	var labels []string
	for _, c := range completions {
		labels = append(labels, c.Label)
	}
	assert.Contains(t, labels, "ALTITUDE")
	assert.NotContains(t, labels, "MODE")

	emptyPrefix := CompletionsAt(model, []string{""}, 0, 0)
	var emptyLabels []string
	for _, c := range emptyPrefix {
		emptyLabels = append(emptyLabels, c.Label)
	}
	assert.Contains(t, emptyLabels, "BEGIN")
	assert.Contains(t, emptyLabels, "ITEM")
}

// TestCompletionsAtNegativeColumnDoesNotPanic covers spec.md's "queries
// never fail" invariant: a negative column must clamp rather than panic on
// the text[:column] slice.
func TestCompletionsAtNegativeColumnDoesNotPanic(t *testing.T) {
	model := NewModel()
	require.NotPanics(t, func() {
		CompletionsAt(model, []string{"ITEM X"}, 0, -5)
	})
}

func TestDefinitionAtDelegatesToHover(t *testing.T) {
	lines := strings.Split(scenarioBSource, "\n")
	model := Parse(scenarioBSource)

	col := strings.Index(lines[0], "WAYPOINTS") + 2
	loc := DefinitionAt(model, lines, 0, col)
	require.NotNil(t, loc)
	assert.Equal(t, 0, loc.Line)
	assert.Equal(t, 0, loc.CharacterStart)
	assert.Equal(t, 100, loc.CharacterEnd)
}

func TestHoverAtKeywordFallsBackToGenericDescription(t *testing.T) {
	lines := []string{"BLOCK"}
	model := NewModel()
	payload := HoverAt(model, lines, 0, 2)
	require.NotNil(t, payload)
	assert.Equal(t, HoverKindKeyword, payload.Kind)
	assert.Equal(t, "J73 keyword: BLOCK", payload.Description)
}

func TestHoverAtUnknownWordReturnsNil(t *testing.T) {
	model := NewModel()
	if got := HoverAt(model, []string{"NOPE"}, 0, 1); got != nil {
		t.Errorf("HoverAt = %+v, want nil", got)
	}
}

func TestDocumentSymbolsSkipsScopedDuplicates(t *testing.T) {
	symbols := DocumentSymbols(Parse(scenarioBSource))

	var names []string
	for _, s := range symbols {
		names = append(names, s.Name)
	}
	sort.Strings(names)

	assert.Equal(t, []string{"LAT", "LON", "WAYPOINTS"}, names)
}

func TestGetAllSymbolsUnionMatchesInvariant5(t *testing.T) {
	src := "ITEM A S 1;\nTABLE B (1:1);\nPROC C ();\nDEFINE D = 1;\n"
	model := Parse(src)

	symbols := GetAllSymbols(model)
	sort.Strings(symbols)
	assert.Equal(t, []string{"A", "B", "C", "D"}, symbols)
}

// TestParseIsDeterministicAndIdempotent covers invariants 3 and 4: parsing
// the same text twice yields equal models, and there is no persistent
// state across calls.
func TestParseIsDeterministicAndIdempotent(t *testing.T) {
	src := scenarioBSource + "PROC HELPER (a, b : c);\nDEFINE K = 1;\n"

	first := Parse(src)
	second := Parse(src)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Parse(src) not deterministic/idempotent (-first +second):\n%s", diff)
	}

	// Parsing something else in between must not leak state back into a
	// fresh parse of the original text.
	Parse("ITEM UNRELATED S 1;\nTABLE OTHER (1:1);\n")
	third := Parse(src)
	if diff := cmp.Diff(first, third); diff != "" {
		t.Errorf("Parse(src) leaked state across calls (-first +third):\n%s", diff)
	}
}

func TestCaseInsensitiveLookupInvariant2(t *testing.T) {
	model := Parse("ITEM Flight'Control S 16;")

	byUpper, ok1 := model.Item("FLIGHT'CONTROL")
	byOriginal, ok2 := model.Item("Flight'Control")
	byLower, ok3 := model.Item("flight'control")

	require.True(t, ok1)
	require.True(t, ok2)
	require.True(t, ok3)
	assert.Same(t, byUpper, byOriginal)
	assert.Same(t, byUpper, byLower)
	assert.Equal(t, "Flight'Control", byUpper.Name, "source casing must be preserved on the entity itself")
}
