package jovial

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// assertMultilineEqual compares two multi-line strings and, on mismatch,
// fails with a unified diff rather than dumping both strings wholesale —
// useful once a comparison involves more than a line or two of rendered
// detail text.
func assertMultilineEqual(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	}
	text, _ := difflib.GetUnifiedDiffString(diff)
	t.Errorf("mismatch:\n%s", text)
}

// TestDocumentSymbolsDetailRendering renders every document symbol's
// name/detail pair as a sorted multi-line block and checks it against the
// expected detail strings, using a unified diff to localize any mismatch.
func TestDocumentSymbolsDetailRendering(t *testing.T) {
	src := "TABLE T (1:10);\nBEGIN\nITEM X S 4;\nEND\nPROC P (a, b);\nDEFINE K = 7;\n"
	symbols := DocumentSymbols(Parse(src))

	lines := make([]string, 0, len(symbols))
	for _, s := range symbols {
		lines = append(lines, fmt.Sprintf("%s: %s", s.Name, s.Detail))
	}
	sort.Strings(lines)

	want := strings.Join([]string{
		"K: DEFINE = 7",
		"P: PROC (a, b)",
		"T: TABLE (1:10)",
		"X: S 4",
	}, "\n") + "\n"

	assertMultilineEqual(t, strings.Join(lines, "\n")+"\n", want)
}
