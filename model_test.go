package jovial

import "testing"

func TestNewModelCollectionsAreUsable(t *testing.T) {
	model := NewModel()
	if model.Items == nil || model.Tables == nil || model.Procs == nil ||
		model.Compools == nil || model.Defines == nil || model.Types == nil {
		t.Fatal("NewModel left a collection nil")
	}
	if _, ok := model.Item("ANYTHING"); ok {
		t.Error("expected empty model to have no items")
	}
}

func TestFoldNamePreservesApostrophes(t *testing.T) {
	if got := foldName("flight'control"); got != "FLIGHT'CONTROL" {
		t.Errorf("foldName = %q, want FLIGHT'CONTROL", got)
	}
}

func TestAddItemScopedLookupDoesNotLeakAcrossScopes(t *testing.T) {
	model := NewModel()
	a := &Item{Name: "X", Type: ItemTypeSigned, ParentTable: "TABLE1"}
	b := &Item{Name: "X", Type: ItemTypeFloat, ParentTable: "TABLE2"}

	model.addItem(a, "TABLE1")
	model.addItem(b, "TABLE2")

	gotA, ok := model.ResolveScoped("TABLE1", "X")
	if !ok || gotA != a {
		t.Errorf("ResolveScoped(TABLE1, X) = %+v, want %+v", gotA, a)
	}
	gotB, ok := model.ResolveScoped("TABLE2", "X")
	if !ok || gotB != b {
		t.Errorf("ResolveScoped(TABLE2, X) = %+v, want %+v", gotB, b)
	}

	// The bare (unscoped) lookup always reflects the most recently added item.
	bare, ok := model.Item("X")
	if !ok || bare != b {
		t.Errorf("Item(X) = %+v, want most recent addItem %+v", bare, b)
	}
}

func TestResolveScopedFallsBackToBareName(t *testing.T) {
	model := NewModel()
	item := &Item{Name: "GLOBALCOUNT", Type: ItemTypeSigned}
	model.addItem(item, "")

	got, ok := model.ResolveScoped("SOMEPROC", "GLOBALCOUNT")
	if !ok || got != item {
		t.Errorf("ResolveScoped fallback = %+v, want %+v", got, item)
	}
}

func TestAllSymbolsExcludesScopedDuplicateKeys(t *testing.T) {
	model := NewModel()
	item := &Item{Name: "X"}
	model.addItem(item, "T")

	symbols := model.AllSymbols()
	if len(symbols) != 1 || symbols[0] != "X" {
		t.Errorf("AllSymbols = %v, want [X] (scoped key excluded)", symbols)
	}
}

func TestTableDimensionStringMultipleBounds(t *testing.T) {
	table := &Table{Dimensions: []Bound{{Lower: 1, Upper: 10}, {Lower: 0, Upper: 4}}}
	if got := table.DimensionString(); got != "1:10, 0:4" {
		t.Errorf("DimensionString = %q, want %q", got, "1:10, 0:4")
	}
}

func TestProcParameterStringIncludesModes(t *testing.T) {
	proc := &Proc{Parameters: []Param{
		{Name: "A", Mode: ParamIn},
		{Name: "B", Mode: ParamOut},
	}}
	want := "A (IN), B (OUT)"
	if got := proc.ParameterString(); got != want {
		t.Errorf("ParameterString = %q, want %q", got, want)
	}
	if got := proc.ParameterNameString(); got != "A, B" {
		t.Errorf("ParameterNameString = %q, want %q", got, "A, B")
	}
}

func TestItemTypeCaps(t *testing.T) {
	if got := ItemTypeFloat.Caps(); got != "F" {
		t.Errorf("Caps = %q, want F", got)
	}
}

func TestItoaHandlesZeroAndNegative(t *testing.T) {
	cases := map[int]string{0: "0", 7: "7", -42: "-42", 100: "100"}
	for n, want := range cases {
		if got := itoa(n); got != want {
			t.Errorf("itoa(%d) = %q, want %q", n, got, want)
		}
	}
}
