package jovial

import "testing"

func TestIsKeywordCaseInsensitive(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		{"ITEM", true},
		{"item", true},
		{"Item", true},
		{"FLIGHT'CONTROL", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsKeyword(tc.word); got != tc.want {
			t.Errorf("IsKeyword(%q) = %t, want %t", tc.word, got, tc.want)
		}
	}
}

func TestKeywordDescriptionKnownEntry(t *testing.T) {
	if got := keywordDescription("proc"); got != "Procedure declaration" {
		t.Errorf("keywordDescription(proc) = %q, want %q", got, "Procedure declaration")
	}
}

func TestKeywordDescriptionFallsBackForUnlistedKeyword(t *testing.T) {
	if !IsKeyword("FALLTHRU") {
		t.Fatal("FALLTHRU should be a recognised keyword")
	}
	want := "J73 keyword: FALLTHRU"
	if got := keywordDescription("FALLTHRU"); got != want {
		t.Errorf("keywordDescription(FALLTHRU) = %q, want %q", got, want)
	}
}
