package prefilter

import (
	"testing"

	"github.com/uiui611/array-matcher/literal"
)

func seqOf(complete bool, runs ...string) *literal.Seq {
	lits := make([]literal.Literal, 0, len(runs))
	for _, r := range runs {
		lits = append(lits, literal.NewLiteral([]byte(r), complete))
	}
	return literal.NewSeq(lits...)
}

func TestBuildComplete(t *testing.T) {
	pf := NewBuilder(seqOf(true, "second")).Build()
	if pf == nil {
		t.Fatal("Build() = nil for a complete literal")
	}
	if !pf.IsComplete() || pf.LiteralLen() != 6 {
		t.Errorf("IsComplete() = %v, LiteralLen() = %d; want true, 6", pf.IsComplete(), pf.LiteralLen())
	}
	if !pf.IsMatch([]byte("second")) {
		t.Error("IsMatch(second) = false")
	}
	if pf.IsMatch([]byte("seconds")) {
		t.Error("IsMatch(seconds) = true for an exact literal")
	}
}

func TestBuildRequired(t *testing.T) {
	pf := NewBuilder(seqOf(false, "report-", ".txt")).Build()
	if pf == nil {
		t.Fatal("Build() = nil")
	}
	if pf.IsComplete() || pf.LiteralLen() != 0 {
		t.Error("required prefilter must not be complete")
	}

	tests := []struct {
		haystack string
		want     bool
	}{
		{"report-2024.txt", true},
		{"report-.txt", true},
		{"report-2024.md", false},
		{"summary.txt", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := pf.IsMatch([]byte(tt.haystack)); got != tt.want {
			t.Errorf("IsMatch(%q) = %v, want %v", tt.haystack, got, tt.want)
		}
	}
}

func TestBuildSkipsShortRuns(t *testing.T) {
	if pf := NewBuilder(seqOf(false, "a", "b")).Build(); pf != nil {
		t.Errorf("Build() = %T, want nil for runs shorter than the default minimum", pf)
	}

	pf := NewBuilder(seqOf(false, "a", "b")).WithMinLiteralLen(1).Build()
	if pf == nil {
		t.Fatal("Build() = nil with MinLiteralLen 1")
	}
	if pf.IsMatch([]byte("xa")) {
		t.Error("IsMatch(xa) = true although run b is missing")
	}
	if !pf.IsMatch([]byte("ab")) {
		t.Error("IsMatch(ab) = false")
	}
}

func TestBuildEmpty(t *testing.T) {
	if pf := NewBuilder(nil).Build(); pf != nil {
		t.Errorf("Build() over nil = %T, want nil", pf)
	}
	if pf := NewBuilder(literal.NewSeq()).WithMinLiteralLen(0).Build(); pf != nil {
		t.Errorf("Build() over empty = %T, want nil", pf)
	}
}
