package literal

import "testing"

func TestSeqIsComplete(t *testing.T) {
	tests := []struct {
		name string
		seq  *Seq
		want bool
	}{
		{"nil", nil, false},
		{"empty", NewSeq(), false},
		{"complete", NewSeq(NewLiteral([]byte("abc"), true)), true},
		{"partial", NewSeq(NewLiteral([]byte("ab"), false)), false},
		{"two runs", NewSeq(NewLiteral([]byte("ab"), true), NewLiteral([]byte("cd"), true)), false},
	}
	for _, tt := range tests {
		if got := tt.seq.IsComplete(); got != tt.want {
			t.Errorf("%s: IsComplete() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSeqGet(t *testing.T) {
	seq := NewSeq(NewLiteral([]byte("report-"), false), NewLiteral([]byte(".txt"), false))
	if seq.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", seq.Len())
	}
	if got := string(seq.Get(1).Bytes); got != ".txt" {
		t.Errorf("Get(1) = %q, want .txt", got)
	}
	if got := seq.Get(0).Len(); got != 7 {
		t.Errorf("Get(0).Len() = %d, want 7", got)
	}
	if (*Seq)(nil).Len() != 0 {
		t.Error("nil Seq should be empty")
	}
}
