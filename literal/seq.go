// Package literal holds the plain-text runs a glob segment requires.
//
// A segment glob such as "report-*.txt" can only match segments containing
// "report-" and ".txt". The glob compiler collects those runs into a Seq,
// and the prefilter turns the Seq into a cheap rejection test that runs
// before the character-level matcher.
package literal

// Literal is one run of plain characters. Complete is set when the run is
// the whole segment, as for "abc"; the run "ab" of "ab*" is not complete.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral returns a Literal over b.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len is the run length in bytes.
func (l Literal) Len() int { return len(l.Bytes) }

// Seq lists the runs of one segment in order. Every run is required.
// A nil *Seq is an empty list.
type Seq struct {
	runs []Literal
}

// NewSeq returns a Seq over runs.
func NewSeq(runs ...Literal) *Seq {
	return &Seq{runs: runs}
}

// Len is the number of runs.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.runs)
}

// Get returns run i. It panics when i is out of range.
func (s *Seq) Get(i int) Literal { return s.runs[i] }

// IsComplete reports whether the segment is exactly one complete run, so
// that equality with it decides the match.
func (s *Seq) IsComplete() bool {
	return s.Len() == 1 && s.runs[0].Complete
}
