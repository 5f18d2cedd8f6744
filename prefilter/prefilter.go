// Package prefilter rejects glob segments that cannot match before the
// character-level matcher runs.
//
// A prefilter is built from the literal runs of one segment glob
// (literal.Seq). Every run is required, so a segment missing any of them is
// rejected immediately, skipping the backtracking search entirely.
//
// The package selects the strategy from the extracted literals:
//   - Single complete literal → exact comparison (IsComplete is true)
//   - Runs of at least MinLiteralLen bytes → one Aho-Corasick automaton per run
//   - Nothing long enough → no prefilter (Build returns nil)
//
// Example usage:
//
//	seq := literal.NewSeq(literal.NewLiteral([]byte(".txt"), false))
//	pf := prefilter.NewBuilder(seq).Build()
//	pf.IsMatch([]byte("notes.txt")) // true: verify with the glob matcher
//	pf.IsMatch([]byte("notes.md"))  // false: cannot match
package prefilter

import (
	"bytes"

	"github.com/coregx/ahocorasick"

	"github.com/uiui611/array-matcher/literal"
)

// DefaultMinLiteralLen is the shortest run worth an automaton.
const DefaultMinLiteralLen = 2

// Prefilter is a necessary condition for a segment to match.
//
// Key methods:
//   - IsMatch: false means the segment cannot match
//   - IsComplete: true means IsMatch alone decides the match
//   - LiteralLen: length of the complete literal, 0 otherwise
type Prefilter interface {
	// IsMatch reports whether haystack contains every required literal.
	IsMatch(haystack []byte) bool

	// IsComplete returns true if IsMatch guarantees a full match.
	IsComplete() bool

	// LiteralLen returns the length of the complete literal when
	// IsComplete is true, and 0 otherwise.
	LiteralLen() int
}

// Builder constructs a Prefilter from the literal runs of a segment.
type Builder struct {
	seq    *literal.Seq
	minLen int
}

// NewBuilder creates a builder over seq.
func NewBuilder(seq *literal.Seq) *Builder {
	return &Builder{seq: seq, minLen: DefaultMinLiteralLen}
}

// WithMinLiteralLen sets the minimum run length used for filtering.
// Values below 1 are treated as 1.
func (b *Builder) WithMinLiteralLen(n int) *Builder {
	if n < 1 {
		n = 1
	}
	b.minLen = n
	return b
}

// Build returns the selected Prefilter, or nil when no literal is usable.
func (b *Builder) Build() Prefilter {
	if b.seq.IsComplete() {
		return newEqualPrefilter(b.seq.Get(0).Bytes)
	}

	var autos []*ahocorasick.Automaton
	for i := 0; i < b.seq.Len(); i++ {
		lit := b.seq.Get(i)
		if lit.Len() < b.minLen {
			continue
		}
		builder := ahocorasick.NewBuilder()
		builder.AddPattern(lit.Bytes)
		auto, err := builder.Build()
		if err != nil {
			// Filtering is optional; skip runs the automaton cannot take.
			continue
		}
		autos = append(autos, auto)
	}
	if len(autos) == 0 {
		return nil
	}
	return &requiredPrefilter{autos: autos}
}

// equalPrefilter handles segments without wildcards.
type equalPrefilter struct {
	needle []byte
}

func newEqualPrefilter(needle []byte) Prefilter {
	return &equalPrefilter{needle: needle}
}

func (p *equalPrefilter) IsMatch(haystack []byte) bool {
	return bytes.Equal(haystack, p.needle)
}

func (p *equalPrefilter) IsComplete() bool {
	return true
}

func (p *equalPrefilter) LiteralLen() int {
	return len(p.needle)
}

// requiredPrefilter requires every automaton to find its run.
type requiredPrefilter struct {
	autos []*ahocorasick.Automaton
}

func (p *requiredPrefilter) IsMatch(haystack []byte) bool {
	for _, auto := range p.autos {
		if !auto.IsMatch(haystack) {
			return false
		}
	}
	return true
}

func (p *requiredPrefilter) IsComplete() bool {
	return false
}

func (p *requiredPrefilter) LiteralLen() int {
	return 0
}
