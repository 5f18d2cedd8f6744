package glob

import (
	"unicode/utf8"

	"github.com/uiui611/array-matcher/literal"
	"github.com/uiui611/array-matcher/step"
)

type tokenKind uint8

const (
	tokenChar    tokenKind = iota // literal character
	tokenAnyRun                   // '*'
	tokenAnyChar                  // '?'
	tokenClass                    // '[...]'
)

type token struct {
	kind  tokenKind
	char  rune
	class []rune // bracket body without the brackets
}

// tokenize splits one segment glob into glyph-level tokens.
//
//	tokenize("ab[c-e]f") → 'a', 'b', [c-e], 'f'
func tokenize(glob string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(glob); {
		r, size := utf8.DecodeRuneInString(glob[i:])
		switch r {
		case '[':
			end := -1
			for j := i + size; j < len(glob); j++ {
				if glob[j] == ']' {
					end = j
					break
				}
			}
			if end < 0 {
				return nil, &PatternError{Pattern: glob, Offset: i, Err: ErrUnterminatedBracket}
			}
			tokens = append(tokens, token{kind: tokenClass, class: []rune(glob[i+size : end])})
			i = end + 1
			continue
		case '*':
			tokens = append(tokens, token{kind: tokenAnyRun})
		case '?':
			tokens = append(tokens, token{kind: tokenAnyChar})
		default:
			tokens = append(tokens, token{kind: tokenChar, char: r})
		}
		i += size
	}
	return tokens, nil
}

// charStep compiles a token to a character-level step.
func charStep(t token) step.Step[rune] {
	switch t.kind {
	case tokenAnyRun:
		return step.AnyConsumer[rune]()
	case tokenAnyChar:
		return step.Present[rune]()
	case tokenClass:
		return newCharClass(t.class).step()
	default:
		return step.Equal(t.char)
	}
}

// literalRuns collects the runs of plain characters of a token list.
// The result is complete when the whole list is a single non-empty run.
func literalRuns(tokens []token) *literal.Seq {
	var (
		lits     []literal.Literal
		run      []byte
		wildcard bool
	)
	flush := func() {
		if len(run) > 0 {
			lits = append(lits, literal.NewLiteral(run, false))
			run = nil
		}
	}
	for _, t := range tokens {
		if t.kind != tokenChar {
			wildcard = true
			flush()
			continue
		}
		run = utf8.AppendRune(run, t.char)
	}
	flush()

	if !wildcard && len(lits) == 1 {
		lits[0].Complete = true
	}
	return literal.NewSeq(lits...)
}
