package selector

import (
	"strings"

	"github.com/viant/parsly"
)

type charClass uint8

const (
	classUnknown charClass = iota
	classSpace
	classWord
	classOperator
	classQuote
)

// charTable classifies ASCII; every byte from 0x80 up is a word byte, so
// multi-byte UTF-8 characters always end up inside words.
var charTable = func() (table [0x80]charClass) {
	for _, b := range []byte("\t\n\v\f\r ") {
		table[b] = classSpace
	}
	for b := 'a'; b <= 'z'; b++ {
		table[b] = classWord
		table[b-'a'+'A'] = classWord
	}
	for b := '0'; b <= '9'; b++ {
		table[b] = classWord
	}
	table['_'] = classWord
	table['-'] = classWord
	for _, b := range []byte("\"'`") {
		table[b] = classQuote
	}
	for _, b := range []byte(".#[]+~:>,*") {
		table[b] = classOperator
	}
	return table
}()

func classOf(b byte) charClass {
	if b >= 0x80 {
		return classWord
	}
	return charTable[b]
}

type tokenKind uint8

const (
	tokenWord tokenKind = iota
	tokenSpace
	tokenOperator
	tokenLiteral
)

// token is one lexical unit of a query. For literals, text holds the
// unquoted, unescaped content.
type token struct {
	kind   tokenKind
	text   string
	offset int
}

func (t token) is(kind tokenKind, text string) bool {
	return t.kind == kind && t.text == text
}

// Token codes registered with parsly.
const (
	wordCode = iota + 1
	spaceCode
	operatorCode
	literalCode
)

var (
	wordToken     = parsly.NewToken(wordCode, "word", &classRun{class: classWord})
	spaceToken    = parsly.NewToken(spaceCode, "whitespace", &classRun{class: classSpace})
	operatorToken = parsly.NewToken(operatorCode, "operator", &operator{})
	literalToken  = parsly.NewToken(literalCode, "literal", &quoted{})
)

// classRun matches a run of bytes of one class.
type classRun struct {
	class charClass
}

// Match implements parsly.Matcher
func (m *classRun) Match(cursor *parsly.Cursor) (matched int) {
	input := cursor.Input
	for i := cursor.Pos; i < len(input) && classOf(input[i]) == m.class; i++ {
		matched++
	}
	return matched
}

// operator matches a single operator byte.
type operator struct{}

// Match implements parsly.Matcher
func (m *operator) Match(cursor *parsly.Cursor) (matched int) {
	if cursor.Pos < len(cursor.Input) && classOf(cursor.Input[cursor.Pos]) == classOperator {
		return 1
	}
	return 0
}

// quoted matches a quoted literal, honoring backslash escapes. An
// unterminated literal does not match.
type quoted struct{}

// Match implements parsly.Matcher
func (m *quoted) Match(cursor *parsly.Cursor) (matched int) {
	input := cursor.Input
	pos := cursor.Pos
	if pos >= len(input) || classOf(input[pos]) != classQuote {
		return 0
	}
	quote := input[pos]
	for i := pos + 1; i < len(input); i++ {
		switch input[i] {
		case '\\':
			i++
		case quote:
			return i - pos + 1
		}
	}
	return 0
}

// tokenize splits query into tokens. Leading and trailing whitespace is
// dropped.
func tokenize(query string) ([]token, error) {
	cursor := parsly.NewCursor("", []byte(query), 0)
	var tokens []token
	for cursor.Pos < len(query) {
		offset := cursor.Pos
		match := cursor.MatchAny(wordToken, spaceToken, operatorToken, literalToken)
		text := query[offset:cursor.Pos]

		switch match.Code {
		case wordCode:
			tokens = append(tokens, token{kind: tokenWord, text: text, offset: offset})
		case spaceCode:
			tokens = append(tokens, token{kind: tokenSpace, text: text, offset: offset})
		case operatorCode:
			tokens = append(tokens, token{kind: tokenOperator, text: text, offset: offset})
		case literalCode:
			tokens = append(tokens, token{kind: tokenLiteral, text: unquote(text), offset: offset})
		default:
			err := ErrInvalidCharacter
			if classOf(query[offset]) == classQuote {
				err = ErrUnterminatedLiteral
			}
			return nil, &SyntaxError{Query: query, Token: query[offset : offset+1], Offset: offset, Err: err}
		}
	}

	if len(tokens) > 0 && tokens[0].kind == tokenSpace {
		tokens = tokens[1:]
	}
	if n := len(tokens); n > 0 && tokens[n-1].kind == tokenSpace {
		tokens = tokens[:n-1]
	}
	if len(tokens) == 0 {
		return nil, nil
	}
	return tokens, nil
}

// unquote strips the quotes of a literal and resolves backslash escapes.
func unquote(lit string) string {
	body := lit[1 : len(lit)-1]
	if !strings.Contains(body, `\`) {
		return body
	}
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
		}
		sb.WriteByte(body[i])
	}
	return sb.String()
}
