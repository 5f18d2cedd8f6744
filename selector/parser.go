package selector

import (
	"github.com/uiui611/array-matcher/engine"
	"github.com/uiui611/array-matcher/internal/cursor"
	"github.com/uiui611/array-matcher/step"
)

// parser is a recursive-descent parser over the tokens of one query.
//
// Grammar:
//
//	query     = compound { separator compound }
//	compound  = simple { simple }
//	simple    = "#" label | "." label | label | "*"
//	label     = word | literal
//	separator = space | ">" | ","
//
// The output always starts with an implicit AnyConsume so the query matches
// anywhere it ends; a "," starts a new alternative without one.
type parser struct {
	query  string
	tokens cursor.Cursor[token]
	c      *Compiler
	ops    []engine.Op[any]
}

func parse(c *Compiler, query string) ([]engine.Op[any], error) {
	tokens, err := tokenize(query)
	if err != nil {
		return nil, err
	}
	p := &parser{
		query:  query,
		tokens: cursor.New(tokens),
		c:      c,
		ops:    []engine.Op[any]{engine.StepOp(step.AnyConsumer[any]())},
	}
	return p.parse()
}

func (p *parser) parse() ([]engine.Op[any], error) {
	if err := p.compound(); err != nil {
		return nil, err
	}
	for p.tokens.HasMore() {
		if !p.separator() {
			return nil, p.errorf(ErrSeparatorExpected)
		}
		if err := p.compound(); err != nil {
			return nil, err
		}
	}
	return p.ops, nil
}

// compound parses one or more simple selectors written back to back and
// folds them into a single step.
func (p *parser) compound() error {
	first, err := p.simple()
	if err != nil {
		return err
	}
	if first == nil {
		return p.errorf(ErrSelectorExpected)
	}
	steps := []step.Step[any]{first}
	for {
		next, err := p.simple()
		if err != nil {
			return err
		}
		if next == nil {
			break
		}
		steps = append(steps, next)
	}
	if len(steps) == 1 {
		p.push(first)
	} else {
		p.push(step.And(steps...))
	}
	return nil
}

// simple parses one simple selector. It returns a nil step when the current
// token does not start one.
func (p *parser) simple() (step.Step[any], error) {
	tok, ok := p.tokens.Current()
	if !ok {
		return nil, nil
	}
	switch {
	case tok.is(tokenOperator, "#"):
		p.tokens.Advance()
		label, err := p.label()
		if err != nil {
			return nil, err
		}
		return p.c.idStep(label), nil
	case tok.is(tokenOperator, "."):
		p.tokens.Advance()
		label, err := p.label()
		if err != nil {
			return nil, err
		}
		return p.c.classStep(label), nil
	case tok.is(tokenOperator, "*"):
		p.tokens.Advance()
		return step.Present[any](), nil
	case tok.kind == tokenWord || tok.kind == tokenLiteral:
		p.tokens.Advance()
		return p.c.AcceptLiteral(tok.text)
	}
	return nil, nil
}

func (p *parser) label() (string, error) {
	tok, ok := p.tokens.Current()
	if !ok || (tok.kind != tokenWord && tok.kind != tokenLiteral) {
		return "", p.errorf(ErrSelectorExpected)
	}
	p.tokens.Advance()
	return tok.text, nil
}

// separator parses a combinator. Whitespace directly before ">" or "," is
// trivia, and whitespace after them is skipped.
func (p *parser) separator() bool {
	tok, ok := p.tokens.Current()
	if !ok {
		return false
	}
	switch {
	case tok.kind == tokenSpace:
		p.tokens.Advance()
		if next, ok := p.tokens.Current(); ok && (next.is(tokenOperator, ">") || next.is(tokenOperator, ",")) {
			return p.separator()
		}
		p.push(step.AnyConsumer[any]())
		return true
	case tok.is(tokenOperator, ">"):
		p.tokens.Advance()
		p.skipSpace()
		return true
	case tok.is(tokenOperator, ","):
		p.tokens.Advance()
		p.ops = append(p.ops, engine.Or[any]())
		p.skipSpace()
		return true
	}
	return false
}

func (p *parser) skipSpace() {
	if tok, ok := p.tokens.Current(); ok && tok.kind == tokenSpace {
		p.tokens.Advance()
	}
}

func (p *parser) push(s step.Step[any]) {
	p.ops = append(p.ops, engine.StepOp(s))
}

// errorf reports err at the current token, or at the end of the query.
func (p *parser) errorf(err error) error {
	tok, ok := p.tokens.Current()
	if !ok {
		return &SyntaxError{Query: p.query, Token: EndOfInput, Offset: len(p.query), Err: err}
	}
	text := tok.text
	if tok.kind == tokenLiteral {
		text = p.query[tok.offset : tok.offset+1]
	}
	return &SyntaxError{Query: p.query, Token: text, Offset: tok.offset, Err: err}
}
