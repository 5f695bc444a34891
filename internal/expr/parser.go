package expr

import (
	"fmt"

	"github.com/tphakala/go-fourier/internal/symbolic"
)

// SyntaxError describes why an expression could not be parsed.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("position %d: %s", e.Pos, e.Msg)
}

// AST node kinds. The grammar is deliberately closed: a fixed set of
// math functions, the variable x, the constants pi and e, arithmetic,
// comparisons, boolean connectives, and the Python-style conditional
// "<value> if <cond> else <value>". Nothing else is reachable, so
// evaluation needs no runtime sandboxing.
type node interface{ isNode() }

type numNode struct{ v float64 }

type varNode struct{ name string } // "x", "pi", or "e"

type callNode struct {
	fn  string
	arg node
}

type negNode struct{ operand node }

type binNode struct {
	op  tokenKind // tokPlus..tokPower
	lhs node
	rhs node
}

type cmpNode struct {
	op  tokenKind // tokLess..tokNotEq
	lhs node
	rhs node
}

type logicNode struct {
	op  tokenKind // tokAnd or tokOr
	lhs node
	rhs node
}

type notNode struct{ operand node }

type condNode struct {
	cond node
	then node
	els  node
}

func (numNode) isNode()   {}
func (varNode) isNode()   {}
func (callNode) isNode()  {}
func (negNode) isNode()   {}
func (binNode) isNode()   {}
func (cmpNode) isNode()   {}
func (logicNode) isNode() {}
func (notNode) isNode()   {}
func (condNode) isNode()  {}

type parser struct {
	toks []token
	pos  int
}

func parse(text string) (node, error) {
	toks, err := lex(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	root, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		t := p.peek()
		return nil, &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("unexpected %q", t.text)}
	}
	if err := checkNumeric(root); err != nil {
		return nil, err
	}
	return root, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return t, &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("expected %s, found %q", what, t.text)}
	}
	return p.next(), nil
}

// parseConditional := or [ "if" or "else" conditional ]
func (p *parser) parseConditional() (node, error) {
	value, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokIf {
		return value, nil
	}
	p.next()
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokElse, "'else'"); err != nil {
		return nil, err
	}
	els, err := p.parseConditional()
	if err != nil {
		return nil, err
	}
	return condNode{cond: cond, then: value, els: els}, nil
}

func (p *parser) parseOr() (node, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = logicNode{op: tokOr, lhs: lhs, rhs: rhs}
	}
	return lhs, nil
}

func (p *parser) parseAnd() (node, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = logicNode{op: tokAnd, lhs: lhs, rhs: rhs}
	}
	return lhs, nil
}

func (p *parser) parseNot() (node, error) {
	if p.peek().kind == tokNot {
		p.next()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return notNode{operand: operand}, nil
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() (node, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	switch p.peek().kind {
	case tokLess, tokGreater, tokLessEq, tokGreaterEq, tokEq, tokNotEq:
		op := p.next().kind
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return cmpNode{op: op, lhs: lhs, rhs: rhs}, nil
	}
	return lhs, nil
}

func (p *parser) parseAdditive() (node, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		kind := p.peek().kind
		if kind != tokPlus && kind != tokMinus {
			return lhs, nil
		}
		op := p.next().kind
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		lhs = binNode{op: op, lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseTerm() (node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		kind := p.peek().kind
		if kind != tokStar && kind != tokSlash && kind != tokPercent {
			return lhs, nil
		}
		op := p.next().kind
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = binNode{op: op, lhs: lhs, rhs: rhs}
	}
}

func (p *parser) parseUnary() (node, error) {
	switch p.peek().kind {
	case tokMinus:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return negNode{operand: operand}, nil
	case tokPlus:
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

// parsePower := primary [ "**" unary ]; exponentiation is right-associative
// and binds tighter than unary minus on the left, matching Python.
func (p *parser) parsePower() (node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPower {
		return base, nil
	}
	p.next()
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return binNode{op: tokPower, lhs: base, rhs: exp}, nil
}

func (p *parser) parsePrimary() (node, error) {
	t := p.peek()
	switch t.kind {
	case tokNumber:
		p.next()
		return numNode{v: t.num}, nil

	case tokLParen:
		p.next()
		inner, err := p.parseConditional()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil

	case tokIdent:
		p.next()
		name := canonicalName(t.text)
		if p.peek().kind == tokLParen {
			if !symbolic.KnownFunc(name) {
				return nil, &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("unknown function %q", t.text)}
			}
			p.next()
			arg, err := p.parseConditional()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokRParen, "')'"); err != nil {
				return nil, err
			}
			return callNode{fn: name, arg: arg}, nil
		}
		switch name {
		case "x", "pi", "e":
			return varNode{name: name}, nil
		}
		return nil, &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("disallowed identifier %q", t.text)}

	case tokEOF:
		return nil, &SyntaxError{Pos: t.pos, Msg: "unexpected end of expression"}
	}
	return nil, &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf("unexpected %q", t.text)}
}

// canonicalName maps accepted aliases (numpy-style arcsin, ln) onto the
// canonical function names shared with the symbolic kernel.
func canonicalName(name string) string {
	switch name {
	case "arcsin":
		return "asin"
	case "arccos":
		return "acos"
	case "arctan":
		return "atan"
	case "ln":
		return "log"
	}
	return name
}

// checkNumeric verifies the tree is well-typed: boolean operators appear
// only inside conditions and every value position is numeric.
func checkNumeric(n node) error {
	switch v := n.(type) {
	case numNode, varNode:
		return nil
	case callNode:
		return checkNumeric(v.arg)
	case negNode:
		return checkNumeric(v.operand)
	case binNode:
		if err := checkNumeric(v.lhs); err != nil {
			return err
		}
		return checkNumeric(v.rhs)
	case condNode:
		if err := checkBool(v.cond); err != nil {
			return err
		}
		if err := checkNumeric(v.then); err != nil {
			return err
		}
		return checkNumeric(v.els)
	case cmpNode, logicNode, notNode:
		return &SyntaxError{Msg: "comparison used as a value"}
	}
	return &SyntaxError{Msg: "malformed expression"}
}

func checkBool(n node) error {
	switch v := n.(type) {
	case cmpNode:
		if err := checkNumeric(v.lhs); err != nil {
			return err
		}
		return checkNumeric(v.rhs)
	case logicNode:
		if err := checkBool(v.lhs); err != nil {
			return err
		}
		return checkBool(v.rhs)
	case notNode:
		return checkBool(v.operand)
	}
	return &SyntaxError{Msg: "condition must be a comparison"}
}
