package symbol

import (
	"fmt"
	"math/big"
)

// Parse builds an expression from text. The grammar covers the
// rational-function class:
//
//	expr   := term (('+' | '-') term)*
//	term   := unary (('*' | '/') unary)*
//	unary  := '-' unary | factor
//	factor := atom ('^' unary)?
//	atom   := number | identifier | '(' expr ')'
//
// '^' binds tightest and is right-associative; there is no implicit
// multiplication. Numbers are integer or decimal literals, kept exact.
// The result is simplified. Errors wrap ErrSyntax with the byte offset.
func Parse(src string) (Expr, error) {
	p := &parser{src: src}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpaces()
	if p.pos != len(p.src) {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, p.src[p.pos], p.pos)
	}
	return e.Simplify(), nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() (byte, bool) {
	p.skipSpaces()
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *parser) parseExpr() (Expr, error) {
	first, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	terms := []Expr{first}
	for {
		c, ok := p.peek()
		if !ok || (c != '+' && c != '-') {
			break
		}
		p.pos++
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if c == '-' {
			t = &Mul{factors: []Expr{N(-1), t}}
		}
		terms = append(terms, t)
	}
	if len(terms) == 1 {
		return terms[0], nil
	}
	return &Add{terms: terms}, nil
}

func (p *parser) parseTerm() (Expr, error) {
	first, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	factors := []Expr{first}
	for {
		c, ok := p.peek()
		if !ok || (c != '*' && c != '/') {
			break
		}
		p.pos++
		f, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if c == '/' {
			f = &Pow{base: f, exp: N(-1)}
		}
		factors = append(factors, f)
	}
	if len(factors) == 1 {
		return factors[0], nil
	}
	return &Mul{factors: factors}, nil
}

func (p *parser) parseUnary() (Expr, error) {
	if c, ok := p.peek(); ok && c == '-' {
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Mul{factors: []Expr{N(-1), inner}}, nil
	}
	return p.parseFactor()
}

func (p *parser) parseFactor() (Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if c, ok := p.peek(); ok && c == '^' {
		p.pos++
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Pow{base: base, exp: exp}, nil
	}
	return base, nil
}

func (p *parser) parseAtom() (Expr, error) {
	c, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	switch {
	case c == '(':
		p.pos++
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if c2, ok := p.peek(); !ok || c2 != ')' {
			return nil, fmt.Errorf("%w: missing ')' at offset %d", ErrSyntax, p.pos)
		}
		p.pos++
		return e, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	case isIdentStart(c):
		return p.parseIdent(), nil
	}
	return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrSyntax, c, p.pos)
}

func (p *parser) parseNumber() (Expr, error) {
	start := p.pos
	sawDot := false
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '.' {
			if sawDot {
				break
			}
			sawDot = true
		} else if c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	lit := p.src[start:p.pos]
	r, ok := new(big.Rat).SetString(lit)
	if !ok {
		return nil, fmt.Errorf("%w: bad number %q at offset %d", ErrSyntax, lit, start)
	}
	return &Num{val: r}, nil
}

func (p *parser) parseIdent() Expr {
	start := p.pos
	for p.pos < len(p.src) && isIdentChar(p.src[p.pos]) {
		p.pos++
	}
	return S(p.src[start:p.pos])
}

func isIdentStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}
