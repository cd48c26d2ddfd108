// Package parse builds expression trees from formula text.
//
// The grammar, lowest precedence first; every binary operator is
// left-associative except implication, which is right-associative so that
// A → B → C reads as A → (B → C):
//
//	expr    := equiv
//	equiv   := implies (EQUIV implies)*
//	implies := xor (IMPLIES implies)?
//	xor     := or (XOR or)*
//	or      := and (OR and)*
//	and     := unary (AND unary)*
//	unary   := NOT unary | primary
//	primary := '(' expr ')' | 'x' ['∈'] SET_NAME | SET_NAME
//
// A bare SET_NAME reads as x ∈ SET_NAME.
package parse

import (
	"github.com/seglogic/seglogic/ast"
	"github.com/seglogic/seglogic/token"
)

// Parse tokenizes formula and parses the whole token stream. Parsing is
// all-or-nothing: any input left over after a complete expression is an
// [ErrSyntax] error, and no partial tree is returned.
func Parse(formula string) (ast.Node, error) {
	p := &parser{toks: token.Tokenize(formula)}
	n, err := p.equiv()
	if err != nil {
		return nil, err
	}
	if t := p.cur(); t.Kind != token.EOF {
		return nil, unexpectedErr(t)
	}
	return n, nil
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *parser) advance() token.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k token.Kind) (token.Token, error) {
	if p.cur().Kind != k {
		return token.Token{}, expectedErr(k, p.cur())
	}
	return p.advance(), nil
}

func (p *parser) equiv() (ast.Node, error) {
	left, err := p.implies()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Equiv {
		p.advance()
		right, err := p.implies()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: ast.Equiv, Right: right}
	}
	return left, nil
}

func (p *parser) implies() (ast.Node, error) {
	left, err := p.xor()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind == token.Implies {
		p.advance()
		right, err := p.implies()
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Left: left, Op: ast.Implies, Right: right}, nil
	}
	return left, nil
}

func (p *parser) xor() (ast.Node, error) {
	left, err := p.or()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Xor {
		p.advance()
		right, err := p.or()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: ast.Xor, Right: right}
	}
	return left, nil
}

func (p *parser) or() (ast.Node, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.Or {
		p.advance()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: ast.Or, Right: right}
	}
	return left, nil
}

func (p *parser) and() (ast.Node, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.And {
		p.advance()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: ast.And, Right: right}
	}
	return left, nil
}

func (p *parser) unary() (ast.Node, error) {
	if p.cur().Kind == token.Not {
		p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Operand: operand}, nil
	}
	return p.primary()
}

func (p *parser) primary() (ast.Node, error) {
	switch p.cur().Kind {
	case token.LParen:
		p.advance()
		n, err := p.equiv()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return n, nil
	case token.FreeVar:
		p.advance()
		if p.cur().Kind == token.In {
			p.advance()
		}
		t, err := p.expect(token.SetName)
		if err != nil {
			return nil, err
		}
		return &ast.Membership{Set: t.Text}, nil
	case token.SetName:
		return &ast.Membership{Set: p.advance().Text}, nil
	}
	return nil, unexpectedErr(p.cur())
}
