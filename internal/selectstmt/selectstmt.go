// Copyright (c) HashiCorp, Inc.

package selectstmt

import (
	"fmt"

	"github.com/Geeks-Trident-LLC/dlquery/internal/selectstmt/lexer"
)

// Compiled is a parsed select-statement: what to project, and the optional
// predicate an enclosing record must satisfy.
type Compiled struct {
	Columns   ColumnSpec
	Predicate *PredicateTree
}

// ParseStatement parses a select-statement of the form
// `[SELECT column_list] [WHERE expression]`, with the SELECT keyword
// optional when a bare column list leads the statement, and WHERE alone
// legal with no column list at all. An empty string is a valid statement
// meaning ZeroSelect with no predicate.
func ParseStatement(s string) (*Compiled, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, &ErrSelectSyntax{Statement: s, Reason: err.Error()}
	}
	p := &parser{toks: toks, raw: s}

	compiled := &Compiled{Columns: ColumnSpec{Kind: ZeroSelect}}

	switch p.peekType() {
	case lexer.Select:
		p.advance()
		cols, err := p.parseColumnList()
		if err != nil {
			return nil, err
		}
		compiled.Columns = cols
	case lexer.Where, lexer.EOF:
		// no column list at all
	default:
		cols, err := p.parseColumnList()
		if err != nil {
			return nil, err
		}
		compiled.Columns = cols
	}

	if p.peekType() == lexer.Where {
		p.advance()
		tree, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		compiled.Predicate = tree
	}

	if p.peekType() != lexer.EOF {
		return nil, &ErrSelectSyntax{Statement: s, Reason: fmt.Sprintf("unexpected token %q", p.peek().Value)}
	}

	return compiled, nil
}

func tokenize(s string) ([]lexer.Token, error) {
	l := lexer.New(s)
	var toks []lexer.Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == lexer.Whitespace {
			continue
		}
		toks = append(toks, tok)
		if tok.Type == lexer.EOF {
			break
		}
	}
	return toks, nil
}

// parser is a minimal recursive-descent parser over the token stream.
type parser struct {
	toks []lexer.Token
	pos  int
	raw  string
}

func (p *parser) peek() lexer.Token {
	return p.toks[p.pos]
}

func (p *parser) peekType() lexer.TokenType {
	return p.toks[p.pos].Type
}

func (p *parser) advance() lexer.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) parseColumnList() (ColumnSpec, error) {
	switch p.peekType() {
	case lexer.Star, lexer.All:
		p.advance()
		return ColumnSpec{Kind: AllSelect}, nil
	case lexer.Ident:
		cols := []string{p.advance().Value}
		for p.peekType() == lexer.Comma {
			p.advance()
			if p.peekType() != lexer.Ident {
				return ColumnSpec{}, &ErrSelectSyntax{Statement: p.raw, Reason: "expected identifier after ','"}
			}
			cols = append(cols, p.advance().Value)
		}
		return ColumnSpec{Kind: NamedSelect, Columns: cols}, nil
	default:
		return ColumnSpec{}, &ErrSelectSyntax{Statement: p.raw, Reason: fmt.Sprintf("expected column list, got %q", p.peek().Value)}
	}
}

// parseExpression folds `term (and_|or_ term)*` left-to-right at equal
// precedence, per the connective-precedence design decision recorded in
// DESIGN.md.
func (p *parser) parseExpression() (*PredicateTree, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peekType() == lexer.And || p.peekType() == lexer.Or {
		opTok := p.advance()
		conn := orConnective
		if opTok.Type == lexer.And {
			conn = andConnective
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Join(left, conn, right)
	}
	return left, nil
}

// parseTerm admits a parenthesized sub-expression or a bare atom.
func (p *parser) parseTerm() (*PredicateTree, error) {
	if p.peekType() == lexer.LParen {
		p.advance()
		tree, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if p.peekType() != lexer.RParen {
			return nil, &ErrSelectSyntax{Statement: p.raw, Reason: "missing closing paren"}
		}
		p.advance()
		return tree, nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (*PredicateTree, error) {
	if p.peekType() != lexer.Ident {
		return nil, &ErrSelectSyntax{Statement: p.raw, Reason: fmt.Sprintf("expected column name, got %q", p.peek().Value)}
	}
	key := p.advance().Value

	if p.peekType() != lexer.Op {
		return nil, &ErrSelectSyntax{Statement: p.raw, Reason: fmt.Sprintf("missing comparison operator after %q", key)}
	}
	op := p.advance().Value

	if p.peekType() != lexer.Ident {
		return nil, &ErrSelectSyntax{Statement: p.raw, Reason: fmt.Sprintf("missing comparison value after %q %s", key, op)}
	}
	value := p.advance().Value

	return Leaf(NewAtom(key, op, value)), nil
}
