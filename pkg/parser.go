package rbjs

import (
	"strconv"
	"strings"
)

type Parser struct {
	tokens []Token
}

// NewParser copies tokens, the parser consumes its copy from the front.
func NewParser(tokens []Token) *Parser {
	own := make([]Token, len(tokens))
	copy(own, tokens)

	return &Parser{
		tokens: own,
	}
}

func Parse(tokens []Token) (Program, error) {
	return NewParser(tokens).Run()
}

func (p *Parser) Run() (Program, error) {
	var program Program

	for !p.done() {
		node, err := p.statement()
		if err != nil {
			return nil, err
		}

		program = append(program, node)
	}

	return program, nil
}

func (p *Parser) statement() (TopLevel, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenDef:
		return p.funcDef()
	case TokenEnd:
		// An expression list would stop here without consuming anything
		return nil, p.unexpected(TokenDef, tok)
	default:
		return p.exprList()
	}
}

func (p *Parser) funcDef() (*FuncDef, error) {
	if _, err := p.expect(TokenDef); err != nil {
		return nil, err
	}

	name, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	params, err := p.params()
	if err != nil {
		return nil, err
	}

	p.skipNewlines()

	body, err := p.exprList()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenEnd); err != nil {
		return nil, err
	}

	p.skipNewlines()

	return &FuncDef{
		Name:   name.Value,
		Params: params,
		Body:   body,
	}, nil
}

func (p *Parser) params() ([]*Expr, error) {
	params := []*Expr{}
	if !p.check(TokenOpenParentheses) {
		return params, nil
	}

	p.next() // Skip (

	for p.check(TokenIdentifier) {
		param := &Expr{
			Terms: []Term{&VarRef{Name: p.next().Value}},
		}

		if p.check(TokenAssign) {
			p.next()
			param.Terms = append(param.Terms, &AssignOp{})

			// The default value runs until the next separator
			for !p.check(TokenComma) && !p.check(TokenCloseParentheses) {
				t, err := p.term()
				if err != nil {
					return nil, err
				}

				param.Terms = append(param.Terms, t)
			}
		}

		if p.check(TokenComma) {
			p.next()
		}

		params = append(params, param)
	}

	if _, err := p.expect(TokenCloseParentheses); err != nil {
		return nil, err
	}

	return params, nil
}

func (p *Parser) exprList() (*ExprList, error) {
	list := &ExprList{Exprs: []*Expr{}}

	var terms []Term
	for !p.check(TokenDef) && !p.check(TokenEnd) && !p.done() {
		t, err := p.term()
		if err != nil {
			return nil, err
		}

		terms = append(terms, t)

		if p.check(TokenNewline) {
			list.Exprs = append(list.Exprs, &Expr{Terms: terms})
			terms = nil
			p.skipNewlines()
		}
	}

	if len(terms) > 0 {
		list.Exprs = append(list.Exprs, &Expr{Terms: terms})
	}

	return list, nil
}

func (p *Parser) term() (Term, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenNil:
		p.next()
		return &NilLiteral{}, nil
	case TokenString:
		return p.stringLiteral(), nil
	case TokenInteger:
		return p.integerLiteral()
	case TokenIdentifier:
		if p.peekAt(1).Typ == TokenOpenParentheses {
			return p.call()
		}

		return &VarRef{Name: p.next().Value}, nil
	case TokenPlus:
		p.next()
		return &Plus{}, nil
	case TokenMinus:
		p.next()
		return &Minus{}, nil
	case TokenStar:
		p.next()
		return &Star{}, nil
	case TokenSlash:
		p.next()
		return &Slash{}, nil
	case TokenAssign:
		p.next()
		return &AssignOp{}, nil
	default:
		return nil, &ParseError{
			Kind:  ParseErrorUnexpectedLookahead,
			Found: tok,
		}
	}
}

var quoteStripper = strings.NewReplacer(`'`, "", `"`, "")

func (p *Parser) stringLiteral() *StringLiteral {
	return &StringLiteral{
		Value: quoteStripper.Replace(p.next().Value),
	}
}

func (p *Parser) integerLiteral() (*IntegerLiteral, error) {
	tok := p.next()

	v, err := strconv.ParseInt(tok.Value, 10, 64)
	if err != nil {
		return nil, &ParseError{
			Kind:  ParseErrorInvalidInteger,
			Found: tok,
		}
	}

	return &IntegerLiteral{Value: v}, nil
}

func (p *Parser) call() (*Call, error) {
	name := p.next() // identifier

	if _, err := p.expect(TokenOpenParentheses); err != nil {
		return nil, err
	}

	args := []*Expr{}
	for !p.check(TokenCloseParentheses) {
		arg := &Expr{}
		for !p.check(TokenComma) && !p.check(TokenCloseParentheses) {
			t, err := p.term()
			if err != nil {
				return nil, err
			}

			arg.Terms = append(arg.Terms, t)
		}

		args = append(args, arg)

		if p.check(TokenComma) {
			p.next()
		}
	}

	p.next() // Skip )

	return &Call{
		Name: name.Value,
		Args: args,
	}, nil
}

func (p *Parser) done() bool {
	return len(p.tokens) == 0
}

// peek returns a TokenEOF token once the input is exhausted.
func (p *Parser) peek() Token {
	return p.peekAt(0)
}

func (p *Parser) peekAt(depth int) Token {
	if depth >= len(p.tokens) {
		return Token{Typ: TokenEOF}
	}

	return p.tokens[depth]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if !p.done() {
		p.tokens = p.tokens[1:]
	}

	return tok
}

func (p *Parser) check(typ TokenType) bool {
	return !p.done() && p.peek().Typ == typ
}

func (p *Parser) expect(typ TokenType) (Token, error) {
	tok := p.next()
	if tok.Typ != typ {
		return tok, p.unexpected(typ, tok)
	}

	return tok, nil
}

func (p *Parser) skipNewlines() {
	for p.check(TokenNewline) {
		p.next()
	}
}

func (p *Parser) unexpected(expected TokenType, found Token) *ParseError {
	return &ParseError{
		Kind:     ParseErrorUnexpectedToken,
		Expected: expected,
		Found:    found,
	}
}
