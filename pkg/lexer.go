package rbjs

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

type TokenType uint64

const (
	TokenEOF TokenType = iota

	TokenDef
	TokenEnd
	TokenNil

	TokenIdentifier
	TokenString
	TokenInteger

	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenAssign
	TokenOpenParentheses
	TokenCloseParentheses
	TokenComma
	TokenNewline
)

var tokenNames = map[TokenType]string{
	TokenEOF:              "EOF",
	TokenDef:              "Def",
	TokenEnd:              "End",
	TokenNil:              "Nil",
	TokenIdentifier:       "Identifier",
	TokenString:           "String",
	TokenInteger:          "Integer",
	TokenPlus:             "Plus",
	TokenMinus:            "Minus",
	TokenStar:             "Star",
	TokenSlash:            "Slash",
	TokenAssign:           "Assign",
	TokenOpenParentheses:  "OpenParentheses",
	TokenCloseParentheses: "CloseParentheses",
	TokenComma:            "Comma",
	TokenNewline:          "Newline",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return "TokenType(" + strconv.FormatUint(uint64(t), 10) + ")"
}

type Token struct {
	Typ   TokenType
	Value string
}

type tokenRule struct {
	pattern *regexp.Regexp
	typ     TokenType
}

func rule(pattern string, typ TokenType) tokenRule {
	return tokenRule{
		pattern: regexp.MustCompile(`^(?:` + pattern + `)`),
		typ:     typ,
	}
}

// Tried in order; keywords must come before identifiers.
var tokenRules = []tokenRule{
	rule(`\bdef\b`, TokenDef),
	rule(`\bend\b`, TokenEnd),
	rule(`\bnil\b`, TokenNil),
	rule(`\b[a-zA-Z_][a-zA-Z0-9_]*\b`, TokenIdentifier),
	rule(`"[^"\n]*"|'[^'\n]*'`, TokenString),
	rule(`\b\d+\b`, TokenInteger),
	rule(`\+`, TokenPlus),
	rule(`-`, TokenMinus),
	rule(`\*`, TokenStar),
	rule(`/`, TokenSlash),
	rule(`=`, TokenAssign),
	rule(`\(`, TokenOpenParentheses),
	rule(`\)`, TokenCloseParentheses),
	rule(`,`, TokenComma),
	rule(`\n`, TokenNewline),
}

type Lexer struct {
	code string
}

func NewLexer(code string) *Lexer {
	return &Lexer{
		code: strings.TrimRightFunc(code, isHorizontalSpace),
	}
}

// Run consumes the whole input. On failure no tokens are returned.
func (l *Lexer) Run() ([]Token, error) {
	var tokens []Token

	for l.code = trimSpace(l.code); l.code != ""; l.code = trimSpace(l.code) {
		tok, ok := l.match()
		if !ok {
			return nil, &TokenizeError{Remainder: l.code}
		}

		tokens = append(tokens, tok)
		l.code = l.code[len(tok.Value):]
	}

	return tokens, nil
}

func (l *Lexer) match() (Token, bool) {
	for _, r := range tokenRules {
		if value := r.pattern.FindString(l.code); value != "" {
			return Token{Typ: r.typ, Value: value}, true
		}
	}

	return Token{}, false
}

func Tokenize(code string) ([]Token, error) {
	return NewLexer(code).Run()
}

// Newlines separate statements, so they are never trimmed.
func isHorizontalSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func trimSpace(code string) string {
	return strings.TrimLeftFunc(code, isHorizontalSpace)
}
