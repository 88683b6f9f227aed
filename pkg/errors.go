package rbjs

import (
	"errors"
	"fmt"
)

type TokenizeError struct {
	Remainder string
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("couldn't match token on %q", e.Remainder)
}

type ParseErrorKind int

const (
	ParseErrorUnexpectedLookahead ParseErrorKind = iota
	ParseErrorUnexpectedToken
	ParseErrorInvalidInteger
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseErrorUnexpectedLookahead:
		return "unexpected lookahead"
	case ParseErrorUnexpectedToken:
		return "unexpected token"
	case ParseErrorInvalidInteger:
		return "invalid integer"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

type ParseError struct {
	Kind ParseErrorKind
	// Expected is only meaningful for ParseErrorUnexpectedToken.
	Expected TokenType
	Found    Token
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case ParseErrorUnexpectedToken:
		return fmt.Sprintf("expected token %s but got %s", e.Expected, describe(e.Found))
	case ParseErrorInvalidInteger:
		return fmt.Sprintf("invalid integer literal %q", e.Found.Value)
	default:
		return fmt.Sprintf("unable to parse expression at %s", describe(e.Found))
	}
}

func describe(tok Token) string {
	if tok.Typ == TokenEOF || tok.Value == "" {
		return tok.Typ.String()
	}

	return fmt.Sprintf("%s %q", tok.Typ, tok.Value)
}

// IsIncomplete reports whether err was caused by the input ending early,
// i.e. more source could still turn it into a valid program.
func IsIncomplete(err error) bool {
	var perr *ParseError
	if !errors.As(err, &perr) {
		return false
	}

	return perr.Found.Typ == TokenEOF && perr.Kind != ParseErrorInvalidInteger
}

type FormatError struct {
	Output string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("prettier error: %v", e.Err)
	}

	return fmt.Sprintf("prettier error: %s", e.Output)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
