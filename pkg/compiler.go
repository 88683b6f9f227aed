package rbjs

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/llir/llvm/ir"
)

type Compiler struct {
	// Logger receives one line per pipeline stage when set.
	Logger *log.Logger
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

var defaultCompiler = NewCompiler()

func Translate(src string) (string, error) {
	return defaultCompiler.Translate(src)
}

func (c *Compiler) Translate(src string) (string, error) {
	program, err := c.parse(src)
	if err != nil {
		return "", err
	}

	js := Generate(program)
	c.logf("generated %d bytes", len(js))

	return js, nil
}

func (c *Compiler) TranslateReader(reader io.Reader) (string, error) {
	src, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}

	return c.Translate(string(src))
}

func (c *Compiler) TranslateFile(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", err
	}
	defer f.Close()

	js, err := c.TranslateReader(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filename, err)
	}

	return js, nil
}

func (c *Compiler) Outline(src string) (*ir.Module, error) {
	program, err := c.parse(src)
	if err != nil {
		return nil, err
	}

	return Outline(program), nil
}

func (c *Compiler) parse(src string) (Program, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	c.logf("tokenized %d tokens", len(tokens))

	program, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	c.logf("parsed %d top-level nodes", len(program))

	return program, nil
}

func (c *Compiler) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
