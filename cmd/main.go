package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"go.rbjs.dev/pkg"
)

const (
	historyFile = ".rbjs_history"
	promptMain  = "rb> "
	promptCont  = "... "
	usage       = "usage: rbjs <translate|outline|repl> [flags] [file.rb]"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rbjs: ")

	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	var status int
	switch os.Args[1] {
	case "translate":
		status = cmdTranslate(os.Args[2:])
	case "outline":
		status = cmdOutline(os.Args[2:])
	case "repl":
		status = cmdRepl(os.Args[2:])
	default:
		log.Print(usage)
		status = 2
	}

	os.Exit(status)
}

func cmdTranslate(args []string) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	format := fs.Bool("format", false, "pretty-print the output with prettier")
	out := fs.String("o", "", "write the output to `file` instead of stdout")
	verbose := fs.Bool("v", false, "log pipeline stages")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 1 {
		log.Print("translate: expected exactly one source file")
		return 2
	}

	c := rbjs.NewCompiler()
	if *verbose {
		c.Logger = log.Default()
	}

	js, err := c.TranslateFile(fs.Arg(0))
	if err != nil {
		printError(err)
		return 1
	}

	if *format {
		js, err = rbjs.NewFormatter().Format(context.Background(), js)
		if err != nil {
			printError(err)
			return 1
		}
		js += "\n"
	}

	if *out == "" {
		fmt.Print(js)
		return 0
	}

	if err := os.WriteFile(*out, []byte(js), 0o644); err != nil {
		log.Print(err)
		return 1
	}

	return 0
}

func cmdOutline(args []string) int {
	fs := flag.NewFlagSet("outline", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 1 {
		log.Print("outline: expected exactly one source file")
		return 2
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		log.Print(err)
		return 1
	}

	mod, err := rbjs.NewCompiler().Outline(string(src))
	if err != nil {
		printError(err)
		return 1
	}

	fmt.Println(mod)
	return 0
}

func cmdRepl(_ []string) int {
	fmt.Println("rbjs REPL. Ctrl+D or :quit exits.")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		src, ok := readSource(ln)
		if !ok {
			fmt.Println()
			return 0
		}

		switch strings.TrimSpace(src) {
		case "":
			continue
		case ":quit":
			return 0
		}

		ln.AppendHistory(strings.ReplaceAll(strings.TrimSpace(src), "\n", " "))

		js, err := rbjs.Translate(src)
		if err != nil {
			printError(err)
			continue
		}

		fmt.Print(js)
	}
}

// readSource keeps prompting while the input is a truncated program, e.g. a
// def still waiting for its end.
func readSource(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the pending input
			return "", true
		}

		b.WriteString(line)
		b.WriteByte('\n')

		src := b.String()
		if strings.TrimSpace(src) == ":quit" {
			return src, true
		}

		if _, err := rbjs.Translate(src); !rbjs.IsIncomplete(err) {
			return src, true
		}
	}
}

func printError(err error) {
	var (
		tokErr   *rbjs.TokenizeError
		parseErr *rbjs.ParseError
		fmtErr   *rbjs.FormatError
	)

	switch {
	case errors.As(err, &tokErr):
		log.Printf("tokenize error: no token matches %q", firstLine(tokErr.Remainder))
	case errors.As(err, &parseErr):
		log.Printf("parse error (%s): %s", parseErr.Kind, parseErr)
	case errors.As(err, &fmtErr):
		log.Printf("format error: %s", fmtErr.Output)
	default:
		log.Print(err)
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
