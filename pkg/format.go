package rbjs

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
)

// Formatter pretty-prints generated code with an external tool that rewrites
// a file in place. The file path is appended to Args.
type Formatter struct {
	Command string
	Args    []string
}

func NewFormatter() *Formatter {
	return &Formatter{
		Command: "npx",
		Args:    []string{"prettier", "--write"},
	}
}

func (f *Formatter) Format(ctx context.Context, js string) (string, error) {
	file, err := os.CreateTemp("", "rbjs-*.js")
	if err != nil {
		return "", err
	}
	defer os.Remove(file.Name())

	if _, err := file.WriteString(js); err != nil {
		file.Close()
		return "", err
	}

	if err := file.Close(); err != nil {
		return "", err
	}

	args := append(append([]string{}, f.Args...), file.Name())
	cmd := exec.CommandContext(ctx, f.Command, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &FormatError{
			Output: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	formatted, err := os.ReadFile(file.Name())
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(formatted)), nil
}
