package rbjs

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shellFormatter(t *testing.T, script string) *Formatter {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	// sh -c passes the appended file path as $0
	return &Formatter{
		Command: "sh",
		Args:    []string{"-c", script},
	}
}

func TestFormatter(t *testing.T) {
	f := shellFormatter(t, `printf 'function f() {\n  return 1;\n}\n\n' > "$0"`)

	got, err := f.Format(context.Background(), "function f() {\nreturn 1;\n}\n")
	require.NoError(t, err)
	assert.Equal(t, "function f() {\n  return 1;\n}", got)
}

func TestFormatterTrimsUnchangedOutput(t *testing.T) {
	f := shellFormatter(t, `true`)

	got, err := f.Format(context.Background(), "\n  x = 1;\n\n")
	require.NoError(t, err)
	assert.Equal(t, "x = 1;", got)
}

func TestFormatterError(t *testing.T) {
	f := shellFormatter(t, `echo "SyntaxError: unexpected token" >&2; exit 2`)

	_, err := f.Format(context.Background(), "function (")

	var ferr *FormatError
	if assert.ErrorAs(t, err, &ferr) {
		assert.Equal(t, "SyntaxError: unexpected token", ferr.Output)
		assert.Contains(t, ferr.Error(), "SyntaxError")

		var exitErr *exec.ExitError
		assert.ErrorAs(t, err, &exitErr)
	}
}

func TestFormatterMissingCommand(t *testing.T) {
	f := &Formatter{Command: "rbjs-formatter-that-does-not-exist"}

	_, err := f.Format(context.Background(), "x;")

	var ferr *FormatError
	assert.ErrorAs(t, err, &ferr)
}

func TestFormatterDefaults(t *testing.T) {
	f := NewFormatter()

	assert.Equal(t, "npx", f.Command)
	assert.Equal(t, []string{"prettier", "--write"}, f.Args)
}
