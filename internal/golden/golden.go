// Package golden manages the source/output fixture pairs used to check the
// translator end to end.
package golden

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// Locate returns the basenames of dir/rb/*.rb, sorted.
func Locate(dir string, minCount int) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "rb", "*.rb"))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, strings.TrimSuffix(filepath.Base(p), ".rb"))
	}
	sort.Strings(names)

	if len(names) < minCount {
		return nil, fmt.Errorf("expected to find at least %d golden files in %s, only found %d", minCount, dir, len(names))
	}

	return names, nil
}

// ShaStore remembers the sha256 of fixture contents that already passed
// validation, so unchanged files skip the external checks.
type ShaStore struct {
	path   string
	shas   map[string]string
	logger *log.Logger
}

func NewShaStore(path string, logger *log.Logger) (*ShaStore, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &ShaStore{
		path:   path,
		shas:   make(map[string]string),
		logger: logger,
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, &s.shas); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

func (s *ShaStore) Match(path, content string) bool {
	sha, ok := s.shas[path]
	return ok && sha == digest(content)
}

func (s *ShaStore) Update(path, content string) error {
	s.shas[path] = digest(content)
	s.logger.Printf("updated sha for %s", path)

	data, err := json.MarshalIndent(s.shas, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, append(data, '\n'), 0o644)
}

func digest(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

type SyntaxError struct {
	Tool   string
	Output string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s syntax error: %s", e.Tool, e.Output)
}

// Validator runs the reference interpreters' syntax checks.
type Validator struct {
	Ruby string
	Node string
}

func NewValidator() *Validator {
	return &Validator{
		Ruby: "ruby",
		Node: "node",
	}
}

func Available(tool string) bool {
	_, err := exec.LookPath(tool)
	return err == nil
}

func (v *Validator) ValidRuby(ctx context.Context, src string) error {
	return check(ctx, src, ".rb", v.Ruby, "-c")
}

func (v *Validator) ValidJS(ctx context.Context, src string) error {
	return check(ctx, src, ".js", v.Node, "--check")
}

func check(ctx context.Context, src, ext, tool string, args ...string) error {
	file, err := os.CreateTemp("", "golden-*"+ext)
	if err != nil {
		return err
	}
	defer os.Remove(file.Name())

	if _, err := file.WriteString(src); err != nil {
		file.Close()
		return err
	}

	if err := file.Close(); err != nil {
		return err
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, tool, append(args, file.Name())...)
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return err
		}

		return &SyntaxError{
			Tool:   tool,
			Output: strings.TrimSpace(stderr.String()),
		}
	}

	return nil
}
