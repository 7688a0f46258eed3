// Package filesource reads the initial task list from a local seed file.
package filesource

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/taskwire"
)

// Source implements domain.TaskSource for .json, .yaml and .yml files.
// The file is only read.
type Source struct {
	Path string
}

// Ensure Source implements domain.TaskSource.
var _ domain.TaskSource = (*Source)(nil)

// New creates a Source for path.
func New(path string) *Source {
	return &Source{Path: path}
}

// Supports reports whether path has an extension Source can read.
func Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// Fetch reads the seed file and decodes its first limit elements.
func (s *Source) Fetch(ctx context.Context, limit int) (*domain.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var decode func([]byte, int) (*domain.FetchResult, error)
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".json":
		decode = taskwire.DecodeJSON
	case ".yaml", ".yml":
		decode = taskwire.DecodeYAML
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, s.Path)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	res, err := decode(data, limit)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return res, nil
}
