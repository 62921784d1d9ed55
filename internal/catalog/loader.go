// Package catalog loads question template records from a template directory.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"

	"github.com/jonathan/assessment-agent/internal/schemas"
	"github.com/jonathan/assessment-agent/internal/types"
)

// Loader reads per-template JSON files. A malformed record is logged and
// excluded; only an unreadable directory is fatal.
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// LoadDir loads every *.json template record under dir, sorted by filename
// so catalog order is stable across runs.
func (l *Loader) LoadDir(dir string) ([]types.QuestionTemplate, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list template directory %s: %w", dir, err)
	}
	if len(paths) == 0 {
		if _, statErr := os.Stat(dir); statErr != nil {
			return nil, fmt.Errorf("template directory %s: %w", dir, statErr)
		}
	}
	sort.Strings(paths)

	templates := make([]types.QuestionTemplate, 0, len(paths))
	for _, path := range paths {
		template, err := l.loadFile(path)
		if err != nil {
			l.log.Warn("skipping malformed template record",
				zap.String("path", path),
				zap.Error(err),
			)
			continue
		}
		templates = append(templates, *template)
	}

	l.log.Info("loaded question templates",
		zap.String("dir", dir),
		zap.Int("count", len(templates)),
	)
	return templates, nil
}

// loadFile reads and validates one template record: the JSON document passes
// the schema gate, then the decoded struct passes field validation.
func (l *Loader) loadFile(path string) (*types.QuestionTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	if err := schemas.ValidateQuestionTemplate(data); err != nil {
		return nil, err
	}

	var template types.QuestionTemplate
	if err := json.Unmarshal(data, &template); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	if err := template.Validate(); err != nil {
		return nil, fmt.Errorf("template failed field validation: %w", err)
	}

	return &template, nil
}
