package appsync

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Errors returned while resolving a configuration.
var (
	ErrFileNotFound   = errors.New("template file not found")
	ErrSchemaRequired = errors.New("at least one schema path is required")
	ErrSchemaConflict = errors.New("conflicting schema definitions")
)

// LoadTemplate reads basePath/relPath. The returned Path is displayPath when
// set, relPath otherwise. A missing or unreadable file yields ErrFileNotFound.
func LoadTemplate(fsys afero.Fs, basePath, relPath, displayPath string) (TemplateFile, error) {
	full := filepath.Join(basePath, relPath)
	data, err := afero.ReadFile(fsys, full)
	if err != nil {
		return TemplateFile{}, fmt.Errorf("%w: %s: %w", ErrFileNotFound, full, err)
	}

	path := relPath
	if displayPath != "" {
		path = displayPath
	}
	return TemplateFile{Path: path, Content: string(data)}, nil
}
