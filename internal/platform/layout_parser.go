package platform

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ytget/splitdesk/internal/model"
)

// ErrInvalidDocument is returned when a layout document cannot be read or decoded
var ErrInvalidDocument = errors.New("invalid layout document")

// Supported layout file extensions
const (
	ExtJSON = ".json"
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
)

// ParseLayoutFile reads and decodes a layout document. Files ending in .yaml
// or .yml are decoded as YAML, everything else as JSON.
func ParseLayoutFile(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrInvalidDocument, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ExtYAML, ExtYML:
		return ParseLayoutYAML(data)
	default:
		return ParseLayoutJSON(data)
	}
}

// ParseLayoutString decodes a JSON layout document held in a string
func ParseLayoutString(text string) (*model.Document, error) {
	return ParseLayoutJSON([]byte(text))
}

// ParseLayoutJSON decodes a JSON layout document
func ParseLayoutJSON(data []byte) (*model.Document, error) {
	var doc model.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON: %w", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// ParseLayoutYAML decodes a YAML layout document
func ParseLayoutYAML(data []byte) (*model.Document, error) {
	var doc model.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse YAML: %w", ErrInvalidDocument, err)
	}
	return &doc, nil
}
