package document

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yacobolo/cssselect/jsonx"
)

// Format is a document encoding.
type Format string

// Supported document formats.
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Load reads and decodes a selector document.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from the user's own patterns
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	doc, err := Decode(data, format)
	if err != nil {
		var located *Error
		if errors.As(err, &located) {
			located.Path = path
			return nil, located
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Decode parses document bytes in the given format.
func Decode(data []byte, format Format) (*Document, error) {
	switch format {
	case FormatYAML:
		var doc Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return &doc, nil
	case FormatJSON:
		doc, err := jsonx.Decode[Document](bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return &doc, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
