package catalog

import (
	"context"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLDecoder implements the Decoder interface for YAML catalogs.
type YAMLDecoder struct{}

// NewYAMLDecoder creates a new YAMLDecoder instance.
func NewYAMLDecoder() *YAMLDecoder {
	return &YAMLDecoder{}
}

// Decode parses a YAML catalog document.
func (d *YAMLDecoder) Decode(ctx context.Context, data []byte) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrDecodingCancelled, err)
	}

	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrFailedToDecodeCatalog, err)
	}

	return buildCatalog(&doc)
}

// SupportsFileExtension checks if the decoder supports the given file extension.
func (d *YAMLDecoder) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "yaml") || strings.EqualFold(ext, "yml")
}
