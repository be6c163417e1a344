package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/msgkit/pkg/plural"
)

// Decoder deserializes compiled catalog data into a Catalog. Implementations
// must surface malformed input as an error joined with
// ErrFailedToDecodeCatalog; they never swallow a parse failure.
type Decoder interface {
	// Decode parses the given catalog data and returns the catalog it
	// describes together with its metadata (domain, locale, plural rule).
	Decode(ctx context.Context, data []byte) (*Catalog, error)

	// SupportsFileExtension checks if the decoder handles a given file
	// extension. The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewDecoderForFile returns a decoder based on the file extension, or nil
// when the extension is not supported.
func NewDecoderForFile(filename string) Decoder {
	ext := filename
	if idx := strings.LastIndex(filename, "."); idx != -1 {
		ext = filename[idx+1:]
	}

	switch strings.ToLower(ext) {
	case "json":
		return NewJSONDecoder()
	case "yaml", "yml":
		return NewYAMLDecoder()
	default:
		return nil
	}
}

// catalogDocument is the serialized shape of a compiled catalog.
type catalogDocument struct {
	Domain      string            `json:"domain" yaml:"domain"`
	Locale      string            `json:"locale" yaml:"locale"`
	PluralRule  string            `json:"plural_rule" yaml:"plural_rule"`
	PluralForms int               `json:"plural_forms" yaml:"plural_forms"`
	Messages    []messageDocument `json:"messages" yaml:"messages"`
}

// messageDocument is one catalog entry. Context is a pointer on purpose: a
// document without the field and one carrying an explicit empty context
// address different key spaces.
type messageDocument struct {
	ID           string   `json:"id" yaml:"id"`
	Context      *string  `json:"context,omitempty" yaml:"context,omitempty"`
	Plural       string   `json:"plural,omitempty" yaml:"plural,omitempty"`
	Translation  string   `json:"translation,omitempty" yaml:"translation,omitempty"`
	Translations []string `json:"translations,omitempty" yaml:"translations,omitempty"`
}

// buildCatalog assembles a Catalog from a decoded document.
func buildCatalog(doc *catalogDocument) (*Catalog, error) {
	c := NewCatalog(doc.Domain, doc.Locale)

	if doc.PluralRule != "" {
		selector, nplurals, ok := plural.ByName(doc.PluralRule)
		if !ok {
			return nil, errors.Join(ErrInvalidCatalogStructure,
				fmt.Errorf("unknown plural rule %q", doc.PluralRule))
		}
		c.SetPluralRule(selector, nplurals)
	}
	if doc.PluralForms > 0 {
		c.SetPluralRule(nil, doc.PluralForms)
	}

	for i, msg := range doc.Messages {
		if msg.ID == "" {
			return nil, errors.Join(ErrInvalidCatalogStructure,
				fmt.Errorf("message %d has no id", i))
		}

		switch {
		case len(msg.Translations) > 0:
			if msg.Context != nil {
				c.SetPluralWithContext(*msg.Context, msg.ID, msg.Translations)
			} else {
				c.SetPlural(msg.ID, msg.Translations)
			}
		case msg.Translation != "":
			if msg.Context != nil {
				c.SetWithContext(*msg.Context, msg.ID, msg.Translation)
			} else {
				c.Set(msg.ID, msg.Translation)
			}
		default:
			// Untranslated entry, kept out of the catalog so lookups fall
			// back to the source string.
		}
	}

	return c, nil
}

// JSONDecoder implements the Decoder interface for JSON catalogs.
type JSONDecoder struct{}

// NewJSONDecoder creates a new JSONDecoder instance.
func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{}
}

// Decode parses a JSON catalog document.
func (d *JSONDecoder) Decode(ctx context.Context, data []byte) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrDecodingCancelled, err)
	}

	var doc catalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Join(ErrFailedToDecodeCatalog, err)
	}

	return buildCatalog(&doc)
}

// SupportsFileExtension checks if the decoder supports the given file extension.
func (d *JSONDecoder) SupportsFileExtension(ext string) bool {
	ext = strings.TrimPrefix(ext, ".")
	return strings.EqualFold(ext, "json")
}
