package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/msgkit/pkg/catalog"
)

const yamlCatalog = `
domain: messages
locale: ru
plural_rule: slavic
plural_forms: 3
messages:
  - id: Hello
    translation: Привет
  - id: Open
    context: menu
    translation: Открыть
  - id: Open
    context: ""
    translation: Открыть (без контекста)
  - id: "%d file"
    plural: "%d files"
    translations: ["%d файл", "%d файла", "%d файлов"]
  - id: untranslated
`

func TestYAMLDecoder(t *testing.T) {
	decoder := catalog.NewYAMLDecoder()
	c, err := decoder.Decode(context.Background(), []byte(yamlCatalog))
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, "messages", c.Domain())
	assert.Equal(t, "ru", c.Locale())
	assert.Equal(t, 3, c.PluralForms())

	set := catalog.NewTranslations(catalog.WithCatalog(c))
	assert.Equal(t, "Привет", set.Gettext("Hello"))
	assert.Equal(t, "Открыть", set.PGettext("menu", "Open"))
	assert.Equal(t, "Открыть (без контекста)", set.PGettext("", "Open"))

	// The declared slavic rule drives plural selection.
	assert.Equal(t, "%d файл", set.NGettext("%d file", "%d files", 21))
	assert.Equal(t, "%d файла", set.NGettext("%d file", "%d files", 3))
	assert.Equal(t, "%d файлов", set.NGettext("%d file", "%d files", 11))

	// Untranslated entries stay out of the catalog.
	assert.Equal(t, "untranslated", set.Gettext("untranslated"))
}

func TestJSONDecoder(t *testing.T) {
	data := []byte(`{
		"domain": "errors",
		"locale": "de",
		"messages": [
			{"id": "Not found", "translation": "Nicht gefunden"},
			{"id": "%d error", "plural": "%d errors", "translations": ["%d Fehler", "%d Fehler"]}
		]
	}`)

	decoder := catalog.NewJSONDecoder()
	c, err := decoder.Decode(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, "errors", c.Domain())
	assert.Equal(t, 2, c.Len())

	set := catalog.NewTranslations(catalog.WithCatalog(c))
	assert.Equal(t, "errors", set.Domain(), "set follows the catalog's declared domain")
	assert.Equal(t, "Nicht gefunden", set.Gettext("Not found"))
	assert.Equal(t, "%d Fehler", set.NGettext("%d error", "%d errors", 1))
}

func TestDecodeMalformedData(t *testing.T) {
	ctx := context.Background()

	_, err := catalog.NewJSONDecoder().Decode(ctx, []byte("{not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrFailedToDecodeCatalog)

	_, err = catalog.NewYAMLDecoder().Decode(ctx, []byte("\t{unbalanced"))
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrFailedToDecodeCatalog)
}

func TestDecodeInvalidStructure(t *testing.T) {
	ctx := context.Background()

	_, err := catalog.NewJSONDecoder().Decode(ctx, []byte(`{"messages":[{"translation":"orphan"}]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalogStructure)

	_, err = catalog.NewJSONDecoder().Decode(ctx, []byte(`{"plural_rule":"klingon","messages":[]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInvalidCatalogStructure)
}

func TestDecodeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := catalog.NewYAMLDecoder().Decode(ctx, []byte(yamlCatalog))
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrDecodingCancelled)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewDecoderForFile(t *testing.T) {
	assert.IsType(t, &catalog.JSONDecoder{}, catalog.NewDecoderForFile("messages.json"))
	assert.IsType(t, &catalog.YAMLDecoder{}, catalog.NewDecoderForFile("messages.yaml"))
	assert.IsType(t, &catalog.YAMLDecoder{}, catalog.NewDecoderForFile("messages.YML"))
	assert.Nil(t, catalog.NewDecoderForFile("messages.mo"))
	assert.Nil(t, catalog.NewDecoderForFile("noextension"))
}

func TestSupportsFileExtension(t *testing.T) {
	json := catalog.NewJSONDecoder()
	assert.True(t, json.SupportsFileExtension("json"))
	assert.True(t, json.SupportsFileExtension(".JSON"))
	assert.False(t, json.SupportsFileExtension("yaml"))

	yaml := catalog.NewYAMLDecoder()
	assert.True(t, yaml.SupportsFileExtension("yml"))
	assert.True(t, yaml.SupportsFileExtension(".yaml"))
	assert.False(t, yaml.SupportsFileExtension("json"))
}
