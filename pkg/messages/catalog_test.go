package messages_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/messages"
)

func newTestCatalog(t *testing.T, opts ...messages.Option) *messages.Catalog {
	t.Helper()
	c, err := messages.NewCatalog(context.Background(), messages.NewDirectoryAdapter("testdata"), opts...)
	require.NoError(t, err)
	return c
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	t.Run("lists languages", func(t *testing.T) {
		assert.Equal(t, []string{"de", "en", "fr"}, newTestCatalog(t).Languages())
	})

	t.Run("matches regional variants", func(t *testing.T) {
		v, ok := newTestCatalog(t).Table("de-AT").Lookup("notempty")
		assert.True(t, ok)
		assert.Equal(t, "Bitte füllen Sie dieses Feld aus.", v)
	})

	t.Run("falls back to the default language per key", func(t *testing.T) {
		v, ok := newTestCatalog(t).Table("de").Lookup("schema.missing")
		assert.True(t, ok)
		assert.Equal(t, "Required fields are missing: %{fields}.", v)
	})

	t.Run("unknown languages use the default", func(t *testing.T) {
		c := newTestCatalog(t)
		for _, lang := range []string{"ja", "", "not a tag"} {
			v, _ := c.Table(lang).Lookup("notempty")
			assert.Equal(t, "Please fill in this field.", v, lang)
		}
	})

	t.Run("custom default language", func(t *testing.T) {
		v, _ := newTestCatalog(t, messages.WithDefaultLanguage("fr")).Table("ja").Lookup("notempty")
		assert.Equal(t, "Veuillez remplir ce champ.", v)
	})

	t.Run("bind uses the context language", func(t *testing.T) {
		c := newTestCatalog(t)
		ctx := c.Bind(messages.WithLanguage(context.Background(), "de"))
		v, _ := messages.Lookup(ctx, "schema.error")
		assert.Equal(t, "Bitte korrigieren Sie die markierten Fehler.", v)

		ctx = c.Bind(context.Background())
		v, _ = messages.Lookup(ctx, "schema.error")
		assert.Equal(t, "Please correct the errors below.", v)
	})

	t.Run("logs missing keys when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		c := newTestCatalog(t, messages.WithLogger(logger), messages.WithMissingLogging(true))

		_, ok := c.Table("fr").Lookup("min")
		assert.True(t, ok)
		assert.Contains(t, buf.String(), "Message not found")
		assert.Contains(t, buf.String(), "lang=fr")
	})

	t.Run("empty catalog", func(t *testing.T) {
		c, err := messages.NewCatalog(context.Background(), &messages.MapAdapter{})
		require.NoError(t, err)
		_, ok := c.Table("en").Lookup("min")
		assert.False(t, ok)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		ctx := context.Background()

		_, err := messages.NewCatalog(ctx, nil)
		require.ErrorIs(t, err, messages.ErrNilAdapter)

		_, err = messages.NewCatalog(ctx, &messages.MapAdapter{Data: map[string]messages.Nested{"": {}}})
		require.ErrorIs(t, err, messages.ErrEmptyLanguage)

		_, err = messages.NewCatalog(ctx, &messages.MapAdapter{Data: map[string]messages.Nested{"not a tag!": {}}})
		require.ErrorIs(t, err, messages.ErrInvalidLanguage)

		_, err = messages.NewCatalog(ctx, &messages.MapAdapter{}, messages.WithDefaultLanguage("???"))
		require.ErrorIs(t, err, messages.ErrInvalidLanguage)
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("reads the environment", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "messages.yaml"),
			[]byte("en:\n  min: EN\nuk:\n  min: UK\n"), 0o600))

		t.Setenv("MESSAGES_DIR", dir)
		t.Setenv("MESSAGES_DEFAULT_LANGUAGE", "uk")

		c, err := messages.LoadCatalog(context.Background())
		require.NoError(t, err)
		v, _ := c.Table("ja").Lookup("min")
		assert.Equal(t, "UK", v)
	})

	t.Run("requires a directory", func(t *testing.T) {
		t.Setenv("MESSAGES_DIR", "")
		_, err := messages.LoadCatalog(context.Background())
		require.ErrorIs(t, err, messages.ErrFailedToLoadConfig)
	})

	t.Run("from an explicit config", func(t *testing.T) {
		c, err := messages.NewCatalogFromConfig(context.Background(), messages.Config{
			Dir:             "testdata",
			DefaultLanguage: "en",
		})
		require.NoError(t, err)
		assert.Len(t, c.Languages(), 3)
	})
}
