package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/policyscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("embedded default set", func(t *testing.T) {
		t.Parallel()

		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.NotEmpty(t, cfg.OverviewURL)
		assert.NotEmpty(t, cfg.Targets)

		set, err := cfg.TargetSet()
		require.NoError(t, err)
		assert.Equal(t, len(cfg.Targets), set.Len())

		spam, err := set.Get("Spam")
		require.NoError(t, err)
		assert.Contains(t, spam.URL, "/spam")
	})

	t.Run("custom file replaces the default set", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "targets.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
overview_url: https://example.com/
targets:
  - name: One
    url: https://example.com/one
  - name: Two
    url: https://example.com/two
`), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		set, err := cfg.TargetSet()
		require.NoError(t, err)
		assert.Equal(t, []string{"One", "Two"}, set.Names())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Equal(t, policyscan.EINVALID, policyscan.ErrorCode(err))
	})

	t.Run("unparseable file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "targets.yaml")
		require.NoError(t, os.WriteFile(path, []byte("targets: [not closed"), 0644))

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, policyscan.EINVALID, policyscan.ErrorCode(err))
	})

	t.Run("file without targets", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "targets.yaml")
		require.NoError(t, os.WriteFile(path, []byte("overview_url: https://example.com/\n"), 0644))

		_, err := LoadConfig(path)
		require.Error(t, err)
		assert.Equal(t, policyscan.EINVALID, policyscan.ErrorCode(err))
	})
}
