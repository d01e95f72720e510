package files

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogpanel/blogpanel/pkg/examples"
	"github.com/blogpanel/blogpanel/pkg/models"
)

func TestInitProjectStructure(t *testing.T) {
	t.Chdir(t.TempDir())

	require.NoError(t, InitProjectStructure())

	settings, err := ReadSettings(SettingsPath())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(ProjectDir, CatalogFile), settings.Catalog)
	assert.Equal(t, filepath.Join(ProjectDir, LogsDir), settings.Logging.Dir)

	catalog, err := LoadCatalog(settings.Catalog)
	require.NoError(t, err)
	assert.Equal(t, examples.Catalog(), catalog)

	// A second run keeps user edits
	require.NoError(t, os.WriteFile(SettingsPath(), []byte("ui:\n  panel_width: 60\n"), 0644))
	require.NoError(t, InitProjectStructure())
	settings, err = ReadSettings(SettingsPath())
	require.NoError(t, err)
	assert.Equal(t, 60, settings.UI.PanelWidth)
}

func TestReadSettings(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file returns defaults", func(t *testing.T) {
		settings, err := ReadSettings(filepath.Join(dir, "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, models.DefaultSettings(), settings)
	})

	t.Run("partial file keeps other defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ui:\n  start_open: true\nlogging:\n  level: debug\n"), 0644))

		settings, err := ReadSettings(path)
		require.NoError(t, err)
		assert.True(t, settings.UI.StartOpen)
		assert.Equal(t, "debug", settings.Logging.Level)
		assert.Equal(t, "json", settings.Logging.Format)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ui: [unclosed"), 0644))

		_, err := ReadSettings(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse settings")
	})
}

func TestReadArticle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\n\nBody one.\n\nBody two.\n"), 0644))

	article, err := ReadArticle(path)
	require.NoError(t, err)
	assert.Equal(t, "Title", article.Title)
	assert.Equal(t, []string{"Body one.", "Body two."}, article.Paragraphs)

	_, err = ReadArticle(filepath.Join(dir, "missing.md"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestArticleWatcher(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.md")
	other := filepath.Join(dir, "other.md")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0644))

	w, err := NewArticleWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0644))
	select {
	case <-w.Changes():
		t.Fatal("change reported for a different file")
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.WriteFile(path, []byte("second"), 0644))
	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported after write")
	}

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestArticleWatcher_BurstYieldsOneChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.md")
	require.NoError(t, os.WriteFile(path, []byte("first"), 0644))

	w, err := NewArticleWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, w.Path())

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("draft %d", i)), 0644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-w.Changes():
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported after writes")
	}

	select {
	case <-w.Changes():
		t.Fatal("a burst of writes reported more than one change")
	case <-time.After(3 * DefaultSettleDelay):
	}
}
