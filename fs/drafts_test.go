package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gold9-app/autopress"
	"github.com/gold9-app/autopress/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDraft(t *testing.T, dir, name string, files map[string][]byte) {
	t.Helper()
	folder := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(folder, 0755))
	for filename, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(folder, filename), data, 0644))
	}
}

func TestStore_List(t *testing.T) {
	t.Parallel()

	t.Run("creates the drafts directory when missing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "publish")
		store := fs.NewStore(dir)

		infos, err := store.List(context.Background())
		require.NoError(t, err)

		assert.Empty(t, infos)
		assert.DirExists(t, dir)
	})

	t.Run("reports validity per folder, sorted by name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeDraft(t, dir, "계란 상식", map[string][]byte{
			"post.html": []byte("<p>본문</p>"),
			"egg.jpg":   {0xFF, 0xD8},
		})
		writeDraft(t, dir, "a-missing-image", map[string][]byte{
			"post.html": []byte("<p>본문</p>"),
		})
		writeDraft(t, dir, "c-two-htmls", map[string][]byte{
			"one.html": []byte("x"),
			"two.html": []byte("y"),
			"img.png":  {1},
		})

		store := fs.NewStore(dir)

		infos, err := store.List(context.Background())
		require.NoError(t, err)
		require.Len(t, infos, 3)

		// Hangul folder names sort after ASCII ones.
		assert.Equal(t, "a-missing-image", infos[0].Name)
		assert.False(t, infos[0].Valid)
		assert.Contains(t, infos[0].Errors, "no image file")

		assert.Equal(t, "c-two-htmls", infos[1].Name)
		assert.False(t, infos[1].Valid)
		assert.Contains(t, infos[1].Errors, "2 HTML files (need exactly 1)")

		assert.Equal(t, "계란 상식", infos[2].Name)
		assert.True(t, infos[2].Valid)
		assert.Equal(t, "계란", infos[2].FocusKeyword)
	})

	t.Run("ignores loose files in the drafts directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "stray.html"), []byte("x"), 0644))

		store := fs.NewStore(dir)

		infos, err := store.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, infos)
	})
}

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads a complete draft", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeDraft(t, dir, "계란 상식", map[string][]byte{
			"post.html": []byte("<p>계란</p>"),
			"egg.jpg":   {0xFF, 0xD8},
		})

		store := fs.NewStore(dir)

		draft, err := store.Load("계란 상식")
		require.NoError(t, err)

		assert.Equal(t, "계란 상식", draft.Title, "folder name becomes the title")
		assert.Equal(t, "<p>계란</p>", draft.HTML)
		assert.Equal(t, "egg.jpg", draft.ImageName)
		assert.Equal(t, []byte{0xFF, 0xD8}, draft.ImageData)
		assert.Empty(t, draft.Meta.FocusKeyword)
	})

	t.Run("missing folder is not found", func(t *testing.T) {
		t.Parallel()

		store := fs.NewStore(t.TempDir())

		_, err := store.Load("nope")
		require.Error(t, err)
		assert.Equal(t, autopress.ENOTFOUND, autopress.ErrorCode(err))
	})

	t.Run("invalid folder reports every count error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeDraft(t, dir, "empty", map[string][]byte{"notes.txt": []byte("x")})

		store := fs.NewStore(dir)

		_, err := store.Load("empty")
		require.Error(t, err)

		assert.Equal(t, autopress.EINVALID, autopress.ErrorCode(err))
		assert.Contains(t, autopress.ErrorMessage(err), "no HTML file")
		assert.Contains(t, autopress.ErrorMessage(err), "no image file")
	})

	t.Run("rejects HTML that is not valid UTF-8", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeDraft(t, dir, "bad-encoding", map[string][]byte{
			"post.html": {0xEA, 0xB3, 0x84, 0xFF, 0xFE}, // truncated hangul + invalid bytes
			"egg.jpg":   {1},
		})

		store := fs.NewStore(dir)

		_, err := store.Load("bad-encoding")
		require.Error(t, err)
		assert.Equal(t, autopress.EINVALID, autopress.ErrorCode(err))
		assert.Contains(t, autopress.ErrorMessage(err), "UTF-8")
	})

	t.Run("reads meta.json overrides", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeDraft(t, dir, "with-meta", map[string][]byte{
			"post.html": []byte("<p>본문</p>"),
			"egg.jpg":   {1},
			"meta.json": []byte(`{"focus_keyword":"달걀","tags":["계란","요리"]}`),
		})

		store := fs.NewStore(dir)

		draft, err := store.Load("with-meta")
		require.NoError(t, err)

		assert.Equal(t, "달걀", draft.Meta.FocusKeyword)
		assert.Equal(t, []string{"계란", "요리"}, draft.Meta.Tags)
	})

	t.Run("malformed meta.json is invalid", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeDraft(t, dir, "bad-meta", map[string][]byte{
			"post.html": []byte("<p>본문</p>"),
			"egg.jpg":   {1},
			"meta.json": []byte("{not json"),
		})

		store := fs.NewStore(dir)

		_, err := store.Load("bad-meta")
		require.Error(t, err)
		assert.Equal(t, autopress.EINVALID, autopress.ErrorCode(err))
	})
}

func TestStore_SaveHTML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := fs.NewStore(dir)

	require.NoError(t, store.SaveHTML("새 주제", "<p>생성된 본문</p>"))

	data, err := os.ReadFile(filepath.Join(dir, "새 주제", "새 주제.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>생성된 본문</p>", string(data))

	// The saved folder lists as invalid until an image is added.
	infos, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.False(t, infos[0].Valid)
	assert.Contains(t, infos[0].Errors, "no image file")
}
