package storage

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeUpload(t *testing.T, filename, contentType string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	fh := form.File["image"][0]
	file, err := fh.Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })
	return file, fh
}

func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir, 5*1024*1024)
	require.NoError(t, err)

	file, fh := makeUpload(t, "photo.png", "image/png", []byte("png bytes"))

	path, err := store.SaveImage(file, fh)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "uploads/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), data)
}

func TestSaveImageRejectsNonImage(t *testing.T) {
	store, err := NewUploadStore(t.TempDir(), 5*1024*1024)
	require.NoError(t, err)

	file, fh := makeUpload(t, "notes.txt", "text/plain", []byte("hello"))

	_, err = store.SaveImage(file, fh)
	require.ErrorIs(t, err, ErrNotImage)
}

func TestSaveImageRejectsOversized(t *testing.T) {
	store, err := NewUploadStore(t.TempDir(), 16)
	require.NoError(t, err)

	file, fh := makeUpload(t, "big.png", "image/png", bytes.Repeat([]byte("x"), 64))

	_, err = store.SaveImage(file, fh)
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestGeneratedNamesAreUnique(t *testing.T) {
	store, err := NewUploadStore(t.TempDir(), 5*1024*1024)
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		file, fh := makeUpload(t, "photo.jpg", "image/jpeg", []byte("jpg"))
		path, err := store.SaveImage(file, fh)
		require.NoError(t, err)
		require.False(t, seen[path], "duplicate generated name %s", path)
		seen[path] = true
	}
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewUploadStore(dir, 5*1024*1024)
	require.NoError(t, err)

	file, fh := makeUpload(t, "photo.png", "image/png", []byte("png"))
	path, err := store.SaveImage(file, fh)
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(path)))
	assert.True(t, os.IsNotExist(err))
}
