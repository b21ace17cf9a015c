package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a *multipart.FileHeader the way an upload handler would
// receive one.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, fh, err := req.FormFile("image")
	require.NoError(t, err)
	return fh
}

func TestSaveAcceptsImage(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	content := []byte("fake png bytes")
	fh := fileHeader(t, "photo.PNG", "image/png", content)

	name, err := store.Save(fh, "image", 2*1024*1024)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "image-"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	stored, err := os.ReadFile(filepath.Join(store.Root(), name))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	a, err := store.Save(fileHeader(t, "same.jpg", "image/jpeg", []byte("a")), "image", 1024)
	require.NoError(t, err)
	b, err := store.Save(fileHeader(t, "same.jpg", "image/jpeg", []byte("b")), "image", 1024)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	for _, filename := range []string{"report.pdf", "script.sh", "noext", "archive.png.zip"} {
		_, err := store.Save(fileHeader(t, filename, "image/png", []byte("x")), "image", 1024)
		assert.ErrorIs(t, err, ErrFileType, "filename %q", filename)
	}
}

func TestSaveRejectsDisallowedContentType(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Save(fileHeader(t, "photo.png", "application/octet-stream", []byte("x")), "image", 1024)
	assert.ErrorIs(t, err, ErrFileType)
}

func TestSaveRejectsOversizeFile(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	big := bytes.Repeat([]byte("x"), 2048)
	_, err = store.Save(fileHeader(t, "photo.jpeg", "image/jpeg", big), "image", 1024)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	// Nothing should be left behind in the root.
	entries, err := os.ReadDir(store.Root())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemove(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	name, err := store.Save(fileHeader(t, "photo.webp", "image/webp", []byte("x")), "image", 1024)
	require.NoError(t, err)

	require.NoError(t, store.Remove(name))
	_, statErr := os.Stat(filepath.Join(store.Root(), name))
	assert.True(t, os.IsNotExist(statErr))

	// Removing again, or removing the empty name, is not an error.
	assert.NoError(t, store.Remove(name))
	assert.NoError(t, store.Remove(""))
}

func TestRemoveRejectsPathTraversal(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Remove("../escape.png"))
	assert.Error(t, store.Remove("nested/escape.png"))
}

func TestIsRejection(t *testing.T) {
	assert.True(t, IsRejection(ErrFileType))
	assert.True(t, IsRejection(ErrFileTooLarge))
	assert.False(t, IsRejection(os.ErrPermission))
	assert.False(t, IsRejection(nil))
}
