package uploads_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stayvie/floorplan/foundation/uploads"
	"github.com/stretchr/testify/require"
)

// pngHeader is the 8-byte PNG signature, enough for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func fileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	store := uploads.New(dir, "http://localhost:3000/")

	fh := fileHeader(t, "image", "plan.png", pngHeader)

	url, err := store.Save(fh, "osix-floor-2")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "http://localhost:3000/uploads/osix-floor-2-"), "got %q", url)
	require.True(t, strings.HasSuffix(url, ".png"), "got %q", url)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSaveRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	store := uploads.New(dir, "http://localhost:3000")

	fh := fileHeader(t, "image", "notes.txt", []byte("just some text"))

	_, err := store.Save(fh, "osix-floor-2")
	require.ErrorIs(t, err, uploads.ErrNotImage)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	store := uploads.New(dir, "http://localhost:3000")

	fh := fileHeader(t, "image", "plan.png", pngHeader)
	url, err := store.Save(fh, "osix-floor-1")
	require.NoError(t, err)

	store.Remove(url)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRemoveIgnoresForeignURLs(t *testing.T) {
	dir := t.TempDir()
	store := uploads.New(dir, "http://localhost:3000")

	marker := filepath.Join(dir, "keep.png")
	require.NoError(t, os.WriteFile(marker, pngHeader, 0o644))

	store.Remove("")
	store.Remove("https://cdn.example.com/uploads/keep.png")
	store.Remove("http://localhost:3000/other/keep.png")

	_, err := os.Stat(marker)
	require.NoError(t, err)
}
