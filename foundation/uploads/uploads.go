// Package uploads manages the on-disk storage of uploaded floor plan images
// and the public URLs they are served under.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotImage indicates the uploaded file content is not an image.
var ErrNotImage = errors.New("file is not an image")

// Store knows how to save, serve and remove uploaded image files.
type Store struct {
	dir       string
	publicURL string
}

// New constructs a Store for the specified directory. The publicURL is the
// base URL the service is reachable under, without a trailing slash.
func New(dir string, publicURL string) *Store {
	return &Store{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// EnsureDir creates the upload directory if it does not exist. It must be
// called before the server accepts traffic.
func (s *Store) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating upload directory %q: %w", s.dir, err)
	}

	return nil
}

// Dir returns the directory files are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save sniffs the uploaded file content, rejects anything that is not an
// image, and writes it to disk under a generated collision-free name. The
// prefix should identify the owning outlet and floor. On success the public
// URL of the stored file is returned.
func (s *Store) Save(fh *multipart.FileHeader, prefix string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	sniff := make([]byte, 512)
	n, err := io.ReadFull(src, sniff)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading upload: %w", err)
	}

	if !strings.HasPrefix(http.DetectContentType(sniff[:n]), "image/") {
		return "", ErrNotImage
	}

	name := fileName(prefix, fh.Filename)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer dst.Close()

	if _, err := dst.Write(sniff[:n]); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return s.publicURL + "/uploads/" + name, nil
}

// Remove deletes the file backing the specified image URL. URLs that do not
// point at this store's upload path are left alone. Removal is best effort
// and never reports a failure.
func (s *Store) Remove(imageURL string) {
	prefix := s.publicURL + "/uploads/"
	if imageURL == "" || !strings.HasPrefix(imageURL, prefix) {
		return
	}

	// Base strips any path separators a hostile URL might carry.
	name := filepath.Base(strings.TrimPrefix(imageURL, prefix))

	_ = os.Remove(filepath.Join(s.dir, name))
}

// fileName builds a name that embeds the owning identifiers and a timestamp
// so concurrent uploads for the same floor cannot collide.
func fileName(prefix string, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	if ext == "" {
		ext = ".png"
	}

	return fmt.Sprintf("%s-%d%s", prefix, time.Now().UnixMilli(), ext)
}
