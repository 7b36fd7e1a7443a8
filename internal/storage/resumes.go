package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// ErrNotFound is returned when a stored file does not exist.
var ErrNotFound = errors.New("file not found")

var allowedExtensions = map[string]bool{"pdf": true, "doc": true, "docx": true}

// Store writes and serves resume files under a single managed directory.
// Names are generated (applicant id + timestamp + sanitized original name),
// which makes collisions practically unlikely; there is no further collision
// handling.
type Store struct {
	root string
}

// NewStore creates the directory if needed.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", root, err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string { return s.root }

// AllowedExt reports whether the filename carries an accepted resume
// extension (pdf, doc, docx — any case).
func AllowedExt(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return allowedExtensions[ext]
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename strips path components and reduces the name to a safe
// character set, in the spirit of werkzeug's secure_filename.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	return name
}

// GeneratedName builds the stored filename for an upload.
func GeneratedName(applicantID uint, t time.Time, original string) string {
	return fmt.Sprintf("%d_%d_%s", applicantID, t.Unix(), SanitizeFilename(original))
}

// Save writes src under the managed directory. The write is synchronous and
// blocks until complete.
func (s *Store) Save(name string, src io.Reader) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *Store) Remove(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Open returns the stored file for reading. Missing files map to ErrNotFound.
func (s *Store) Open(name string) (*os.File, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return f, err
}

// resolve rejects names that would escape the managed directory.
func (s *Store) resolve(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrNotFound
	}
	return filepath.Join(s.root, name), nil
}
