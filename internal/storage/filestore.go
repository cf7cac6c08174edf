// Package storage persists binary assets (logos, avatars) under a
// public-read upload prefix and hands back durable URLs. The caller is
// responsible for persisting the returned URL onto an entity field; the URL
// is used verbatim afterwards and never re-derived.
package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"planner/internal/errors"
	"planner/internal/logging"

	"github.com/google/uuid"
)

// UploadPrefix is the fixed path segment all uploads live under.
const UploadPrefix = "uploads"

// FileStore writes uploads into a local public-read directory.
type FileStore struct {
	dir     string
	baseURL string
}

// NewFileStore creates a file store rooted at dir. baseURL is the public
// prefix the stored path is joined onto.
func NewFileStore(dir, baseURL string) *FileStore {
	return &FileStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// UploadFile stores the blob under a randomized filename preserving the
// original extension and returns its public URL.
func (s *FileStore) UploadFile(originalName string, r io.Reader) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	dir := filepath.Join(s.dir, UploadPrefix)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.NewUploadError("create upload directory", err)
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", errors.NewUploadError("create upload file", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", errors.NewUploadError("write upload file", err)
	}

	logging.Debugf("stored upload %s as %s\n", originalName, name)
	return s.baseURL + "/" + UploadPrefix + "/" + name, nil
}
