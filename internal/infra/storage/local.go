// Package storage persists uploaded files on local disk under a configured
// media root. Cleanup is explicit: the mutating usecase removes files after
// the corresponding record mutation succeeds.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrap(err, "create media root")
	}
	return &LocalStore{root: root}, nil
}

// Save writes the stream under <kind>/<year>/<month>/<uuid><ext> and returns
// the relative path used to address the file later.
func (s *LocalStore) Save(kind, originalName string, r io.Reader) (string, error) {
	now := time.Now()
	ext := strings.ToLower(filepath.Ext(originalName))
	rel := path.Join(kind, fmt.Sprintf("%04d/%02d", now.Year(), now.Month()), uuid.NewString()+ext)

	abs := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", errors.Wrap(err, "create media dir")
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", errors.Wrap(err, "create media file")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(abs)
		return "", errors.Wrap(err, "write media file")
	}
	return rel, nil
}

// Open returns the file for streaming; the caller closes it.
func (s *LocalStore) Open(rel string) (*os.File, error) {
	f, err := os.Open(s.Abs(rel))
	if err != nil {
		return nil, errors.Wrap(err, "open media file")
	}
	return f, nil
}

// Remove deletes a stored file. A missing file is not an error: the record
// is already gone and cleanup is best-effort.
func (s *LocalStore) Remove(rel string) error {
	err := os.Remove(s.Abs(rel))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove media file")
	}
	return nil
}

func (s *LocalStore) Abs(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}
