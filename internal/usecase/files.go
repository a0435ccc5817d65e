package usecase

import "io"

// FileStore is the slice of the media store the usecases need. Cleanup is
// always an explicit call after the record mutation, never an implicit hook.
type FileStore interface {
	Save(kind, originalName string, r io.Reader) (string, error)
	Remove(rel string) error
	Abs(rel string) string
}
