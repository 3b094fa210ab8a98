package port

import (
	"context"
	"io"
)

// FileStore persists uploaded binary assets.
type FileStore interface {
	// Save writes the content of r under a fresh name derived from filename
	// and returns the reference to store on the owning record.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	// Delete removes the file behind a reference returned by Save. Deleting
	// a file that is already gone is not an error.
	Delete(ctx context.Context, ref string) error
}
