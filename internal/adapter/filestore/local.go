package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// videoDir is the sub-directory of the storage root that holds uploads.
const videoDir = "videos"

// Local implements port.FileStore on the local file system. Files are
// written below root and referenced by their slash-separated path relative
// to it, e.g. "videos/<uuid>.mp4".
type Local struct {
	root string
}

// NewLocal returns a store rooted at dir. The directory is created on first
// use.
func NewLocal(dir string) *Local {
	return &Local{root: dir}
}

// Save copies r into a new file named after a random UUID. Only the
// extension of filename is kept.
func (l *Local) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Join(l.root, videoDir), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	ref := path.Join(videoDir, uuid.NewString()+cleanExt(filename))
	dst := filepath.Join(l.root, filepath.FromSlash(ref))

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload: %w", err)
	}
	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err = f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return ref, nil
}

// Delete removes the file referenced by ref. References outside the
// storage root are refused.
func (l *Local) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rel := filepath.FromSlash(ref)
	if !filepath.IsLocal(rel) {
		return fmt.Errorf("invalid file reference %q", ref)
	}
	if err := os.Remove(filepath.Join(l.root, rel)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove upload: %w", err)
	}
	return nil
}

// cleanExt returns the lower-cased extension of a client supplied file name,
// or "" when it contains anything but letters and digits.
func cleanExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, c := range ext[1:] {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return ""
		}
	}
	return ext
}
