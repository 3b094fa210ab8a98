package filestore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_Save(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir)

	ref, err := store.Save(context.Background(), "My Clip.MP4", strings.NewReader("frames"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "videos/"))
	assert.True(t, strings.HasSuffix(ref, ".mp4"))

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(ref)))
	require.NoError(t, err)
	assert.Equal(t, "frames", string(data))

	other, err := store.Save(context.Background(), "My Clip.MP4", strings.NewReader("frames"))
	require.NoError(t, err)
	assert.NotEqual(t, ref, other)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestLocal_SaveReadError(t *testing.T) {
	dir := t.TempDir()
	_, err := NewLocal(dir).Save(context.Background(), "a.mp4", failingReader{})
	require.Error(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "videos"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCleanExt(t *testing.T) {
	tests := map[string]string{
		"clip.mp4":        ".mp4",
		"CLIP.WebM":       ".webm",
		"noext":           "",
		"../../etc/x.s/h": "",
		"evil.mp4;rm":     "",
		"dots.":           "",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanExt(in), in)
	}
}

func TestLocal_Delete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocal(dir)
	ctx := context.Background()

	ref, err := store.Save(ctx, "clip.mp4", strings.NewReader("frames"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(ref)))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	// already gone
	require.NoError(t, store.Delete(ctx, ref))

	require.Error(t, store.Delete(ctx, "../outside.mp4"))
	require.Error(t, store.Delete(ctx, "/etc/passwd"))
}
