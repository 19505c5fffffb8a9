package util

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// fullFile is a real file that reports ENOSPC once it holds limit writes.
type fullFile struct {
	*os.File
	limit  int
	writes int
	syncs  int
}

func (f *fullFile) Write(p []byte) (int, error) {
	if f.writes == f.limit {
		return 0, &os.PathError{Op: "write", Path: f.Name(), Err: unix.ENOSPC}
	}
	f.writes++
	return f.File.Write(p)
}

func (f *fullFile) Sync() error {
	f.syncs++
	return f.File.Sync()
}

func TestEatDisk(t *testing.T) {
	p := filepath.Join(t.TempDir(), "filler")
	f, err := os.Create(p)
	require.NoError(t, err)
	defer f.Close()

	before := testutil.ToFloat64(blocksSynced)
	w := &fullFile{File: f, limit: 10}
	s, err := EatDisk(context.Background(), w, p, 4096)
	require.Error(t, err)
	require.True(t, IsNoSpace(err), "%v", err)
	require.Equal(t, uint64(10), s.Count)
	require.Equal(t, 10, w.syncs)
	require.Equal(t, float64(10), testutil.ToFloat64(blocksSynced)-before)

	info, err := os.Stat(p)
	require.NoError(t, err)
	require.Equal(t, int64(10*4096), info.Size())

	bs, err := os.ReadFile(p)
	require.NoError(t, err)
	for _, b := range bs {
		if b != 0 {
			t.Fatal("filler file is not zero filled")
		}
	}
}

type shortWriter struct{ syncs int }

func (w *shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }
func (w *shortWriter) Sync() error { w.syncs++; return nil }

func TestEatDiskShortWrite(t *testing.T) {
	w := &shortWriter{}
	s, err := EatDisk(context.Background(), w, "short", 512)
	require.ErrorIs(t, err, io.ErrShortWrite)
	require.Zero(t, s.Count)
	require.Zero(t, w.syncs)
}

type failingSync struct{}

func (w *failingSync) Write(p []byte) (int, error) { return len(p), nil }
func (w *failingSync) Sync() error { return unix.EIO }

func TestEatDiskSyncError(t *testing.T) {
	s, err := EatDisk(context.Background(), &failingSync{}, "sync", 1)
	require.ErrorIs(t, err, unix.EIO)
	require.False(t, IsNoSpace(err))
	require.Zero(t, s.Count)
}

func TestEatDiskInvalidBlockSize(t *testing.T) {
	w := &shortWriter{}
	_, err := EatDisk(context.Background(), w, "zero", 0)
	require.Error(t, err)
	require.Zero(t, w.syncs)
}

func TestEatInodes(t *testing.T) {
	dir := t.TempDir()
	names := Namer{Prefix: 42}

	// pretend the directory only holds 100 entries
	var created int
	create := func(p string) (SyncWriteCloser, error) {
		if created == 100 {
			return nil, &os.PathError{Op: "open", Path: p, Err: unix.ENOSPC}
		}
		created++
		return CreateFile(p)
	}

	before := testutil.ToFloat64(filesCreated)
	s, err := EatInodes(context.Background(), dir, names, create)
	require.True(t, IsNoSpace(err), "%v", err)
	require.Contains(t, err.Error(), "file-42-100")
	require.Equal(t, uint64(100), s.Count)
	require.Equal(t, float64(100), testutil.ToFloat64(filesCreated)-before)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 100)
	for i := 0; i < 100; i++ {
		info, err := os.Stat(filepath.Join(dir, fmt.Sprintf("file-42-%d", i)))
		require.NoError(t, err)
		require.Equal(t, int64(1), info.Size())
	}
}

func TestEatInodesMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	s, err := EatInodes(context.Background(), dir, Namer{Prefix: 7}, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
	require.False(t, IsNoSpace(err))
	require.Zero(t, s.Count)
}

func TestEatInodesCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dir := t.TempDir()
	s, err := EatInodes(ctx, dir, Namer{Prefix: 1}, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, s.Count)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
