package util

import (
	"context"
	"io"
	"os"
	"path/filepath"

	humanize "github.com/dustin/go-humanize"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/nullne/fill-disk/bench"
)

// SyncWriter is a writer whose writes can be forced to durable storage.
// *os.File satisfies it.
type SyncWriter interface {
	io.Writer
	Sync() error
}

type SyncWriteCloser interface {
	SyncWriter
	io.Closer
}

// CreateFunc creates, or truncates, the file at path for writing.
type CreateFunc func(path string) (SyncWriteCloser, error)

// CreateFile is the CreateFunc used by the tools.
func CreateFile(p string) (SyncWriteCloser, error) {
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// EatDisk writes zero-filled blocks of blockSize bytes to w and syncs after
// every block, until a write or a sync fails or ctx is done. name is only used
// in log lines and errors.
func EatDisk(ctx context.Context, w SyncWriter, name string, blockSize int) (bench.Stats, error) {
	if blockSize <= 0 {
		return bench.Stats{}, errors.Errorf("block size must be positive, got %d", blockSize)
	}
	bs := make([]byte, blockSize)
	size := humanize.IBytes(uint64(blockSize))

	return bench.Until(ctx, "write", func(i uint64) error {
		glog.Infof("writing block %d (%s) to %s", i, size, name)
		n, err := w.Write(bs)
		bytesWritten.Add(float64(n))
		if err == nil && n != len(bs) {
			err = io.ErrShortWrite
		}
		if err != nil {
			return errors.Wrapf(err, "write block %d to %s", i, name)
		}
		if err := w.Sync(); err != nil {
			return errors.Wrapf(err, "sync %s after block %d", name, i)
		}
		blocksSynced.Inc()
		return nil
	})
}

var oneByte = []byte{0}

// EatInodes creates 1-byte files named by names under dir, one at a time,
// until one of them cannot be created, written, synced or closed, or ctx is
// done. A nil create means CreateFile.
func EatInodes(ctx context.Context, dir string, names Namer, create CreateFunc) (bench.Stats, error) {
	if create == nil {
		create = CreateFile
	}
	return bench.Until(ctx, "create", func(i uint64) error {
		p := filepath.Join(dir, names.Name(i))
		glog.Infof("creating file %s", p)
		return writeOneByte(p, create)
	})
}

func writeOneByte(p string, create CreateFunc) error {
	f, err := create(p)
	if err != nil {
		return errors.Wrapf(err, "create %s", p)
	}
	if _, err := f.Write(oneByte); err != nil {
		f.Close()
		return errors.Wrapf(err, "write %s", p)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return errors.Wrapf(err, "sync %s", p)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", p)
	}
	filesCreated.Inc()
	return nil
}
