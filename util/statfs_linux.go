package util

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Space is what an unprivileged process can still consume on a filesystem.
type Space struct {
	Bytes  uint64
	Inodes uint64
}

// FreeSpace reports the free space of the filesystem holding p.
func FreeSpace(p string) (Space, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(p, &st); err != nil {
		return Space{}, errors.Wrapf(err, "statfs %s", p)
	}
	return Space{
		Bytes:  st.Bavail * uint64(st.Bsize),
		Inodes: st.Ffree,
	}, nil
}
