//go:build unix

package util

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// IsNoSpace reports whether err means the filesystem ran out of a resource:
// blocks, inodes, quota, file size or directory links.
func IsNoSpace(err error) bool {
	return errors.Is(err, unix.ENOSPC) ||
		errors.Is(err, unix.EDQUOT) ||
		errors.Is(err, unix.EFBIG) ||
		errors.Is(err, unix.EMLINK)
}
