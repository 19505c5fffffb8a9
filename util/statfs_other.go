//go:build !linux

package util

import "github.com/pkg/errors"

type Space struct {
	Bytes  uint64
	Inodes uint64
}

func FreeSpace(p string) (Space, error) {
	return Space{}, errors.Errorf("statfs %s: not supported on this platform", p)
}
