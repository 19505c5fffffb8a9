//go:build !unix

package util

import (
	"syscall"

	"github.com/pkg/errors"
)

func IsNoSpace(err error) bool {
	return errors.Is(err, syscall.ENOSPC) ||
		errors.Is(err, syscall.EDQUOT) ||
		errors.Is(err, syscall.EFBIG) ||
		errors.Is(err, syscall.EMLINK)
}
