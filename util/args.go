package util

import (
	"math"
	"os"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// ErrUsage reports a wrong number of command line arguments.
var ErrUsage = errors.New("wrong number of arguments")

// ParseBlockSize parses a positive byte count. Plain integers are bytes,
// unit suffixes follow go-humanize: "4KiB" is 4096, "4k" is 4000.
func ParseBlockSize(s string) (int, error) {
	n, err := humanize.ParseBytes(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid block size %q", s)
	}
	if n == 0 {
		return 0, errors.Errorf("block size must be positive, got %q", s)
	}
	if n > uint64(math.MaxInt) {
		return 0, errors.Errorf("block size %q too large", s)
	}
	return int(n), nil
}

// ParseFillArgs checks the positional arguments of fill-disk: <file> <block-size>.
func ParseFillArgs(args []string) (string, int, error) {
	if len(args) != 2 {
		return "", 0, ErrUsage
	}
	size, err := ParseBlockSize(args[1])
	if err != nil {
		return "", 0, err
	}
	return args[0], size, nil
}

// ParseFloodArgs checks the positional argument of make-files: <directory>.
func ParseFloodArgs(args []string) (string, error) {
	if len(args) != 1 {
		return "", ErrUsage
	}
	info, err := os.Stat(args[0])
	if err != nil {
		return "", errors.Wrap(err, "target directory")
	}
	if !info.IsDir() {
		return "", errors.Errorf("%s is not a directory", args[0])
	}
	return args[0], nil
}
