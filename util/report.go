package util

import (
	"context"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/nullne/fill-disk/bench"
)

// Verdict logs how a run ended and returns the exit code for it.
// what names the unit counted by s, e.g. "blocks".
func Verdict(err error, s bench.Stats, what string) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		glog.Errorf("interrupted after %d %s in %s", s.Count, what, s.Duration)
	case IsNoSpace(err):
		glog.Errorf("storage exhausted after %d %s in %s: %v", s.Count, what, s.Duration, err)
	default:
		glog.Errorf("failed after %d %s in %s: %v", s.Count, what, s.Duration, err)
	}
	return 1
}
