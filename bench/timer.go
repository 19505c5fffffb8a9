// 反复执行一个函数直到失败，统计成功次数和耗时
package bench

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var operationDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "diskfill_operation_duration_seconds",
		Help:    "Time taken by a single write+sync or create+sync against the storage under test",
		Buckets: []float64{.0005, .001, .003, .005, .01, .02, .05, .1, .5, 1},
	},
	[]string{"operation_type", "result"},
)

func init() {
	prometheus.MustRegister(operationDuration)
}

// Stats describes the successful calls made by Until.
type Stats struct {
	Count    uint64
	Duration time.Duration
}

func (s *Stats) observe(duration time.Duration) {
	s.Count++
	s.Duration += duration
}

// Until calls fn with index 0, 1, 2, ... until it returns an error or ctx is
// done. The returned Stats only cover calls that succeeded.
func Until(ctx context.Context, op string, fn func(i uint64) error) (Stats, error) {
	var s Stats
	for i := uint64(0); ; i++ {
		select {
		case <-ctx.Done():
			return s, ctx.Err()
		default:
		}

		before := time.Now()
		err := fn(i)
		duration := time.Since(before)
		if err != nil {
			operationDuration.With(prometheus.Labels{"operation_type": op, "result": "failed"}).Observe(duration.Seconds())
			return s, err
		}
		operationDuration.With(prometheus.Labels{"operation_type": op, "result": "ok"}).Observe(duration.Seconds())
		s.observe(duration)
	}
}
