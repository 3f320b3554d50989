package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	success prometheus.Counter
	fails   prometheus.Counter
	io      prometheus.Observer
}

func (a *App) SuccessInc() {
	a.success.Inc()
}

func (a *App) FailsInc() {
	a.fails.Inc()
}

// NewIOTimer returns a function that records the time elapsed since the
// call on the io histogram
func (a *App) NewIOTimer() func() {
	start := time.Now()
	return func() {
		a.io.Observe(float64(time.Since(start).Nanoseconds()))
	}
}
