package solver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// solveTotal counts solves by result ("solved", "unsolvable", "error")
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "burrow_solve_total",
		Help: "Total solves by result",
	}, []string{"result"})

	// solveDuration tracks wall time per solve
	solveDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "burrow_solve_duration_seconds",
		Help:    "Solve duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
	})

	// layoutsSettled counts layouts expanded across all solves
	layoutsSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "burrow_layouts_settled_total",
		Help: "Total layouts expanded by the search",
	})

	// censusLayouts reports the size of the last census
	censusLayouts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "burrow_census_layouts",
		Help: "Reachable layouts found by the last census",
	})
)
