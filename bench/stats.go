package bench

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Stats struct {
	Min  time.Duration
	Mean time.Duration
	Max  time.Duration
}

func NewStats(ds []time.Duration) Stats {
	if len(ds) == 0 {
		return Stats{}
	}

	ns := make([]float64, len(ds))
	for i, d := range ds {
		ns[i] = float64(d)
	}
	return Stats{
		Min:  time.Duration(floats.Min(ns)),
		Mean: time.Duration(stat.Mean(ns, nil)),
		Max:  time.Duration(floats.Max(ns)),
	}
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func (s Stats) String() string {
	return fmt.Sprintf("%.3fms (min) | %.3fms (avg) | %.3fms (max)",
		milliseconds(s.Min), milliseconds(s.Mean), milliseconds(s.Max))
}
