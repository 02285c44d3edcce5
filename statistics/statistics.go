package statistics

import (
	"errors"
	"math"
	"time"
)

// ErrNoSamples is returned when a summary is requested for an empty sample set
var ErrNoSamples = errors.New("no samples to summarize")

// Summary holds the aggregate of a run's samples, in the same unit as the input
type Summary struct {
	Count  int
	Min    time.Duration
	Mean   time.Duration
	Max    time.Duration
	StdDev time.Duration
}

// Summarize computes min, mean, max and the population standard deviation of samples.
func Summarize(samples []time.Duration) (s Summary, err error) {
	if len(samples) == 0 {
		err = ErrNoSamples
		return
	}

	s.Count = len(samples)
	s.Min = samples[0]
	s.Max = samples[0]

	var sum float64
	for _, v := range samples {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += float64(v)
	}
	mean := sum / float64(s.Count)

	var m2 float64
	for _, v := range samples {
		delta := float64(v) - mean
		m2 += delta * delta
	}

	s.Mean = time.Duration(mean)
	s.StdDev = time.Duration(math.Sqrt(m2 / float64(s.Count)))

	return
}

// Millis converts d to fractional milliseconds for display
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
