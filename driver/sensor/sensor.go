// Package sensor provides the synthetic sensor source used by the daemon
// and benchmarks: smooth periodic signals standing in for a CGM feed.
package sensor

import (
	"math"
)

// Simulator produces one input vector per call, advancing an internal
// tick counter. It is not safe for concurrent use; the control loop is
// its single consumer.
type Simulator struct {
	tick int
}

func NewSimulator() *Simulator {
	return &Simulator{}
}

func (s *Simulator) ReadInputs() map[string]float64 {
	t := float64(s.tick)
	s.tick++
	return map[string]float64{
		"glucose":  120 + 20*math.Sin(t/50),
		"trend":    2 * math.Cos(t/50),
		"exercise": 5 + 3*math.Sin(t/100),
		"stress":   5 + 4*math.Sin(t/80),
		"carbs":    40 + 40*math.Sin(t/120),
	}
}
