// Bounded recording of control decisions for post-hoc analysis.

package history

import (
	"sync"
	"time"

	"example.com/pump-service/base/floats"
)

// Sample is one control decision: the crisp input values that were fed to
// the inference engine, the crisp output, and the time of the evaluation.
type Sample struct {
	Time   time.Time
	Values map[string]float64
}

// Buffer holds the most recent samples of a fixed set of signals in a
// fixed-capacity ring. One series per signal, kept in write order; writing
// past capacity overwrites the oldest slot and never reallocates.
//
// Append is intended for a single producer. Readers may call Snapshot,
// Series or Stats concurrently; they always observe whole samples in
// chronological order.
type Buffer struct {
	mu      sync.Mutex
	signals []string
	series  map[string][]float64
	times   []time.Time
	writes  uint64
}

func NewBuffer(capacity int, signals []string) *Buffer {
	if capacity <= 0 {
		panic("invalid history capacity")
	}
	if len(signals) == 0 {
		panic("no history signals")
	}
	b := &Buffer{
		signals: append([]string(nil), signals...),
		series:  make(map[string][]float64, len(signals)),
		times:   make([]time.Time, capacity),
	}
	for _, s := range signals {
		if _, ok := b.series[s]; ok {
			panic("duplicate history signal")
		}
		b.series[s] = make([]float64, capacity)
	}
	return b
}

func (b *Buffer) Capacity() int {
	return len(b.times)
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.len()
}

func (b *Buffer) len() int {
	if b.writes < uint64(len(b.times)) {
		return int(b.writes)
	}
	return len(b.times)
}

// Append records one sample, overwriting the oldest slot once the buffer
// is full. Signals missing from s.Values are recorded as 0.
func (b *Buffer) Append(s Sample) {
	b.mu.Lock()
	defer b.mu.Unlock()
	i := int(b.writes % uint64(len(b.times)))
	b.times[i] = s.Time
	for _, sig := range b.signals {
		b.series[sig][i] = s.Values[sig]
	}
	b.writes++
}

// Snapshot returns the last min(capacity, writes) samples, oldest first.
// The result is a copy; the ring's wrap-around order is never exposed.
func (b *Buffer) Snapshot() []Sample {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.len()
	out := make([]Sample, n)
	for k := 0; k < n; k++ {
		i := b.slot(k, n)
		vs := make(map[string]float64, len(b.signals))
		for _, sig := range b.signals {
			vs[sig] = b.series[sig][i]
		}
		out[k] = Sample{Time: b.times[i], Values: vs}
	}
	return out
}

// Series returns the chronological values of one signal, oldest first.
func (b *Buffer) Series(signal string) ([]float64, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ring, ok := b.series[signal]
	if !ok {
		return nil, false
	}
	n := b.len()
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		out[k] = ring[b.slot(k, n)]
	}
	return out, true
}

// slot maps chronological index k (0 = oldest of n held samples) to a ring
// slot. Caller must hold b.mu.
func (b *Buffer) slot(k, n int) int {
	return int((b.writes - uint64(n) + uint64(k)) % uint64(len(b.times)))
}

type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

func (b *Buffer) Stats(signal string) (Stats, bool) {
	vs, ok := b.Series(signal)
	if !ok || len(vs) == 0 {
		return Stats{}, false
	}
	return Stats{
		Min:    floats.Min(vs),
		Max:    floats.Max(vs),
		Mean:   floats.Mean(vs),
		Median: floats.Median(vs),
	}, true
}
