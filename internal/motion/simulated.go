package motion

import "sync/atomic"

// Resting is what a device lying flat reports.
var Resting = Sample{Z: 1}

// Spike is the reading Simulated reports right after Shake.
var Spike = Sample{X: 2.5}

// Simulated is a Reader for terminals without a sensor. It reports Resting
// until Shake arms a single Spike reading.
type Simulated struct {
	armed atomic.Bool
}

var _ Reader = (*Simulated)(nil)

func NewSimulated() *Simulated { return &Simulated{} }

func (s *Simulated) Available() bool { return true }

func (s *Simulated) Read() (Sample, error) {
	if s.armed.CompareAndSwap(true, false) {
		return Spike, nil
	}
	return Resting, nil
}

// Shake makes the next Read return Spike. Safe to call from any goroutine.
func (s *Simulated) Shake() {
	s.armed.Store(true)
}
