// Package motion delivers accelerometer samples from a sensor to a callback.
package motion

import (
	"errors"
	"fmt"
	"time"
)

// StandardGravity converts m/s² to g.
const StandardGravity = 9.80665

// ErrUnavailable is returned by Start when there is no sensor to read.
var ErrUnavailable = errors.New("accelerometer unavailable")

// Sample is one 3-axis reading in g.
type Sample struct {
	X, Y, Z float64
}

func (s Sample) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)g", s.X, s.Y, s.Z)
}

// Source produces samples on a fixed interval once started.
type Source interface {
	Available() bool
	// Start begins delivering samples to fn every interval. fn runs on a
	// goroutine owned by the source.
	Start(interval time.Duration, fn func(Sample)) error
	// Stop ends delivery. fn is not called again once Stop returns.
	Stop()
}

// Reader takes a single reading on demand.
type Reader interface {
	Available() bool
	Read() (Sample, error)
}

// Unavailable is a Source for machines without an accelerometer.
type Unavailable struct{}

func (Unavailable) Available() bool { return false }

func (Unavailable) Start(time.Duration, func(Sample)) error { return ErrUnavailable }

func (Unavailable) Stop() {}
