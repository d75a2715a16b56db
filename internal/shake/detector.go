// Package shake turns accelerometer samples into "shake occurred" events.
package shake

import (
	"log"
	"math"
	"sync/atomic"
	"time"

	"github.com/jask/minimallist/internal/motion"
)

const (
	// DefaultThreshold is the per-axis magnitude, in g, a sample must exceed.
	DefaultThreshold = 2.0
	// DefaultInterval is how often the sensor is polled while listening.
	DefaultInterval = 200 * time.Millisecond
)

// State is Idle or Listening.
type State int

const (
	Idle State = iota
	Listening
)

func (s State) String() string {
	switch s {
	case Listening:
		return "listening"
	default:
		return "idle"
	}
}

// Exceeds reports whether any axis of s is strictly beyond threshold.
func Exceeds(s motion.Sample, threshold float64) bool {
	return math.Abs(s.X) > threshold || math.Abs(s.Y) > threshold || math.Abs(s.Z) > threshold
}

// Detector subscribes to a motion source and calls onShake for every
// sample over the threshold. There is no debounce: a sustained shake fires
// on each qualifying sample. Start and Stop belong to one goroutine; onShake
// runs wherever Handle is called.
type Detector struct {
	source    motion.Source
	threshold float64
	interval  time.Duration
	onShake   func()
	state     atomic.Int32
}

type Option func(*Detector)

func WithThreshold(g float64) Option {
	return func(d *Detector) {
		if g > 0 {
			d.threshold = g
		}
	}
}

func WithInterval(every time.Duration) Option {
	return func(d *Detector) {
		if every > 0 {
			d.interval = every
		}
	}
}

func New(source motion.Source, onShake func(), opts ...Option) *Detector {
	if source == nil {
		source = motion.Unavailable{}
	}
	d := &Detector{
		source:    source,
		threshold: DefaultThreshold,
		interval:  DefaultInterval,
		onShake:   onShake,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Detector) State() State { return State(d.state.Load()) }

func (d *Detector) Threshold() float64 { return d.threshold }

// Start subscribes to the source. dispatch carries each sample back to the
// caller's goroutine, which must then call Handle; nil means samples are
// handled directly on the source's goroutine. A missing sensor leaves the
// detector Idle and is not an error.
func (d *Detector) Start(dispatch func(motion.Sample)) {
	if d.State() == Listening {
		return
	}
	if !d.source.Available() {
		log.Printf("[shake] accelerometer unavailable, shake to clear disabled")
		return
	}
	if dispatch == nil {
		dispatch = func(s motion.Sample) { d.Handle(s) }
	}
	d.state.Store(int32(Listening))
	if err := d.source.Start(d.interval, dispatch); err != nil {
		d.state.Store(int32(Idle))
		log.Printf("[shake] start motion updates: %v", err)
		return
	}
	log.Printf("[shake] listening every %s, threshold %.2fg", d.interval, d.threshold)
}

// Stop unsubscribes. Samples that reach Handle afterwards are dropped.
func (d *Detector) Stop() {
	if !d.state.CompareAndSwap(int32(Listening), int32(Idle)) {
		return
	}
	d.source.Stop()
	log.Printf("[shake] stopped")
}

// Handle evaluates one sample and reports whether it counted as a shake.
func (d *Detector) Handle(s motion.Sample) bool {
	if d.State() != Listening || !Exceeds(s, d.threshold) {
		return false
	}
	log.Printf("[shake] triggered by %s", s)
	if d.onShake != nil {
		d.onShake()
	}
	return true
}
