package shake

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/minimallist/internal/motion"
)

// fakeSource hands samples to the subscriber synchronously.
type fakeSource struct {
	available bool
	startErr  error
	interval  time.Duration
	fn        func(motion.Sample)
	starts    int
	stops     int
}

func (f *fakeSource) Available() bool { return f.available }

func (f *fakeSource) Start(interval time.Duration, fn func(motion.Sample)) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.starts++
	f.interval = interval
	f.fn = fn
	return nil
}

func (f *fakeSource) Stop() {
	f.stops++
	f.fn = nil
}

func (f *fakeSource) emit(s motion.Sample) {
	if f.fn != nil {
		f.fn(s)
	}
}

func TestExceeds(t *testing.T) {
	tests := []struct {
		s    motion.Sample
		want bool
	}{
		{motion.Sample{X: 0.1, Y: 0.1, Z: 0.1}, false},
		{motion.Sample{X: 2.5}, true},
		{motion.Sample{Y: -2.01}, true},
		{motion.Sample{Z: 2.0}, false},
		{motion.Sample{X: -2.0, Y: 2.0, Z: 1.99}, false},
		{motion.Sample{Z: 3}, true},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, Exceeds(tc.s, DefaultThreshold), "sample %s", tc.s)
	}
}

func TestDetectorTriggersOnlyAboveThreshold(t *testing.T) {
	src := &fakeSource{available: true}
	var clears int
	d := New(src, func() { clears++ })

	d.Start(nil)
	require.Equal(t, Listening, d.State())
	require.Equal(t, DefaultInterval, src.interval)

	for i := 0; i < 3; i++ {
		src.emit(motion.Sample{X: 0.1, Y: 0.1, Z: 0.1})
	}
	require.Zero(t, clears)

	src.emit(motion.Sample{X: 2.5})
	require.Equal(t, 1, clears)
}

func TestDetectorSustainedShakeRetriggers(t *testing.T) {
	src := &fakeSource{available: true}
	var clears int
	d := New(src, func() { clears++ })
	d.Start(nil)
	for i := 0; i < 5; i++ {
		src.emit(motion.Sample{Y: -3})
	}
	require.Equal(t, 5, clears)
}

func TestDetectorUnavailableSensor(t *testing.T) {
	src := &fakeSource{}
	var clears int
	d := New(src, func() { clears++ })
	d.Start(nil)
	require.Equal(t, Idle, d.State())
	require.Zero(t, src.starts)

	require.False(t, d.Handle(motion.Sample{X: 9}))
	require.Zero(t, clears)

	d.Stop()
	require.Zero(t, src.stops)
}

func TestDetectorNilSourceIsUnavailable(t *testing.T) {
	d := New(nil, nil)
	d.Start(nil)
	require.Equal(t, Idle, d.State())
}

func TestDetectorStartErrorStaysIdle(t *testing.T) {
	src := &fakeSource{available: true, startErr: errors.New("permission denied")}
	d := New(src, nil)
	d.Start(nil)
	require.Equal(t, Idle, d.State())
}

func TestDetectorStopDropsLateSamples(t *testing.T) {
	src := &fakeSource{available: true}
	var clears int
	d := New(src, func() { clears++ })

	var queued []motion.Sample
	d.Start(func(s motion.Sample) { queued = append(queued, s) })
	src.emit(motion.Sample{X: 3})
	d.Stop()
	require.Equal(t, Idle, d.State())
	require.Equal(t, 1, src.stops)

	// the queued sample arrives after Stop returned
	for _, s := range queued {
		require.False(t, d.Handle(s))
	}
	require.Zero(t, clears)
}

func TestDetectorStartStopIdempotent(t *testing.T) {
	src := &fakeSource{available: true}
	d := New(src, nil, WithThreshold(1.5), WithInterval(50*time.Millisecond))
	d.Start(nil)
	d.Start(nil)
	require.Equal(t, 1, src.starts)
	require.Equal(t, 50*time.Millisecond, src.interval)
	require.Equal(t, 1.5, d.Threshold())

	d.Stop()
	d.Stop()
	require.Equal(t, 1, src.stops)

	d.Start(nil)
	require.Equal(t, 2, src.starts)
	require.Equal(t, Listening, d.State())
}

func TestDetectorIgnoresNonPositiveOptions(t *testing.T) {
	d := New(&fakeSource{}, nil, WithThreshold(0), WithInterval(-time.Second))
	require.Equal(t, DefaultThreshold, d.Threshold())
	require.Equal(t, DefaultInterval, d.interval)
}

func TestDetectorWithSimulatedPoller(t *testing.T) {
	sim := motion.NewSimulated()
	var clears atomic.Int64
	d := New(motion.NewPoller(sim), func() { clears.Add(1) }, WithInterval(time.Millisecond))
	d.Start(nil)
	require.Equal(t, Listening, d.State())

	time.Sleep(10 * time.Millisecond)
	require.Zero(t, clears.Load())

	sim.Shake()
	require.Eventually(t, func() bool { return clears.Load() == 1 }, 2*time.Second, time.Millisecond)

	d.Stop()
	sim.Shake()
	time.Sleep(10 * time.Millisecond)
	require.Equal(t, int64(1), clears.Load())
}
