package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/minimallist/internal/motion"
)

// sampleMsg carries one accelerometer sample onto the event loop. feed
// identifies the subscription it came from.
type sampleMsg struct {
	feed   *sampleFeed
	sample motion.Sample
}

// sampleFeed hands samples from the sensor goroutine to the event loop for
// one detector subscription. Closing it releases a blocked sender, so the
// detector can stop from inside Update without deadlocking.
type sampleFeed struct {
	samples chan motion.Sample
	done    chan struct{}
	once    sync.Once
}

func newSampleFeed() *sampleFeed {
	return &sampleFeed{
		samples: make(chan motion.Sample),
		done:    make(chan struct{}),
	}
}

func (f *sampleFeed) dispatch(s motion.Sample) {
	select {
	case f.samples <- s:
	case <-f.done:
	}
}

// next waits for the following sample. It yields nil once the feed closes.
func (f *sampleFeed) next() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-f.samples:
			return sampleMsg{feed: f, sample: s}
		case <-f.done:
			return nil
		}
	}
}

func (f *sampleFeed) close() {
	f.once.Do(func() { close(f.done) })
}
