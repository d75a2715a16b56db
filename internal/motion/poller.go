package motion

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"
)

// Poller turns a Reader into a Source by reading it on a ticker.
type Poller struct {
	reader Reader

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

var _ Source = (*Poller)(nil)

func NewPoller(r Reader) *Poller {
	return &Poller{reader: r}
}

func (p *Poller) Available() bool {
	return p.reader != nil && p.reader.Available()
}

// Start is a no-op while already running.
func (p *Poller) Start(interval time.Duration, fn func(Sample)) error {
	if !p.Available() {
		return ErrUnavailable
	}
	if interval <= 0 {
		return errors.New("poll interval must be positive")
	}
	if fn == nil {
		return errors.New("nil sample handler")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done
	go p.run(ctx, done, interval, fn)
	return nil
}

func (p *Poller) run(ctx context.Context, done chan struct{}, interval time.Duration, fn func(Sample)) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	failing := false
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		s, err := p.reader.Read()
		if err != nil {
			if !failing {
				log.Printf("[motion] read failed: %v", err)
				failing = true
			}
			continue
		}
		failing = false
		// a tick and a cancel can be ready together
		if ctx.Err() != nil {
			return
		}
		fn(s)
	}
}

// Stop cancels polling and waits for the polling goroutine to exit. fn must
// not block forever, or Stop will too.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}
