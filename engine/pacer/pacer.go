package pacer

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var DefaultEvery = 100 * time.Millisecond

// Pacer produces game ticks at a fixed interval. A tick the consumer has not
// taken before the next one is due is dropped.
type Pacer struct {
	done  chan struct{}
	once  sync.Once
	every time.Duration

	ticks chan time.Time
}

func New(every time.Duration) (*Pacer, error) {
	if every <= 0 {
		return nil, errors.New("tick interval must be positive")
	}

	p := &Pacer{
		done:  make(chan struct{}),
		every: every,
		ticks: make(chan time.Time, 1),
	}

	go p.run()

	return p, nil
}

// FromRate creates a pacer firing ticksPerSecond times a second.
func FromRate(ticksPerSecond int) (*Pacer, error) {
	if ticksPerSecond <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %d", ticksPerSecond)
	}

	return New(time.Second / time.Duration(ticksPerSecond))
}

func (p *Pacer) C() <-chan time.Time {
	return p.ticks
}

func (p *Pacer) Every() time.Duration {
	return p.every
}

func (p *Pacer) run() {
	timer := time.NewTimer(p.every)
	defer timer.Stop()

	for {
		select {
		case <-p.done:
			close(p.done)
			return
		case now := <-timer.C:
			select {
			case p.ticks <- now:
			default:
			}

			timer.Reset(p.every)
		}
	}
}

// Close stops the pacer and waits for its goroutine to exit. It is safe to
// call more than once.
func (p *Pacer) Close() {
	p.once.Do(func() {
		p.done <- struct{}{}
		<-p.done
	})
}
