package catalog

import (
	"sync"
	"time"
)

const defaultRotateInterval = 5 * time.Second

// Rotator cycles through a fixed number of banner slots. It advances on
// its own every interval while more than one slot exists; manual
// navigation moves immediately and restarts the interval from that
// moment, keeping the cadence. Stop must be called when the surface
// goes away or the tick goroutine leaks.
type Rotator struct {
	mu       sync.Mutex
	count    int
	index    int
	interval time.Duration
	onChange func(index int)
	reset    chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewRotator starts a rotator over count slots. onChange may be nil.
func NewRotator(count int, interval time.Duration, onChange func(index int)) *Rotator {
	if interval <= 0 {
		interval = defaultRotateInterval
	}
	r := &Rotator{
		count:    count,
		interval: interval,
		onChange: onChange,
		reset:    make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	if count > 1 {
		go r.loop()
	}
	return r
}

func (r *Rotator) loop() {
	timer := time.NewTimer(r.interval)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			r.advance(1)
			timer.Reset(r.interval)
		case <-r.reset:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(r.interval)
		case <-r.done:
			return
		}
	}
}

// Index returns the slot currently displayed.
func (r *Rotator) Index() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index
}

// Next moves one slot forward and restarts the auto-advance interval.
func (r *Rotator) Next() {
	r.advance(1)
	r.restartInterval()
}

// Prev moves one slot back and restarts the auto-advance interval.
func (r *Rotator) Prev() {
	r.advance(-1)
	r.restartInterval()
}

// Jump selects a slot directly and restarts the auto-advance interval.
// Out-of-range indexes are ignored.
func (r *Rotator) Jump(index int) {
	r.mu.Lock()
	if index >= 0 && index < r.count && index != r.index {
		r.index = index
		r.notifyLocked()
	}
	r.mu.Unlock()
	r.restartInterval()
}

// Stop tears the rotation timer down. Safe to call more than once.
func (r *Rotator) Stop() {
	r.stopOnce.Do(func() { close(r.done) })
}

func (r *Rotator) advance(delta int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count <= 1 {
		return
	}
	r.index = (r.index + delta + r.count) % r.count
	r.notifyLocked()
}

func (r *Rotator) restartInterval() {
	select {
	case r.reset <- struct{}{}:
	default:
	}
}

func (r *Rotator) notifyLocked() {
	if r.onChange != nil {
		r.onChange(r.index)
	}
}
