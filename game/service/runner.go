package service

import (
	"sync"
	"time"

	"github.com/blockfall/blockfall/game/engine"
)

// TicksPerSecond is the fixed simulation rate for every session
const TicksPerSecond = 60

const tickSeconds = 1.0 / float64(TicksPerSecond)

// Runner drives one engine at the fixed tick rate. The engine itself is a
// single actor; the runner serializes the background clock and transport
// inputs through one mutex so the engine never sees concurrent calls.
// Inputs are applied with a zero-duration step, so they land atomically
// between clock ticks.
type Runner struct {
	mu  sync.Mutex
	eng *engine.Engine

	subMu sync.Mutex
	subs  map[chan *engine.Snapshot]struct{}

	stopOnce sync.Once
	stop     chan struct{}
}

// NewRunner wraps an engine. The clock does not start until Start is called.
func NewRunner(eng *engine.Engine) *Runner {
	return &Runner{
		eng:  eng,
		subs: make(map[chan *engine.Snapshot]struct{}),
		stop: make(chan struct{}),
	}
}

// Start launches the background clock goroutine
func (r *Runner) Start() {
	go r.loop()
}

// Stop signals the clock to halt. Safe to call more than once.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *Runner) loop() {
	ticker := time.NewTicker(time.Second / TicksPerSecond)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.mu.Lock()
			var snap *engine.Snapshot
			// A quit request freezes the clock; Restart revives it
			if !r.eng.QuitRequested() {
				before := r.eng.Revision()
				r.eng.Step(tickSeconds, nil)
				if r.eng.Revision() != before {
					snap = r.eng.Snapshot()
				}
			}
			r.mu.Unlock()
			if snap != nil {
				r.publish(snap)
			}
		}
	}
}

// Apply feeds inputs into the engine immediately, without advancing time,
// and returns the resulting snapshot.
func (r *Runner) Apply(inputs []engine.InputKind) *engine.Snapshot {
	r.mu.Lock()
	before := r.eng.Revision()
	r.eng.Step(0, inputs)
	changed := r.eng.Revision() != before
	snap := r.eng.Snapshot()
	r.mu.Unlock()

	if changed {
		r.publish(snap)
	}
	return snap
}

// Restart resets the game to the start menu and returns the fresh snapshot
func (r *Runner) Restart() *engine.Snapshot {
	r.mu.Lock()
	r.eng.Reset()
	snap := r.eng.Snapshot()
	r.mu.Unlock()

	r.publish(snap)
	return snap
}

// Snapshot returns the current renderer view
func (r *Runner) Snapshot() *engine.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.eng.Snapshot()
}

// HighScore returns the best score known to this session's engine
func (r *Runner) HighScore() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.eng.HighScore()
}

// Subscribe registers for snapshot updates. The channel holds only the
// latest snapshot; a slow consumer sees frames dropped, never a stalled
// game clock. The returned function cancels the subscription and closes
// the channel. Safe to call more than once.
func (r *Runner) Subscribe() (<-chan *engine.Snapshot, func()) {
	ch := make(chan *engine.Snapshot, 1)
	r.subMu.Lock()
	r.subs[ch] = struct{}{}
	r.subMu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			r.subMu.Lock()
			delete(r.subs, ch)
			close(ch)
			r.subMu.Unlock()
		})
	}
	return ch, cancel
}

// publish replaces any undelivered snapshot with the newest one
func (r *Runner) publish(snap *engine.Snapshot) {
	r.subMu.Lock()
	defer r.subMu.Unlock()
	for ch := range r.subs {
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
}
