package room

import (
	"sync"
	"time"
)

// diceScheduler owns the deferred dice completions. One timer may be live
// per room; scheduling again supersedes the previous timer, and resolving
// the dice manually cancels it. The fired function still re-checks room
// state through a conditional update, so a timer that slips through here is
// harmless.
type diceScheduler struct {
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newDiceScheduler() *diceScheduler {
	return &diceScheduler{
		timers: make(map[string]*time.Timer),
	}
}

// schedule arms a timer for the room, replacing any live one
func (d *diceScheduler) schedule(code string, delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[code]; ok {
		t.Stop()
	}

	d.timers[code] = time.AfterFunc(delay, func() {
		d.mu.Lock()
		delete(d.timers, code)
		d.mu.Unlock()
		fn()
	})
}

// cancel stops the room's live timer, if any
func (d *diceScheduler) cancel(code string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[code]; ok {
		t.Stop()
		delete(d.timers, code)
	}
}
