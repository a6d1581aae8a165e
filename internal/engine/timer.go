package engine

import "time"

// StartTimer arms the per-guess countdown. Any previous timer is cancelled
// first, so at most one is outstanding. When TimeLimit elapses the timeout
// flag is set and onTimeout runs on the timer's goroutine. StartTimer never
// blocks.
func (e *Engine) StartTimer(onTimeout func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
	e.timerGen++
	gen := e.timerGen
	e.timer = time.AfterFunc(e.timeLimit, func() {
		e.fire(gen, onTimeout)
	})
}

// CancelTimer stops the running timer, if any, and clears the timeout flag.
// It is safe to call at any time, including when no timer was started.
func (e *Engine) CancelTimer() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopLocked()
	e.timerGen++
}

// stopLocked stops and forgets the current timer. Caller holds e.mu.
func (e *Engine) stopLocked() {
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = nil
	e.timeoutFlag = false
}

// fire runs on the timer goroutine. Callbacks from a timer that has been
// cancelled or replaced since it was armed do nothing.
//
// A timer can still fire between the caller deciding to cancel and the
// cancel taking the lock; the callback then runs once for a turn the caller
// considers over. Front ends tag timeouts with a turn number for this.
func (e *Engine) fire(gen uint64, onTimeout func()) {
	e.mu.Lock()
	if gen != e.timerGen {
		e.mu.Unlock()
		return
	}
	e.timeoutFlag = true
	e.mu.Unlock()

	if onTimeout != nil {
		onTimeout()
	}
}

// TimeoutFired reports whether the current timer has fired and has not been
// cleared by CancelTimer, StartTimer or Reset.
func (e *Engine) TimeoutFired() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timeoutFlag
}

// TimedOut costs one life for a guess that did not arrive in time.
// There is no guard: calling it twice costs two lives.
func (e *Engine) TimedOut() {
	e.remaining--
}
