package signal

import "sync"

// Flag is a refresh signal shared between a mutating workflow and the list
// views that re-fetch after it. A workflow raises the flag on successful
// mutation; the consuming view reads and resets it in one step.
type Flag struct {
	mu     sync.Mutex
	raised bool
}

// New creates a lowered flag
func New() *Flag {
	return &Flag{}
}

// Raise marks the flag. Raising an already-raised flag is a no-op.
func (f *Flag) Raise() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.raised = true
}

// Consume returns whether the flag was raised and lowers it
func (f *Flag) Consume() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	raised := f.raised
	f.raised = false
	return raised
}

// Peek returns the current state without lowering the flag
func (f *Flag) Peek() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.raised
}
