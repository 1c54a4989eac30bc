// SPDX-License-Identifier: MIT
package sink

import "sync"

// Call is one SetProperty invocation seen by a Recorder.
type Call struct {
	Key   string
	Value string
}

// Recorder is a StyleSink that remembers every call. Setting FailOn makes
// writes to that key fail with Err.
type Recorder struct {
	mu     sync.Mutex
	calls  []Call
	FailOn string
	Err    error
}

// SetProperty implements StyleSink.
func (r *Recorder) SetProperty(key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.FailOn != "" && key == r.FailOn {
		return r.Err
	}
	r.calls = append(r.calls, Call{Key: key, Value: value})
	return nil
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Reset forgets recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
