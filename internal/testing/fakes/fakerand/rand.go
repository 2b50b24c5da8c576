// Package fakerand provides a predictable ports.Random for tests.
package fakerand

import (
	"sync"

	"github.com/acolita/curator/internal/ports"
)

// Random replays a fixed byte sequence, wrapping around at the end.
// When Err is set every Read fails with it.
type Random struct {
	mu       sync.Mutex
	sequence []byte
	offset   int
	err      error
}

// New creates a fake random with the given sequence.
// A nil sequence defaults to the bytes 0-255.
func New(sequence []byte) *Random {
	if sequence == nil {
		sequence = make([]byte, 256)
		for i := range sequence {
			sequence[i] = byte(i)
		}
	}
	return &Random{sequence: sequence}
}

// NewSequential returns 0, 1, 2, ..., 255, 0, 1, ...
func NewSequential() *Random {
	return New(nil)
}

// NewFixed cycles through b.
func NewFixed(b ...byte) *Random {
	return New(b)
}

// NewFailing returns a source whose reads always fail with err.
func NewFailing(err error) *Random {
	return &Random{err: err}
}

// Read fills b with the next bytes of the sequence.
func (r *Random) Read(b []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return 0, r.err
	}
	for i := range b {
		b[i] = r.sequence[r.offset%len(r.sequence)]
		r.offset++
	}
	return len(b), nil
}

// Consumed reports how many bytes have been read so far.
func (r *Random) Consumed() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.offset
}

// Reset rewinds to the beginning of the sequence.
func (r *Random) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.offset = 0
}

var _ ports.Random = (*Random)(nil)
