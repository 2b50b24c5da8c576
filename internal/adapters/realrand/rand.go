// Package realrand provides the production ports.Random backed by crypto/rand.
package realrand

import (
	"crypto/rand"
	"io"

	"github.com/acolita/curator/internal/ports"
)

// Random reads from the operating system CSPRNG.
type Random struct {
	src io.Reader
}

// New returns a Random reading from crypto/rand.
func New() *Random {
	return &Random{src: rand.Reader}
}

// Read fills b entirely with secure random bytes.
func (r *Random) Read(b []byte) (int, error) {
	return io.ReadFull(r.src, b)
}

var _ ports.Random = (*Random)(nil)
