// Package security holds helpers for handling secret material in memory.
package security

import (
	"crypto/rand"
)

// WipeBytes overwrites data with random bytes and then zeros it.
// Go strings are immutable, so secrets that must be scrubbed have to live in
// a []byte until the last moment.
func WipeBytes(data []byte) {
	if len(data) == 0 {
		return
	}
	rand.Read(data)
	clear(data)
}
