package ports

// Random is a source of cryptographically secure random bytes.
// Implementations must fill b completely or return an error.
type Random interface {
	Read(b []byte) (n int, err error)
}
