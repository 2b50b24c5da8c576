package generator

// Pool holds the characters of a single enabled class.
// A Pool is never modified after newPool returns it.
type Pool struct {
	class Class
	chars []byte
}

func newPool(c Class) *Pool {
	return &Pool{
		class: c,
		chars: []byte(c.Charset()),
	}
}

// Class returns the class the pool was derived from.
func (p *Pool) Class() Class {
	return p.class
}

// Len returns the number of characters in the pool.
func (p *Pool) Len() int {
	return len(p.chars)
}

// String returns the pool characters in order.
func (p *Pool) String() string {
	return string(p.chars)
}
