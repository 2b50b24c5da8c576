// Package generator implements the password engine: character pools assembled
// from enabled classes and a two-stage draw from a secure random source.
//
// A Generator is configured by chaining Enable calls and then used for any
// number of Generate or GenerateMany calls:
//
//	g, err := generator.New()
//	if err != nil {
//		return err
//	}
//	pwd, err := g.EnableDigits().EnableLowercase().Generate(16)
//
// Each output position first picks one enabled pool uniformly, then one
// character of that pool uniformly. When pools differ in size the characters
// of the smaller pools are individually more likely than those of the larger
// ones. This is the established behavior of the tool and is kept as is.
//
// A Generator is not safe for concurrent use; it owns its random source.
package generator

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/acolita/curator/internal/adapters/realrand"
	"github.com/acolita/curator/internal/ports"
	"github.com/acolita/curator/internal/security"
)

// Generator produces passwords from its enabled pools.
type Generator struct {
	random ports.Random
	pools  [numClasses]*Pool
}

// New returns a Generator backed by the operating system CSPRNG.
// It fails with *InitializationError if the entropy source cannot be read.
func New() (*Generator, error) {
	return newChecked(realrand.New())
}

// NewWithRandom returns a Generator drawing from r. The source is not probed.
func NewWithRandom(r ports.Random) *Generator {
	return &Generator{random: r}
}

func newChecked(r ports.Random) (*Generator, error) {
	var probe [1]byte
	if _, err := io.ReadFull(r, probe[:]); err != nil {
		return nil, &InitializationError{Err: err}
	}
	slog.Debug("secure random source ready")
	return NewWithRandom(r), nil
}

// Enable materializes the pool for c. Enabling a class again replaces its pool
// with an identical one. Unknown classes are ignored.
func (g *Generator) Enable(c Class) *Generator {
	if c.valid() {
		g.pools[c] = newPool(c)
	}
	return g
}

// EnableDigits enables 0-9.
func (g *Generator) EnableDigits() *Generator { return g.Enable(Digits) }

// EnableLowercase enables a-z.
func (g *Generator) EnableLowercase() *Generator { return g.Enable(Lowercase) }

// EnableUppercase enables A-Z.
func (g *Generator) EnableUppercase() *Generator { return g.Enable(Uppercase) }

// EnableSpecial enables the symbols !?#$_%&*+,./\:;^~[]
func (g *Generator) EnableSpecial() *Generator { return g.Enable(Special) }

// Enabled returns the enabled classes in canonical order.
func (g *Generator) Enabled() []Class {
	var classes []Class
	for _, p := range g.enabledPools() {
		classes = append(classes, p.class)
	}
	return classes
}

// Charset returns the union of all enabled pools in canonical class order.
func (g *Generator) Charset() string {
	var sb strings.Builder
	for _, p := range g.enabledPools() {
		sb.Write(p.chars)
	}
	return sb.String()
}

// Generate returns a password of exactly length characters.
//
// It returns ErrNoPoolEnabled when no class is enabled, whatever the length,
// and never a partial password alongside an error.
func (g *Generator) Generate(length int) (string, error) {
	pools := g.enabledPools()
	if len(pools) == 0 {
		return "", ErrNoPoolEnabled
	}
	if length < 0 {
		return "", ErrInvalidLength
	}
	if length == 0 {
		return "", nil
	}

	buf := make([]byte, length)
	defer security.WipeBytes(buf)

	for i := range buf {
		pi, err := g.intn(len(pools))
		if err != nil {
			return "", fmt.Errorf("select pool: %w", err)
		}
		pool := pools[pi]

		ci, err := g.intn(pool.Len())
		if err != nil {
			return "", fmt.Errorf("select character: %w", err)
		}
		buf[i] = pool.chars[ci]
	}

	return string(buf), nil
}

// GenerateMany returns count independently generated passwords.
func (g *Generator) GenerateMany(length, count int) ([]string, error) {
	if len(g.enabledPools()) == 0 {
		return nil, ErrNoPoolEnabled
	}
	if count < 0 {
		return nil, ErrInvalidCount
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pwd, err := g.Generate(length)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pwd)
	}
	return passwords, nil
}

func (g *Generator) enabledPools() []*Pool {
	pools := make([]*Pool, 0, numClasses)
	for _, p := range g.pools {
		if p != nil {
			pools = append(pools, p)
		}
	}
	return pools
}

// intn returns a uniform value in [0, n) for 0 < n <= 256. Bytes that would
// bias the result are discarded. n == 1 consumes no randomness.
func (g *Generator) intn(n int) (int, error) {
	if n <= 0 || n > 256 {
		return 0, fmt.Errorf("range %d out of bounds", n)
	}
	if n == 1 {
		return 0, nil
	}

	limit := 256 - 256%n
	var b [1]byte
	for {
		if _, err := io.ReadFull(g.random, b[:]); err != nil {
			return 0, err
		}
		if int(b[0]) < limit {
			return int(b[0]) % n, nil
		}
	}
}
