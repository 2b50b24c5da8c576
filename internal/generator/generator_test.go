package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acolita/curator/internal/testing/fakes/fakerand"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New()
	require.NoError(t, err)
	return g
}

func assertFromCharset(t *testing.T, charset, pwd string) {
	t.Helper()
	for i, r := range pwd {
		assert.Truef(t, strings.ContainsRune(charset, r),
			"character %q at %d of %q not in %q", r, i, pwd, charset)
	}
}

func TestNew(t *testing.T) {
	g, err := New()
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Empty(t, g.Enabled())
	assert.Equal(t, "", g.Charset())
}

func TestNew_EntropyUnavailable(t *testing.T) {
	cause := errors.New("open /dev/urandom: no such device")

	g, err := newChecked(fakerand.NewFailing(cause))
	require.Error(t, err)
	assert.Nil(t, g)

	var initErr *InitializationError
	require.ErrorAs(t, err, &initErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "initialize secure random source")
}

func TestGenerate_Lengths(t *testing.T) {
	tests := []struct {
		name    string
		classes []Class
		length  int
	}{
		{name: "digits only", classes: []Class{Digits}, length: 10},
		{name: "two classes", classes: []Class{Digits, Lowercase}, length: 10},
		{name: "three classes", classes: []Class{Digits, Lowercase, Uppercase}, length: 10},
		{name: "four classes", classes: AllClasses(), length: 10},
		{name: "long", classes: AllClasses(), length: 512},
		{name: "single character", classes: []Class{Special}, length: 1},
		{name: "zero length", classes: []Class{Uppercase}, length: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGenerator(t)
			for _, c := range tc.classes {
				g.Enable(c)
			}

			pwd, err := g.Generate(tc.length)
			require.NoError(t, err)
			assert.Len(t, pwd, tc.length)
			assertFromCharset(t, g.Charset(), pwd)
		})
	}
}

func TestGenerate_DigitsOnly(t *testing.T) {
	g := newTestGenerator(t)
	g.EnableDigits()

	pwd, err := g.Generate(10)
	require.NoError(t, err)
	assert.Len(t, pwd, 10)
	assertFromCharset(t, "0123456789", pwd)
}

func TestGenerate_ZeroLengthIsEmpty(t *testing.T) {
	g := newTestGenerator(t)
	g.EnableLowercase()

	pwd, err := g.Generate(0)
	require.NoError(t, err)
	assert.Equal(t, "", pwd)
}

func TestGenerate_NoPoolEnabled(t *testing.T) {
	for _, length := range []int{0, 1, 10, -1} {
		g := newTestGenerator(t)

		pwd, err := g.Generate(length)
		assert.ErrorIs(t, err, ErrNoPoolEnabled, "length %d", length)
		assert.Empty(t, pwd)
	}
	assert.Equal(t, "cannot generate a password with no character classes enabled", ErrNoPoolEnabled.Error())
}

func TestGenerate_NegativeLength(t *testing.T) {
	g := newTestGenerator(t)
	g.EnableDigits()

	pwd, err := g.Generate(-3)
	assert.ErrorIs(t, err, ErrInvalidLength)
	assert.Empty(t, pwd)
}

func TestGenerate_SinglePoolSkipsPoolDraw(t *testing.T) {
	r := fakerand.NewSequential()
	g := NewWithRandom(r).EnableDigits()

	pwd, err := g.Generate(3)
	require.NoError(t, err)
	assert.Equal(t, "012", pwd)
	assert.Equal(t, 3, r.Consumed())
}

func TestGenerate_TwoStageSelection(t *testing.T) {
	// pool byte, character byte per position: digits[5], lowercase[2]
	r := fakerand.NewFixed(0, 5, 1, 2)
	g := NewWithRandom(r).EnableLowercase().EnableDigits()

	pwd, err := g.Generate(4)
	require.NoError(t, err)
	assert.Equal(t, "5c5c", pwd)
	assert.Equal(t, 8, r.Consumed())
}

func TestGenerate_PoolOrderIsCanonical(t *testing.T) {
	// pool indexes 0..3 pick digits, lowercase, uppercase, special in that
	// order no matter how the classes were enabled
	seq := []byte{0, 0, 1, 0, 2, 0, 3, 0}

	a := NewWithRandom(fakerand.NewFixed(seq...)).
		EnableSpecial().EnableUppercase().EnableLowercase().EnableDigits()
	b := NewWithRandom(fakerand.NewFixed(seq...)).
		EnableDigits().EnableLowercase().EnableUppercase().EnableSpecial()

	pa, err := a.Generate(4)
	require.NoError(t, err)
	pb, err := b.Generate(4)
	require.NoError(t, err)

	assert.Equal(t, "0aA!", pa)
	assert.Equal(t, pa, pb)
}

func TestGenerate_RejectsBiasedBytes(t *testing.T) {
	// 250..255 would favour the first six digits and must be skipped
	r := fakerand.NewFixed(255, 250, 7)
	g := NewWithRandom(r).EnableDigits()

	pwd, err := g.Generate(1)
	require.NoError(t, err)
	assert.Equal(t, "7", pwd)
	assert.Equal(t, 3, r.Consumed())
}

func TestGenerate_ModuloWithinPool(t *testing.T) {
	// 29 wraps to index 3 of the 26 letter pool
	g := NewWithRandom(fakerand.NewFixed(29)).EnableUppercase()

	pwd, err := g.Generate(2)
	require.NoError(t, err)
	assert.Equal(t, "DD", pwd)
}

func TestGenerate_RandomSourceFailure(t *testing.T) {
	cause := errors.New("read failed")
	g := NewWithRandom(fakerand.NewFailing(cause)).EnableDigits().EnableSpecial()

	pwd, err := g.Generate(8)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "select pool")
	assert.Empty(t, pwd)
}

func TestGenerate_ConsecutiveCallsDiffer(t *testing.T) {
	g := newTestGenerator(t)
	g.EnableDigits().EnableLowercase().EnableUppercase().EnableSpecial()

	a, err := g.Generate(32)
	require.NoError(t, err)
	b, err := g.Generate(32)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestGenerate_EveryPoolReachable(t *testing.T) {
	g := newTestGenerator(t)
	g.EnableDigits().EnableLowercase().EnableUppercase().EnableSpecial()

	pwd, err := g.Generate(400)
	require.NoError(t, err)

	for _, c := range AllClasses() {
		assert.Truef(t, strings.ContainsAny(pwd, c.Charset()),
			"no %s character in 400 draws", c)
	}
}

func TestGenerateMany(t *testing.T) {
	g := newTestGenerator(t)
	g.EnableDigits().EnableLowercase().EnableUppercase().EnableSpecial()

	passwords, err := g.GenerateMany(10, 2)
	require.NoError(t, err)
	require.Len(t, passwords, 2)
	for _, pwd := range passwords {
		assert.Len(t, pwd, 10)
		assertFromCharset(t, g.Charset(), pwd)
	}
}

func TestGenerateMany_Counts(t *testing.T) {
	for _, count := range []int{0, 1, 5, 50} {
		g := newTestGenerator(t)
		g.EnableUppercase()

		passwords, err := g.GenerateMany(6, count)
		require.NoError(t, err)
		assert.Len(t, passwords, count)
	}
}

func TestGenerateMany_IndependentDraws(t *testing.T) {
	g := NewWithRandom(fakerand.NewSequential()).EnableDigits()

	passwords, err := g.GenerateMany(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"01", "23", "45"}, passwords)
}

func TestGenerateMany_NoPoolEnabled(t *testing.T) {
	for _, count := range []int{0, 1, 3} {
		g := newTestGenerator(t)

		passwords, err := g.GenerateMany(10, count)
		assert.ErrorIs(t, err, ErrNoPoolEnabled)
		assert.Nil(t, passwords)
	}
}

func TestGenerateMany_NegativeCount(t *testing.T) {
	g := newTestGenerator(t)
	g.EnableDigits()

	passwords, err := g.GenerateMany(4, -1)
	assert.ErrorIs(t, err, ErrInvalidCount)
	assert.Nil(t, passwords)
}

func TestGenerateMany_NegativeLength(t *testing.T) {
	g := newTestGenerator(t)
	g.EnableDigits()

	_, err := g.GenerateMany(-4, 2)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestEnable_Idempotent(t *testing.T) {
	once := NewWithRandom(fakerand.NewSequential()).EnableSpecial()
	twice := NewWithRandom(fakerand.NewSequential()).EnableSpecial().EnableSpecial()

	assert.Equal(t, once.Charset(), twice.Charset())
	assert.Equal(t, []Class{Special}, twice.Enabled())
	assert.Equal(t, `!?#$_%&*+,./\:;^~[]`, twice.Charset())
}

func TestEnable_OrderIndependent(t *testing.T) {
	a := NewWithRandom(fakerand.NewSequential()).EnableUppercase().EnableDigits()
	b := NewWithRandom(fakerand.NewSequential()).EnableDigits().EnableUppercase()

	assert.Equal(t, a.Charset(), b.Charset())
	assert.Equal(t, []Class{Digits, Uppercase}, a.Enabled())
	assert.Equal(t, "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", a.Charset())
}

func TestEnable_UnknownClassIgnored(t *testing.T) {
	g := NewWithRandom(fakerand.NewSequential()).Enable(Class(42))
	assert.Empty(t, g.Enabled())
}

func TestEnable_ReturnsSameGenerator(t *testing.T) {
	g := NewWithRandom(fakerand.NewSequential())
	assert.Same(t, g, g.EnableDigits())
	assert.Same(t, g, g.Enable(Lowercase))
}
