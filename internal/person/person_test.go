package person

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var personCmp = cmp.AllowUnexported(Person{})

func TestIsAdult(t *testing.T) {
	t.Run("adult at 30", func(t *testing.T) {
		assert.True(t, New("Alice", 30).IsAdult())
	})

	t.Run("child at 10", func(t *testing.T) {
		assert.False(t, New("Bob", 10).IsAdult())
	})

	t.Run("boundary at 18", func(t *testing.T) {
		assert.True(t, New("Eve", 18).IsAdult())
		assert.False(t, New("Eve", 17).IsAdult())
	})
}

func TestGreet(t *testing.T) {
	p := New("Alice", 30)

	cases := map[TimeOfDay]string{
		TimeGeneric:   "Hello, my name is Alice!",
		TimeMorning:   "Good morning, my name is Alice!",
		TimeAfternoon: "Good afternoon, my name is Alice!",
		TimeEvening:   "Good evening, my name is Alice!",
		TimeNight:     "Good night, my name is Alice!",
	}
	for tod, want := range cases {
		assert.Equal(t, want, p.Greet(tod))
	}
}

func TestWithEmail(t *testing.T) {
	t.Run("original is unmodified", func(t *testing.T) {
		p1 := New("Alice", 30)
		p2 := p1.WithEmail("alice@example.com")

		_, ok := p1.Email()
		assert.False(t, ok, "p1 gained an email")

		got, ok := p2.Email()
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", got)

		assert.Equal(t, p1.Name(), p2.Name())
		assert.Equal(t, p1.Age(), p2.Age())
	})

	t.Run("replaces existing email", func(t *testing.T) {
		p1 := NewWithEmail("Bob", 40, "old@example.com")
		p2 := p1.WithEmail("new@example.com")

		e1, _ := p1.Email()
		e2, _ := p2.Email()
		assert.Equal(t, "old@example.com", e1)
		assert.Equal(t, "new@example.com", e2)
	})
}

func TestEqual(t *testing.T) {
	a := NewWithEmail("Alice", 30, "alice@example.com")
	b := NewWithEmail("Alice", 30, "alice@example.com")

	assert.True(t, a.Equal(b))
	assert.Empty(t, cmp.Diff(a, b, personCmp))

	assert.False(t, a.Equal(a.WithEmail("other@example.com")))
	assert.False(t, a.Equal(NewWithEmail("Alice", 31, "alice@example.com")))
	assert.False(t, a.Equal(NewWithEmail("Alicia", 30, "alice@example.com")))
}

func TestString(t *testing.T) {
	t.Run("without email", func(t *testing.T) {
		assert.Equal(t, "Alice, 30 years old", New("Alice", 30).String())
	})

	t.Run("with email", func(t *testing.T) {
		p := NewWithEmail("Bob", 25, "bob@example.com")
		assert.Equal(t, "Bob, 25 years old (bob@example.com)", p.String())
	})
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("round trips every variant", func(t *testing.T) {
		for _, tod := range []TimeOfDay{TimeGeneric, TimeMorning, TimeAfternoon, TimeEvening, TimeNight} {
			got, err := ParseTimeOfDay(tod.String())
			require.NoError(t, err)
			assert.Equal(t, tod, got)
		}
	})

	t.Run("empty means generic", func(t *testing.T) {
		got, err := ParseTimeOfDay("")
		require.NoError(t, err)
		assert.Equal(t, TimeGeneric, got)
	})

	t.Run("unknown label fails", func(t *testing.T) {
		_, err := ParseTimeOfDay("midnight")
		assert.Error(t, err)
	})
}
