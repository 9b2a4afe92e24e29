package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	t.Parallel()

	t.Run("Should parse combined minute and second form", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 2.5, ParseDuration("2min 30sec"))
		assert.InDelta(t, 0.2666, ParseDuration("0min 16sec"), 0.001)
		assert.InDelta(t, 0.2666, ParseDuration("0min 16s"), 0.001)
	})

	t.Run("Should accept a standalone minute component", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 5.0, ParseDuration("5min"))
		assert.Equal(t, 3.0, ParseDuration("3min 0sec"))
	})

	t.Run("Should accept a standalone second component", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0.5, ParseDuration("30sec"))
		assert.Equal(t, 1.5, ParseDuration("90s"))
	})

	t.Run("Should reject markers with no digits attached", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0.0, ParseDuration("mins"))
	})

	t.Run("Should parse plain decimal minutes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0.27, ParseDuration("0.27"))
		assert.Equal(t, 12.0, ParseDuration("12"))
	})

	t.Run("Should parse colon delimited mm:ss", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 1.5, ParseDuration("1:30"))
		assert.InDelta(t, 0.2666, ParseDuration("0:16"), 0.001)
		// must not be prefix-parsed as decimal 12
		assert.Equal(t, 12.5, ParseDuration("12:30"))
		// extra segments are dropped, first two win
		assert.Equal(t, 1.5, ParseDuration("1:30:45"))
	})

	t.Run("Should return zero for unrecognized input", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0.0, ParseDuration("garbage"))
		assert.Equal(t, 0.0, ParseDuration(""))
		assert.Equal(t, 0.0, ParseDuration("::"))
	})

	t.Run("Should never return a negative value", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0.0, ParseDuration("-5"))
		assert.Equal(t, 0.0, ParseDuration("-1:30"))
	})
}
