package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutesDisplay(t *testing.T) {
	t.Parallel()

	t.Run("Should render unlimited sentinel", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Unlimited", FormatMinutesDisplay(-1))
	})

	t.Run("Should round fractional minutes only at display time", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "2 min", FormatMinutesDisplay(2.49))
		assert.Equal(t, "3 min", FormatMinutesDisplay(2.51))
		assert.Equal(t, "0 min", FormatMinutesDisplay(0))
	})
}
