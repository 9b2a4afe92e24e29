package plans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"voicedesk.io/accounting/models"
)

func TestGetPlanById(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	t.Run("Should return the matching plan", func(t *testing.T) {
		t.Parallel()

		plan := registry.GetPlanById("professional")
		assert.Equal(t, "professional", plan.Id)
		assert.Equal(t, 120, plan.CallMinutes)
	})

	t.Run("Should default to the first plan for unknown ids", func(t *testing.T) {
		t.Parallel()

		plan := registry.GetPlanById("nonexistent")
		assert.Equal(t, "starter", plan.Id)
	})

	t.Run("Should mark the premium plan unlimited", func(t *testing.T) {
		t.Parallel()

		plan := registry.GetPlanById("premium")
		assert.True(t, plan.Unlimited())
		assert.Equal(t, models.UnlimitedMinutes, plan.CallMinutes)
	})
}

func TestCatalogInvariants(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	for _, plan := range registry.Plans() {
		assert.True(t, plan.CallMinutes >= 0 || plan.CallMinutes == models.UnlimitedMinutes,
			"plan %s has invalid quota %d", plan.Id, plan.CallMinutes)
		assert.NotEmpty(t, plan.Features, "plan %s has no feature list", plan.Id)
	}
}
