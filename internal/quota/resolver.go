package quota

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"voicedesk.io/accounting/internal/plans"
	"voicedesk.io/accounting/models"
	"voicedesk.io/accounting/utils"
)

// Unlimited is the sentinel returned for plans with no minute cap.
const Unlimited = float64(models.UnlimitedMinutes)

// UsageFetcher retrieves authoritative minutes used for an assistant from
// the analytics backend.
type UsageFetcher interface {
	UsageMinutes(ctx context.Context, assistantId string) (float64, error)
}

// Resolver combines the plan catalog with fetched or precomputed usage to
// compute minutes remaining.
type Resolver struct {
	registry *plans.Registry
	fetcher  UsageFetcher
}

func NewResolver(registry *plans.Registry, fetcher UsageFetcher) *Resolver {
	return &Resolver{
		registry: registry,
		fetcher:  fetcher,
	}
}

// MinutesLeft computes the minutes remaining for an assistant under a plan.
// Unlimited plans short-circuit to Unlimited before any network activity.
// When minutesUsed is nil and an assistant id is given, usage is fetched
// from the analytics backend; fetch failures degrade to zero usage rather
// than erroring, since usage is a best-effort metric here. The result is
// never negative.
func (r *Resolver) MinutesLeft(ctx context.Context, planId string, assistantId string, minutesUsed *float64) float64 {
	plan := r.registry.GetPlanById(planId)
	if plan.Unlimited() {
		return Unlimited
	}

	var used float64
	switch {
	case minutesUsed != nil:
		used = *minutesUsed
	case assistantId != "":
		fetched, err := r.fetcher.UsageMinutes(ctx, assistantId)
		if err != nil {
			utils.Log(logrus.WarnLevel, fmt.Sprintf("usage fetch failed for assistant %s, treating as 0: %s", assistantId, err.Error()))
			fetched = 0
		}
		used = fetched
	}

	if math.IsNaN(used) || used < 0 {
		used = 0
	}

	return math.Max(0, float64(plan.CallMinutes)-used)
}
