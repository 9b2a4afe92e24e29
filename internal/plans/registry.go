package plans

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/price"

	"voicedesk.io/accounting/models"
	"voicedesk.io/accounting/utils"
)

// defaultPlans is the static catalog. Defined once at process start and
// treated as immutable; price strings are display-only.
var defaultPlans = []models.Plan{
	{
		Id:          "starter",
		Name:        "Starter",
		Description: "For personal or small business use",
		PriceUSD:    models.PlanPrice{Monthly: "$0", Yearly: "$0"},
		PriceGBP:    models.PlanPrice{Monthly: "£0", Yearly: "£0"},
		PriceId:     "price_starter",
		Features: []string{
			"30 minutes of calls per month",
			"Basic voice customization",
			"Standard response time",
			"Email support",
		},
		CallMinutes: 30,
	},
	{
		Id:          "professional",
		Name:        "Professional",
		Description: "For growing businesses",
		PriceUSD:    models.PlanPrice{Monthly: "$29", Yearly: "$290"},
		PriceGBP:    models.PlanPrice{Monthly: "£23", Yearly: "£230"},
		PriceId:     "price_pro_monthly",
		Features: []string{
			"120 minutes of calls per month",
			"Advanced voice customization",
			"Faster response time",
			"Priority email support",
			"Call analytics dashboard",
			"Custom greeting messages",
		},
		CallMinutes: 120,
		Recommended: true,
	},
	{
		Id:          "premium",
		Name:        "Premium",
		Description: "For larger organizations",
		PriceUSD:    models.PlanPrice{Monthly: "$79", Yearly: "$790"},
		PriceGBP:    models.PlanPrice{Monthly: "£62", Yearly: "£620"},
		PriceId:     "price_premium_monthly",
		Features: []string{
			"Unlimited calls",
			"Premium voice options",
			"Fastest response time",
			"24/7 priority support",
			"Advanced analytics",
			"Multiple assistant profiles",
			"Custom integrations",
			"Dedicated account manager",
		},
		CallMinutes: models.UnlimitedMinutes,
	},
}

type Registry struct {
	plans []models.Plan
}

func NewRegistry() *Registry {
	plans := make([]models.Plan, len(defaultPlans))
	copy(plans, defaultPlans)
	return &Registry{plans: plans}
}

// Plans returns the catalog in definition order.
func (r *Registry) Plans() []models.Plan {
	plans := make([]models.Plan, len(r.plans))
	copy(plans, r.plans)
	return plans
}

// GetPlanById looks up a plan. An unknown id resolves to the first plan in
// the catalog rather than an error; availability wins over strictness here.
func (r *Registry) GetPlanById(planId string) models.Plan {
	for _, target := range r.plans {
		if target.Id == planId {
			return target
		}
	}
	utils.Log(logrus.WarnLevel, fmt.Sprintf("unknown plan id %q, defaulting to %q", planId, r.plans[0].Id))
	return r.plans[0]
}

// HydratePrices refreshes monthly display prices from the Stripe Price
// objects referenced by each plan's PriceId. Failures leave the static
// defaults in place; this never processes a payment.
func (r *Registry) HydratePrices(stripeKey string) {
	stripe.Key = stripeKey

	for i := range r.plans {
		if r.plans[i].PriceId == "" {
			continue
		}
		p, err := price.Get(r.plans[i].PriceId, nil)
		if err != nil {
			utils.Log(logrus.WarnLevel, fmt.Sprintf("could not hydrate price %s: %s", r.plans[i].PriceId, err.Error()))
			continue
		}
		display := formatAmount(p.UnitAmount, p.Currency)
		switch p.Currency {
		case stripe.CurrencyUSD:
			r.plans[i].PriceUSD.Monthly = display
		case stripe.CurrencyGBP:
			r.plans[i].PriceGBP.Monthly = display
		}
	}
}

func formatAmount(unitAmount int64, currency stripe.Currency) string {
	symbol := "$"
	if currency == stripe.CurrencyGBP {
		symbol = "£"
	}
	if unitAmount%100 == 0 {
		return fmt.Sprintf("%s%d", symbol, unitAmount/100)
	}
	return fmt.Sprintf("%s%.2f", symbol, float64(unitAmount)/100)
}
