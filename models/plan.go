package models

// UnlimitedMinutes is the sentinel quota for plans with no minute cap.
const UnlimitedMinutes = -1

// PlanPrice holds display price strings for one currency.
type PlanPrice struct {
	Monthly string `json:"monthly"`
	Yearly  string `json:"yearly"`
}

// Plan represents a subscription tier. Prices are display strings only and
// never enter any computation; CallMinutes is the included quota per billing
// period, or UnlimitedMinutes.
type Plan struct {
	Id          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceUSD    PlanPrice `json:"price_usd"`
	PriceGBP    PlanPrice `json:"price_gbp"`
	PriceId     string    `json:"price_id"`
	Features    []string  `json:"features"`
	CallMinutes int       `json:"call_minutes"`
	Recommended bool      `json:"recommended"`
}

// Unlimited reports whether the plan has no minute cap.
func (p *Plan) Unlimited() bool {
	return p.CallMinutes == UnlimitedMinutes
}
