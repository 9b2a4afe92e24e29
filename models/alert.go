package models

const (
	AlertKindLowMinutes       = "low_minutes"
	AlertKindMinutesExhausted = "minutes_exhausted"
)

// QuotaAlert is one notification about an assistant's remaining minutes.
type QuotaAlert struct {
	AssistantId string            `json:"assistant_id"`
	PlanId      string            `json:"plan_id"`
	Kind        string            `json:"kind"`
	MinutesLeft float64           `json:"minutes_left"`
	Subject     string            `json:"subject"`
	To          string            `json:"to"`
	Args        map[string]string `json:"args"`
}
