package models

import "time"

// UsageSnapshot is the computed usage state for one assistant at a point in
// time. MinutesLeft is UnlimitedMinutes for uncapped plans and otherwise
// never negative.
type UsageSnapshot struct {
	AssistantId      string    `json:"assistant_id"`
	PlanId           string    `json:"plan_id"`
	TotalMinutesUsed float64   `json:"total_minutes_used"`
	MinutesLeft      float64   `json:"minutes_left"`
	ComputedAt       time.Time `json:"computed_at"`
}
