package models

// CallRecord is one logged phone call as returned by the call-log store.
// All fields are strings straight off the wire; Duration is free-form and
// goes through the usage parser. Records are read-only and never mutated.
type CallRecord struct {
	AssistantId string `json:"assistant_id"`
	CreatedAt   string `json:"created_at"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	EndedReason string `json:"ended_reason"`
	Duration    string `json:"duration"`
}
