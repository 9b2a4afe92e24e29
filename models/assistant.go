package models

// Assistant is a customer's configured AI receptionist. Id is the local row
// id; AssistantId is the identifier assigned by the voice provider at
// provisioning time.
type Assistant struct {
	Id           int     `json:"id"`
	AssistantId  string  `json:"assistant_id"`
	Name         string  `json:"name"`
	FirstMessage string  `json:"first_message"`
	SystemPrompt string  `json:"system_prompt"`
	VoiceId      string  `json:"voice_id"`
	Language     string  `json:"language"`
	Temperature  float64 `json:"temperature"`
	PlanId       string  `json:"plan_id"`
	OwnerEmail   string  `json:"owner_email"`
	Published    bool    `json:"published"`
}
