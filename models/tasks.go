package models

type UsageTask struct {
	AssistantRowID int    `json:"assistant_row_id"`
	AssistantId    string `json:"assistant_id"`
	PlanId         string `json:"plan_id"`
	RunID          string `json:"run_id"`
}
