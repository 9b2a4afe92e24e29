package alerts

import (
	"voicedesk.io/accounting/models"
)

// AlertHandler delivers a quota alert to the assistant's owner over one
// provider-specific channel.
type AlertHandler interface {
	SendAlert(assistant *models.Assistant, alert *models.QuotaAlert) error
}

type Alerts struct {
	RetryAttempts int
}
