package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
	"github.com/pkg/errors"

	"voicedesk.io/accounting/models"
	"voicedesk.io/accounting/utils"
)

type MailgunAlertHandler struct {
	Domain string
	APIKey string
	Sender string
	Alerts
}

func NewMailgunAlertHandler(domain string, apiKey string, sender string, retryAttempts int) *MailgunAlertHandler {
	item := &MailgunAlertHandler{
		Domain: domain,
		APIKey: apiKey,
		Sender: sender,
	}
	item.RetryAttempts = retryAttempts
	return item
}

func (hndl *MailgunAlertHandler) SendAlert(assistant *models.Assistant, alert *models.QuotaAlert) error {
	mg := mailgun.NewMailgun(hndl.Domain, hndl.APIKey)

	subject := alert.Subject
	if subject == "" {
		subject = "Your receptionist minutes"
	}

	var body string
	switch alert.Kind {
	case models.AlertKindMinutesExhausted:
		body = fmt.Sprintf(
			"Hi,\n\n%s has used all of the call minutes included in the %s plan this period. Callers can still reach your receptionist, but additional minutes require an upgrade.\n\nThe Voicedesk Team",
			assistant.Name, alert.PlanId)
	default:
		body = fmt.Sprintf(
			"Hi,\n\n%s has %s of call time remaining on the %s plan this period. Consider upgrading if you expect more call volume.\n\nThe Voicedesk Team",
			assistant.Name, utils.FormatMinutesDisplay(alert.MinutesLeft), alert.PlanId)
	}

	message := mg.NewMessage(hndl.Sender, subject, body, alert.To)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, _, err := mg.Send(ctx, message)
	if err != nil {
		return errors.Wrap(err, "sending alert email")
	}
	return nil
}
