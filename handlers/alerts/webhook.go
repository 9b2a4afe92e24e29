package alerts

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"voicedesk.io/accounting/models"
)

// WebhookAlertHandler posts alerts to an internal notification endpoint,
// for deployments that route email through their own service.
type WebhookAlertHandler struct {
	URL    string
	APIKey string
	Alerts
}

func NewWebhookAlertHandler(url string, apiKey string, retryAttempts int) *WebhookAlertHandler {
	item := &WebhookAlertHandler{
		URL:    url,
		APIKey: apiKey,
	}
	item.RetryAttempts = retryAttempts
	return item
}

func (hndl *WebhookAlertHandler) SendAlert(assistant *models.Assistant, alert *models.QuotaAlert) error {
	payload := struct {
		Assistant *models.Assistant  `json:"assistant"`
		Alert     *models.QuotaAlert `json:"alert"`
	}{Assistant: assistant, Alert: alert}

	b, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "encoding alert payload")
	}

	req, err := http.NewRequest(http.MethodPost, hndl.URL, bytes.NewBuffer(b))
	if err != nil {
		return errors.Wrap(err, "building alert request")
	}
	req.Header.Set("X-Voicedesk-Key", hndl.APIKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "posting alert webhook")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Errorf("alert webhook returned status %d", resp.StatusCode)
	}
	return nil
}
