// Package calllog fetches call records from the third-party tabular store
// that the telephony pipeline writes into. The store's response shape is
// not guaranteed, so decoding probes several layouts and field spellings.
package calllog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"voicedesk.io/accounting/models"
	"voicedesk.io/accounting/utils"
)

type Client struct {
	URL        string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(url string, apiKey string) *Client {
	return &Client{
		URL:        url,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FetchAll retrieves every call record the store returns. Transport and
// status failures are errors; a body that parses but has no recognizable
// record list degrades to an empty slice, since call logs are best-effort.
func (c *Client) FetchAll(ctx context.Context) ([]models.CallRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building call log request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling call log API")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("call log API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading call log response")
	}

	rows, ok := extractRows(body)
	if !ok {
		utils.Log(logrus.WarnLevel, "call log response had no recognizable record list")
		return []models.CallRecord{}, nil
	}

	records := make([]models.CallRecord, 0, len(rows))
	for _, row := range rows {
		raw, ok := row.(map[string]any)
		if !ok {
			continue
		}
		records = append(records, recordFromRaw(raw))
	}
	return records, nil
}

// FetchForAssistant returns the records attributed to one assistant, by
// exact id match.
func (c *Client) FetchForAssistant(ctx context.Context, assistantId string) ([]models.CallRecord, error) {
	records, err := c.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]models.CallRecord, 0, len(records))
	for _, record := range records {
		if record.AssistantId == assistantId {
			filtered = append(filtered, record)
		}
	}
	return filtered, nil
}

// extractRows locates the record list inside an arbitrary response body.
// Priority: rows, data, records, a bare top-level array, then the first
// array-valued property (keys visited in sorted order for determinism).
func extractRows(body []byte) ([]any, bool) {
	var bare []any
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, true
	}

	var wrapped map[string]any
	if err := json.Unmarshal(body, &wrapped); err != nil {
		utils.Log(logrus.WarnLevel, "call log response is not valid JSON: "+err.Error())
		return nil, false
	}

	for _, key := range []string{"rows", "data", "records"} {
		if rows, ok := wrapped[key].([]any); ok {
			return rows, true
		}
	}

	keys := make([]string, 0, len(wrapped))
	for key := range wrapped {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if rows, ok := wrapped[key].([]any); ok {
			return rows, true
		}
	}

	return nil, false
}

// recordFromRaw normalizes the store's field-name spellings into one
// CallRecord. Some schema revisions nest the fields under a "field" object;
// nested values win over top-level ones.
func recordFromRaw(raw map[string]any) models.CallRecord {
	merged := raw
	if nested, ok := raw["field"].(map[string]any); ok {
		merged = make(map[string]any, len(raw)+len(nested))
		for k, v := range raw {
			merged[k] = v
		}
		for k, v := range nested {
			merged[k] = v
		}
	}

	pick := func(keys ...string) string {
		for _, key := range keys {
			if v, ok := merged[key].(string); ok && v != "" {
				return v
			}
		}
		return ""
	}

	return models.CallRecord{
		AssistantId: pick("Assistant ID", "assistantId", "assistant_id"),
		CreatedAt:   pick("Created At", "createdAt", "created_at"),
		StartTime:   pick("Start Time", "startTime", "start_time"),
		EndTime:     pick("End Time", "endTime", "end_time"),
		EndedReason: pick("Ended Reason", "ended reason", "endedReason", "ended_reason"),
		Duration:    pick("Duration", "duration"),
	}
}
