package voiceapi

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"voicedesk.io/accounting/utils"
)

// DefaultPublicKey is the fallback key for the embedded live-call widget
// when no environment value is configured.
const DefaultPublicKey = "0f7df2a1-4c83-4e6f-9d2a-6b1f0c9e5a77"

// SignatureHeader carries the hex HMAC-SHA256 of the serialized request body.
const SignatureHeader = "Voicedesk-Signature"

// Client talks to the hosted voice-assistant provider: assistant
// provisioning, key validation and aggregate usage analytics. Construct it
// explicitly and pass it in; there is deliberately no package-level
// instance.
type Client struct {
	BaseURL    string
	PrivateKey string
	PublicKey  string
	HTTPClient *http.Client

	// AllowFuzzyUsageMatch enables the case-insensitive and
	// first-non-zero tiers of usage matching. The upstream analytics
	// store is known to return inconsistently cased assistant ids; exact
	// matching alone under-reports usage for those tenants.
	AllowFuzzyUsageMatch bool

	// Analytics aggregation window.
	WindowStart time.Time
	WindowEnd   time.Time
}

func NewClient(baseURL string, privateKey string) *Client {
	return &Client{
		BaseURL:              strings.TrimRight(baseURL, "/"),
		PrivateKey:           privateKey,
		PublicKey:            DefaultPublicKey,
		HTTPClient:           &http.Client{Timeout: 30 * time.Second},
		AllowFuzzyUsageMatch: true,
		WindowStart:          time.Now().AddDate(0, -1, 0).UTC().Truncate(24 * time.Hour),
		WindowEnd:            time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour),
	}
}

type ModelMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ModelConfig struct {
	Provider    string         `json:"provider"`
	Model       string         `json:"model"`
	Temperature float64        `json:"temperature"`
	Messages    []ModelMessage `json:"messages"`
}

type TranscriberConfig struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Language string `json:"language"`
}

type VoiceConfig struct {
	Provider string `json:"provider"`
	VoiceId  string `json:"voiceId"`
}

type CreateAssistantRequest struct {
	Name         string            `json:"name"`
	FirstMessage string            `json:"firstMessage"`
	Model        ModelConfig       `json:"model"`
	Transcriber  TranscriberConfig `json:"transcriber"`
	Voice        VoiceConfig       `json:"voice"`
}

type CreateAssistantResponse struct {
	Id string `json:"id"`
}

// CreateAssistant provisions a new assistant. The serialized body is signed
// with HMAC-SHA256 under the private key and the digest rides alongside the
// bearer token. A non-2xx status or an API-reported error field both count
// as failure.
func (c *Client) CreateAssistant(ctx context.Context, request *CreateAssistantRequest) (*CreateAssistantResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "encoding assistant request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/assistant", bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.Wrap(err, "building assistant request")
	}
	req.Header.Set("Authorization", "Bearer "+c.PrivateKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(SignatureHeader, c.SignBody(body))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling provisioning API")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading provisioning response")
	}

	var payload struct {
		Id      string `json:"id"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	_ = json.Unmarshal(respBody, &payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || payload.Error != "" {
		message := payload.Message
		if message == "" {
			message = payload.Error
		}
		if message == "" {
			message = fmt.Sprintf("API error: %d", resp.StatusCode)
		}
		return nil, errors.New(message)
	}

	return &CreateAssistantResponse{Id: payload.Id}, nil
}

// SignBody returns the hex HMAC-SHA256 digest of body under the private key.
func (c *Client) SignBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(c.PrivateKey))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidateKey reports whether an API key is accepted by the provider. Any
// transport failure counts as invalid.
func (c *Client) ValidateKey(ctx context.Context, apiKey string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/voices", nil)
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		utils.Log(logrus.WarnLevel, "key validation failed: "+err.Error())
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode <= 299
}

type analyticsOperation struct {
	Operation string `json:"operation"`
	Column    string `json:"column"`
}

type analyticsTimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type analyticsQuery struct {
	Table      string               `json:"table"`
	GroupBy    []string             `json:"groupBy"`
	Name       string               `json:"name"`
	TimeRange  analyticsTimeRange   `json:"timeRange"`
	Operations []analyticsOperation `json:"operations"`
}

type usageTuple struct {
	AssistantId string  `json:"assistantId"`
	SumDuration float64 `json:"sumDuration"`
}

// UsageMinutes queries the analytics endpoint for the summed call duration
// grouped by assistant id over the client's window, then matches the
// requested assistant against the result set. Matching tiers, first hit
// wins: exact, case-insensitive, first non-zero tuple (the last two only
// when AllowFuzzyUsageMatch is set). No match at all yields 0.
func (c *Client) UsageMinutes(ctx context.Context, assistantId string) (float64, error) {
	query := struct {
		Queries []analyticsQuery `json:"queries"`
	}{
		Queries: []analyticsQuery{
			{
				Table:   "call",
				GroupBy: []string{"assistantId"},
				Name:    "UsageAnalytics",
				TimeRange: analyticsTimeRange{
					Start: c.WindowStart.Format(time.RFC3339),
					End:   c.WindowEnd.Format(time.RFC3339),
				},
				Operations: []analyticsOperation{
					{Operation: "sum", Column: "duration"},
				},
			},
		},
	}

	body, err := json.Marshal(query)
	if err != nil {
		return 0, errors.Wrap(err, "encoding analytics query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/analytics", bytes.NewBuffer(body))
	if err != nil {
		return 0, errors.Wrap(err, "building analytics request")
	}
	req.Header.Set("Authorization", "Bearer "+c.PrivateKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "calling analytics API")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, errors.Errorf("analytics API returned status %d", resp.StatusCode)
	}

	var payload []struct {
		Result []usageTuple `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, errors.Wrap(err, "decoding analytics response")
	}
	if len(payload) == 0 {
		return 0, nil
	}

	return c.matchUsage(payload[0].Result, assistantId), nil
}

func (c *Client) matchUsage(results []usageTuple, assistantId string) float64 {
	for _, item := range results {
		if item.AssistantId == assistantId {
			return item.SumDuration
		}
	}

	if !c.AllowFuzzyUsageMatch {
		return 0
	}

	for _, item := range results {
		if strings.EqualFold(item.AssistantId, assistantId) {
			return item.SumDuration
		}
	}

	// Last resort: the first tuple with any recorded usage. Documented as
	// unreliable; it exists because some upstream rows carry rewritten ids.
	for _, item := range results {
		if item.SumDuration > 0 {
			utils.Log(logrus.WarnLevel, fmt.Sprintf("no usage match for assistant %s, guessing first non-zero tuple %s", assistantId, item.AssistantId))
			return item.SumDuration
		}
	}

	return 0
}
