package voiceapi

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func analyticsServer(t *testing.T, tuples []usageTuple) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analytics", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var query struct {
			Queries []analyticsQuery `json:"queries"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&query))
		assert.Len(t, query.Queries, 1)
		assert.Equal(t, "call", query.Queries[0].Table)
		assert.Equal(t, []string{"assistantId"}, query.Queries[0].GroupBy)

		payload := []map[string]any{{"result": tuples}}
		_ = json.NewEncoder(w).Encode(payload)
	}))
}

func TestUsageMinutes(t *testing.T) {
	t.Parallel()

	t.Run("Should return exact match", func(t *testing.T) {
		t.Parallel()

		server := analyticsServer(t, []usageTuple{
			{AssistantId: "other", SumDuration: 99},
			{AssistantId: "ABC", SumDuration: 12},
		})
		defer server.Close()

		client := NewClient(server.URL, "test-key")
		minutes, err := client.UsageMinutes(context.Background(), "ABC")
		assert.NoError(t, err)
		assert.Equal(t, 12.0, minutes)
	})

	t.Run("Should fall back to case insensitive match", func(t *testing.T) {
		t.Parallel()

		server := analyticsServer(t, []usageTuple{
			{AssistantId: "ABC", SumDuration: 12},
		})
		defer server.Close()

		client := NewClient(server.URL, "test-key")
		minutes, err := client.UsageMinutes(context.Background(), "abc")
		assert.NoError(t, err)
		assert.Equal(t, 12.0, minutes)
	})

	t.Run("Should guess first non-zero tuple when nothing matches", func(t *testing.T) {
		t.Parallel()

		server := analyticsServer(t, []usageTuple{
			{AssistantId: "x", SumDuration: 0},
			{AssistantId: "y", SumDuration: 7},
			{AssistantId: "z", SumDuration: 3},
		})
		defer server.Close()

		client := NewClient(server.URL, "test-key")
		minutes, err := client.UsageMinutes(context.Background(), "missing")
		assert.NoError(t, err)
		assert.Equal(t, 7.0, minutes)
	})

	t.Run("Should not guess when fuzzy matching is disabled", func(t *testing.T) {
		t.Parallel()

		server := analyticsServer(t, []usageTuple{
			{AssistantId: "ABC", SumDuration: 12},
			{AssistantId: "y", SumDuration: 7},
		})
		defer server.Close()

		client := NewClient(server.URL, "test-key")
		client.AllowFuzzyUsageMatch = false

		minutes, err := client.UsageMinutes(context.Background(), "abc")
		assert.NoError(t, err)
		assert.Equal(t, 0.0, minutes)
	})

	t.Run("Should return zero for empty result set", func(t *testing.T) {
		t.Parallel()

		server := analyticsServer(t, []usageTuple{})
		defer server.Close()

		client := NewClient(server.URL, "test-key")
		minutes, err := client.UsageMinutes(context.Background(), "abc")
		assert.NoError(t, err)
		assert.Equal(t, 0.0, minutes)
	})

	t.Run("Should error on upstream failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL, "test-key")
		minutes, err := client.UsageMinutes(context.Background(), "abc")
		assert.Error(t, err)
		assert.Equal(t, 0.0, minutes)
	})
}

func TestCreateAssistant(t *testing.T) {
	t.Parallel()

	t.Run("Should sign the body and return the new assistant id", func(t *testing.T) {
		t.Parallel()

		const key = "creation-key"

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/assistant", r.URL.Path)
			assert.Equal(t, "Bearer "+key, r.Header.Get("Authorization"))

			body, err := io.ReadAll(r.Body)
			assert.NoError(t, err)

			mac := hmac.New(sha256.New, []byte(key))
			mac.Write(body)
			assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), r.Header.Get(SignatureHeader))

			var request CreateAssistantRequest
			assert.NoError(t, json.Unmarshal(body, &request))
			assert.Equal(t, "Riverside Landscaping", request.Name)
			assert.Equal(t, "openai", request.Model.Provider)
			assert.Equal(t, "deepgram", request.Transcriber.Provider)

			_ = json.NewEncoder(w).Encode(map[string]string{"id": "asst_123"})
		}))
		defer server.Close()

		client := NewClient(server.URL, key)
		resp, err := client.CreateAssistant(context.Background(), &CreateAssistantRequest{
			Name:         "Riverside Landscaping",
			FirstMessage: "It's a great day at Riverside Landscaping! How can I help you?",
			Model: ModelConfig{
				Provider:    "openai",
				Model:       "gpt-3.5-turbo",
				Temperature: 0.7,
				Messages:    []ModelMessage{{Role: "system", Content: "You are a receptionist."}},
			},
			Transcriber: TranscriberConfig{Provider: "deepgram", Model: "nova-2", Language: "en-US"},
			Voice:       VoiceConfig{Provider: "playht", VoiceId: "jennifer"},
		})
		assert.NoError(t, err)
		assert.Equal(t, "asst_123", resp.Id)
	})

	t.Run("Should surface API-reported error messages", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "voice id not found"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "key")
		_, err := client.CreateAssistant(context.Background(), &CreateAssistantRequest{})
		assert.EqualError(t, err, "voice id not found")
	})

	t.Run("Should fail on error field even with 2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "quota exceeded"})
		}))
		defer server.Close()

		client := NewClient(server.URL, "key")
		_, err := client.CreateAssistant(context.Background(), &CreateAssistantRequest{})
		assert.EqualError(t, err, "quota exceeded")
	})
}

func TestValidateKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/voices", r.URL.Path)
		if r.Header.Get("Authorization") == "Bearer good" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, "unused")
	assert.True(t, client.ValidateKey(context.Background(), "good"))
	assert.False(t, client.ValidateKey(context.Background(), "bad"))
}
