package calllog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func logServer(t *testing.T, apiKey string, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, apiKey, r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestFetchAll(t *testing.T) {
	t.Parallel()

	t.Run("Should read records from the rows property", func(t *testing.T) {
		t.Parallel()

		server := logServer(t, "k1", `{"rows":[{"Assistant ID":"a1","Duration":"1min 30sec","Ended Reason":"completed"}]}`)
		defer server.Close()

		client := NewClient(server.URL, "k1")
		records, err := client.FetchAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "a1", records[0].AssistantId)
		assert.Equal(t, "1min 30sec", records[0].Duration)
		assert.Equal(t, "completed", records[0].EndedReason)
	})

	t.Run("Should fall back through data and records properties", func(t *testing.T) {
		t.Parallel()

		for _, body := range []string{
			`{"data":[{"assistantId":"a2","duration":"0.5"}]}`,
			`{"records":[{"assistant_id":"a2","duration":"0.5"}]}`,
		} {
			server := logServer(t, "k1", body)
			client := NewClient(server.URL, "k1")
			records, err := client.FetchAll(context.Background())
			server.Close()

			assert.NoError(t, err)
			assert.Len(t, records, 1)
			assert.Equal(t, "a2", records[0].AssistantId)
		}
	})

	t.Run("Should accept a bare top-level array", func(t *testing.T) {
		t.Parallel()

		server := logServer(t, "k1", `[{"assistantId":"a3","duration":"2:00"}]`)
		defer server.Close()

		client := NewClient(server.URL, "k1")
		records, err := client.FetchAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "a3", records[0].AssistantId)
	})

	t.Run("Should find the first array-valued property as a last resort", func(t *testing.T) {
		t.Parallel()

		server := logServer(t, "k1", `{"meta":{"count":1},"table1":[{"assistantId":"a4","duration":"3"}]}`)
		defer server.Close()

		client := NewClient(server.URL, "k1")
		records, err := client.FetchAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "a4", records[0].AssistantId)
	})

	t.Run("Should prefer nested field object values", func(t *testing.T) {
		t.Parallel()

		server := logServer(t, "k1", `{"rows":[{"id":"row1","field":{"Assistant ID":"a5","Duration":"0min 45sec"}}]}`)
		defer server.Close()

		client := NewClient(server.URL, "k1")
		records, err := client.FetchAll(context.Background())
		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.Equal(t, "a5", records[0].AssistantId)
		assert.Equal(t, "0min 45sec", records[0].Duration)
	})

	t.Run("Should degrade to empty on unrecognizable body", func(t *testing.T) {
		t.Parallel()

		server := logServer(t, "k1", `{"message":"no tables here"}`)
		defer server.Close()

		client := NewClient(server.URL, "k1")
		records, err := client.FetchAll(context.Background())
		assert.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("Should error on non-2xx status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := NewClient(server.URL, "k1")
		_, err := client.FetchAll(context.Background())
		assert.Error(t, err)
	})
}

func TestFetchForAssistant(t *testing.T) {
	t.Parallel()

	server := logServer(t, "k1", `{"rows":[
		{"Assistant ID":"mine","Duration":"1min 0sec"},
		{"Assistant ID":"MINE","Duration":"2min 0sec"},
		{"Assistant ID":"other","Duration":"3min 0sec"}
	]}`)
	defer server.Close()

	client := NewClient(server.URL, "k1")
	records, err := client.FetchForAssistant(context.Background(), "mine")
	assert.NoError(t, err)
	// exact match only; casing differences are the analytics fetcher's problem
	assert.Len(t, records, 1)
	assert.Equal(t, "1min 0sec", records[0].Duration)
}
