package push

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/headmetal/headware-backend/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(config.PushConfig{
		Endpoint: srv.URL,
		APIKey:   "test-key",
		Timeout:  5 * time.Second,
	}, slog.Default())
}

func TestNotifyTopic_Success(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message_id": 123}`))
	})

	err := client.NotifyTopic(context.Background(), "W1", "fall accident reported", "victim: Kim (U1)")
	if err != nil {
		t.Fatalf("NotifyTopic() error: %v", err)
	}

	if gotAuth != "key=test-key" {
		t.Errorf("authorization: got %q", gotAuth)
	}
	if gotBody["to"] != "/topics/W1" {
		t.Errorf("to: got %v, want /topics/W1", gotBody["to"])
	}
	n, ok := gotBody["notification"].(map[string]any)
	if !ok || n["title"] != "fall accident reported" {
		t.Errorf("notification: got %v", gotBody["notification"])
	}
}

func TestNotifyTopic_HTTPError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	if err := client.NotifyTopic(context.Background(), "W1", "t", "b"); err == nil {
		t.Fatal("expected error for 401 response")
	}
}

func TestNotifyTopic_RejectedSend(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "InvalidApiKey"}`))
	})

	if err := client.NotifyTopic(context.Background(), "W1", "t", "b"); err == nil {
		t.Fatal("expected error for rejected send")
	}
}

func TestNotifyTopic_ContextCanceled(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := client.NotifyTopic(ctx, "W1", "t", "b"); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
