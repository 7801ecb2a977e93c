package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"smart-scheduler/pkg/gcalendar"
)

// rewriteTransport redirects every request to the fake API server.
type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newFakeAPIClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return client
}

func TestNewClientFromCredentials(t *testing.T) {
	t.Run("Broken JSON", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected parse failure on non service account JSON")
		}
	})

	t.Run("Broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		if err := os.WriteFile(path, []byte(`{"broken":true}`), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path); err == nil {
			t.Errorf("expected failure loading broken credentials")
		}
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "no-such-credentials.json")
		if err == nil {
			t.Errorf("expected read error for missing file")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newFakeAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"summary": "belajar golang",
					"htmlLink": "https://calendar.google.com/event-uri",
					"status": "confirmed"
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "belajar golang",
			StartTime: start,
			EndTime:   start.Add(2 * time.Hour),
			Timezone:  "Asia/Jakarta",
		})
		if err != nil {
			t.Fatalf("create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("HtmlLink = %q", event.HtmlLink)
		}
		if event.ID != "event-123" {
			t.Errorf("ID = %q", event.ID)
		}
	})

	t.Run("API error", func(t *testing.T) {
		client := newFakeAPIClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "primary",
			Summary:    "meeting tim",
		})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})
}
