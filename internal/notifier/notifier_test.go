package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0v1x/EULERA/internal/dashboard"
	"github.com/s0v1x/EULERA/internal/session"
)

func TestSend(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bottoken/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("token", "42", "")
	tn.BaseURL = srv.URL
	require.NoError(t, tn.Send("market opened"))

	assert.Equal(t, "42", got["chat_id"])
	assert.Equal(t, "market opened", got["text"])
}

func TestSend_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("token", "42", "")
	tn.BaseURL = srv.URL
	assert.Error(t, tn.Send("hello"))
}

func TestDashboardAlerts_StatusTransitions(t *testing.T) {
	sent := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		sent <- payload["text"]
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("token", "42", "")
	tn.BaseURL = srv.URL
	alerts := NewDashboardAlerts(context.Background(), tn)

	open := &dashboard.StatusView{Status: session.Status{Label: "Market Status : Open"}}
	closed := &dashboard.StatusView{Status: session.Status{Label: "Market Status : Closed"}}

	// First observation just seeds the state, repeats are silent.
	alerts.ShowStatus(open)
	alerts.ShowStatus(open)
	// A transition sends exactly one message.
	alerts.ShowStatus(closed)

	select {
	case msg := <-sent:
		assert.Contains(t, msg, "Closed")
	case <-time.After(2 * time.Second):
		t.Fatal("expected a transition alert")
	}
	select {
	case msg := <-sent:
		t.Fatalf("unexpected extra alert: %q", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDashboardAlerts_ForecastDeduped(t *testing.T) {
	sent := make(chan string, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		sent <- payload["text"]
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tn := NewTelegramNotifier("token", "42", "")
	tn.BaseURL = srv.URL
	alerts := NewDashboardAlerts(context.Background(), tn)

	alerts.ShowForecast(&dashboard.ForecastView{Available: true, PriceLabel: "151.50"})
	alerts.ShowForecast(&dashboard.ForecastView{Available: true, PriceLabel: "151.50"})
	alerts.ShowForecast(&dashboard.ForecastView{Message: "Forecasting is not available for TSLA..."})

	select {
	case msg := <-sent:
		assert.Contains(t, msg, "151.50")
	case <-time.After(2 * time.Second):
		t.Fatal("expected a forecast alert")
	}
	select {
	case msg := <-sent:
		t.Fatalf("unexpected extra alert: %q", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
