package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	tinybutton "github.com/callebjorkell/tiny-button"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent(kind tinybutton.Kind) tinybutton.Event {
	return tinybutton.Event{
		Kind:    kind,
		Channel: "GPIO20",
		At:      time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}
}

func TestNotifyPostsEvent(t *testing.T) {
	var got payload
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer server.Close()

	n := New([]Target{{Url: server.URL, Token: "hunter2"}})
	require.NoError(t, n.Notify(testEvent(tinybutton.Click)))

	assert.Equal(t, "Bearer hunter2", auth)
	assert.Equal(t, "GPIO20", got.Channel)
	assert.Equal(t, "click", got.Event)
	assert.Equal(t, "2026-08-31T12:00:00Z", got.Timestamp)
}

func TestNotifyWithoutToken(t *testing.T) {
	var auth *string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a := r.Header.Get("Authorization")
		auth = &a
	}))
	defer server.Close()

	n := New([]Target{{Url: server.URL}})
	require.NoError(t, n.Notify(testEvent(tinybutton.Click)))

	require.NotNil(t, auth)
	assert.Empty(t, *auth)
}

func TestNotifyFiltersEvents(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	n := New([]Target{{Url: server.URL, Events: []string{"long_press"}}})

	require.NoError(t, n.Notify(testEvent(tinybutton.Click)))
	assert.Equal(t, 0, calls, "unsubscribed events must be skipped")

	require.NoError(t, n.Notify(testEvent(tinybutton.LongPress)))
	assert.Equal(t, 1, calls)
}

func TestNotifyReturnsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	n := New([]Target{{Url: server.URL}})
	assert.Error(t, n.Notify(testEvent(tinybutton.Click)))
}

func TestNotifyTriesAllTargets(t *testing.T) {
	calls := 0
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer good.Close()
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()

	n := New([]Target{{Url: bad.URL}, {Url: good.URL}})

	assert.Error(t, n.Notify(testEvent(tinybutton.DoubleClick)))
	assert.Equal(t, 1, calls, "a failing target must not stop delivery to the rest")
}
