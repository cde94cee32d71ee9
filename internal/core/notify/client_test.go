package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	return c
}

func respondJSON(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	_, err := NewClient("/api")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not absolute")
}

func TestClient_Endpoint(t *testing.T) {
	c, err := NewClient("http://example.test/app/")
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/app/api/notifications", c.Endpoint())

	c, err = NewClient("http://example.test", WithPath("/v2/notifs"))
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/v2/notifs", c.Endpoint())
}

func TestClient_Fetch_SendsGET(t *testing.T) {
	var gotMethod, gotPath, gotAccept, gotUA string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := c.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/notifications", gotPath)
	assert.Equal(t, "application/json", gotAccept)
	assert.Equal(t, "notifbadge", gotUA)
}

func TestClient_Fetch_Arrays(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "empty", body: `[]`, want: 0},
		{name: "single object", body: `[{"id":1}]`, want: 1},
		{name: "mixed records", body: `[1, "two", {"id":"3"}, null]`, want: 4},
		{name: "surrounding whitespace", body: "\n  [{}, {}]  \n", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, respondJSON(http.StatusOK, tt.body))

			list, err := c.Fetch(context.Background())
			require.NoError(t, err)
			require.NotNil(t, list)
			assert.Equal(t, tt.want, list.Len())
		})
	}
}

func TestClient_Fetch_DecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "object", body: `{"count":3}`, wantMsg: "object"},
		{name: "null", body: `null`, wantMsg: "null"},
		{name: "number", body: `42`, wantMsg: "number"},
		{name: "string", body: `"nope"`, wantMsg: "string"},
		{name: "html", body: `<html></html>`, wantMsg: "invalid JSON"},
		{name: "empty body", body: ``, wantMsg: "empty body"},
		{name: "truncated array", body: `[{"id":1}`, wantMsg: "decode list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, respondJSON(http.StatusOK, tt.body))

			list, err := c.Fetch(context.Background())
			require.Error(t, err)
			assert.Nil(t, list)
			assert.True(t, IsDecode(err))
			assert.False(t, IsTransport(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestClient_Fetch_ServerError(t *testing.T) {
	c := newTestClient(t, respondJSON(http.StatusInternalServerError, `[{"id":1}]`))

	_, err := c.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusInternalServerError, fe.StatusCode)
	assert.Equal(t, c.Endpoint(), fe.Endpoint)
}

func TestClient_Fetch_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(respondJSON(http.StatusOK, `[]`))
	url := srv.URL
	srv.Close()

	c, err := NewClient(url)
	require.NoError(t, err)

	_, err = c.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Zero(t, fe.StatusCode)
}

func TestClient_Fetch_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(block)
		srv.Close()
	})

	c, err := NewClient(srv.URL, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = c.Fetch(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransport(err))
}

func TestClient_MarkRead(t *testing.T) {
	var gotMethod, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"success": true}`))
	})

	err := c.MarkRead(context.Background(), "NOTIF-20250101-ab cd")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/notifications/read/NOTIF-20250101-ab%20cd", gotPath)
}

func TestClient_MarkRead_NotAcknowledged(t *testing.T) {
	c := newTestClient(t, respondJSON(http.StatusOK, `{"success": false}`))

	err := c.MarkRead(context.Background(), "NOTIF-1")
	require.ErrorIs(t, err, ErrNotAcknowledged)
}

func TestClient_MarkRead_EmptyID(t *testing.T) {
	c := newTestClient(t, respondJSON(http.StatusOK, `{"success": true}`))

	err := c.MarkRead(context.Background(), "")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "id is required"))
}

func TestList_Notifications(t *testing.T) {
	list := List{
		[]byte(`{"id":"NOTIF-1","message":"hello","recipient_role":"committee","is_read":false}`),
		[]byte(`{"id":"NOTIF-2","message":"world","req_id":"REQ-9"}`),
	}

	got, err := list.Notifications()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "NOTIF-1", got[0].ID)
	assert.Equal(t, "committee", got[0].RecipientRole)
	assert.Equal(t, "REQ-9", got[1].ReqID)
}

func TestList_Notifications_RejectsScalar(t *testing.T) {
	list := List{[]byte(`{"id":"NOTIF-1"}`), []byte(`7`)}

	_, err := list.Notifications()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notification 1")
}
