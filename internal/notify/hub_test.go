package notify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gorilla/websocket"
	errorvalues "github.com/limbo/rexfit/internal/error_values"
	"github.com/limbo/rexfit/internal/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server, header http.Header) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) notify.Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev notify.Event
	require.NoError(t, sonic.Unmarshal(data, &ev))
	return ev
}

func TestHubPermissionFollowsSubscribers(t *testing.T) {
	hub := notify.NewHub([]string{"*"}, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	ctx := context.Background()

	perm, err := hub.RequestPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, notify.PermissionDenied, perm)
	assert.ErrorIs(t, hub.Notify(ctx, "Rex", "anyone?"), errorvalues.ErrPermissionDenied)

	conn := dial(t, srv, nil)
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)
	perm, err = hub.RequestPermission(ctx)
	require.NoError(t, err)
	assert.Equal(t, notify.PermissionGranted, perm)

	require.NoError(t, hub.Notify(ctx, "Rex: Great Job!", "You crushed today's workout!"))
	ev := readEvent(t, conn)
	assert.Equal(t, notify.EventNotification, ev.Type)
	assert.Equal(t, "Rex: Great Job!", ev.Title)
	assert.Equal(t, "You crushed today's workout!", ev.Body)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Subscribers() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, notify.PermissionDenied, hub.Permission())
}

func TestHubPublishFansOut(t *testing.T) {
	hub := notify.NewHub([]string{"*"}, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	first := dial(t, srv, nil)
	defer first.Close()
	second := dial(t, srv, nil)
	defer second.Close()
	require.Eventually(t, func() bool { return hub.Subscribers() == 2 }, 2*time.Second, 10*time.Millisecond)

	n, err := hub.Publish(notify.Event{Type: notify.EventTimer, Data: map[string]int{"remaining": 42}})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	for _, conn := range []*websocket.Conn{first, second} {
		ev := readEvent(t, conn)
		assert.Equal(t, notify.EventTimer, ev.Type)
		assert.Equal(t, map[string]any{"remaining": float64(42)}, ev.Data)
	}
}

func TestHubRejectsForeignOrigin(t *testing.T) {
	hub := notify.NewHub([]string{"http://localhost:5173"}, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"http://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	conn := dial(t, srv, http.Header{"Origin": []string{"http://localhost:5173"}})
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestHubClose(t *testing.T) {
	hub := notify.NewHub([]string{"*"}, nil)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv, nil)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Subscribers() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Close())
	assert.Zero(t, hub.Subscribers())
	_, err := hub.RequestPermission(context.Background())
	assert.ErrorIs(t, err, errorvalues.ErrNotificationsUnsupported)
}

func TestLogNotifier(t *testing.T) {
	n := notify.NewLogNotifier(nil)
	perm, err := n.RequestPermission(context.Background())
	require.NoError(t, err)
	assert.Equal(t, notify.PermissionGranted, perm)
	assert.NoError(t, n.Notify(context.Background(), "Rex", "hello"))
}
