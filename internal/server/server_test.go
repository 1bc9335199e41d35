package server

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestClientReceivesLatestThenStream(t *testing.T) {
	m := NewMonitor()
	srv := httptest.NewServer(m)
	defer srv.Close()

	first := Update{Step: 10, X: 3, Y: 4, Heading: "west", Marked: 7}
	m.Publish(first)

	conn := dial(t, srv)
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var got Update
	require.NoError(t, conn.ReadJSON(&got))
	require.Equal(t, first, got, "a new client should see the latest update immediately")

	// the first read proves the subscription is live, so this must arrive
	second := Update{Step: 11, X: 2, Y: 4, Heading: "south", Marked: 8, Halted: true}
	m.Publish(second)

	require.NoError(t, conn.ReadJSON(&got))
	require.Equal(t, second, got)
}

func TestFreshMonitorSendsNothingUntilPublish(t *testing.T) {
	m := NewMonitor()
	srv := httptest.NewServer(m)
	defer srv.Close()

	conn := dial(t, srv)
	conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))

	var got Update
	err := conn.ReadJSON(&got)
	require.Error(t, err, "no update was published, nothing should arrive")
}

func TestPublishDoesNotBlockOnSlowClient(t *testing.T) {
	m := NewMonitor()
	srv := httptest.NewServer(m)
	defer srv.Close()

	conn := dial(t, srv)
	var got Update
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	// over-fill the per-client buffer without the client reading
	m.Publish(Update{Step: 0})
	require.NoError(t, conn.ReadJSON(&got)) // wait until subscribed
	done := make(chan struct{})
	go func() {
		for i := 1; i <= sendBuffer*3; i++ {
			m.Publish(Update{Step: i})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Publish blocked on a slow client")
	}
}
