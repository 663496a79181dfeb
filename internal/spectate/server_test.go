package spectate

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-arcade/internal/app"
	"go-space-arcade/internal/logger"
)

type fakeSource struct {
	snap atomic.Pointer[app.Snapshot]
}

func (f *fakeSource) Snapshot() *app.Snapshot { return f.snap.Load() }

func newSource(tick uint64) *fakeSource {
	f := &fakeSource{}
	f.snap.Store(&app.Snapshot{Tick: tick, Phase: "running", Progress: app.ProgressView{Level: 2, Lives: 3}})
	return f
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	u := "ws" + strings.TrimPrefix(url, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestWebSocketStreamsSnapshots(t *testing.T) {
	source := newSource(1)
	s := NewServer("", source, 10*time.Millisecond, logger.Nop())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()
	defer s.Close()

	conn := dial(t, ts.URL)

	var got app.Snapshot
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, uint64(1), got.Tick)
	assert.Equal(t, 2, got.Progress.Level)

	source.snap.Store(&app.Snapshot{Tick: 7, Phase: "game_over"})
	require.NoError(t, conn.ReadJSON(&got))
	assert.Equal(t, uint64(7), got.Tick)
	assert.Equal(t, "game_over", got.Phase)
}

func TestCloseSendsGoingAway(t *testing.T) {
	s := NewServer("", newSource(1), 10*time.Millisecond, logger.Nop())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	conn := dial(t, ts.URL)
	var got app.Snapshot
	require.NoError(t, conn.ReadJSON(&got))

	s.Close()
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "unexpected error: %v", err)
			break
		}
	}
}

func TestHealthAndSnapshotEndpoints(t *testing.T) {
	s := NewServer("", newSource(42), 0, logger.Nop())
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var h health
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&h))
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, uint64(42), h.Tick)
	assert.Equal(t, int64(0), h.Clients)

	resp2, err := http.Get(ts.URL + "/snapshot")
	require.NoError(t, err)
	defer resp2.Body.Close()
	var snap app.Snapshot
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&snap))
	assert.Equal(t, uint64(42), snap.Tick)
}

func TestSnapshotEndpointWithoutData(t *testing.T) {
	s := NewServer("", &fakeSource{}, 0, logger.Nop())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/snapshot", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := NewServer("", newSource(1), 0, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
