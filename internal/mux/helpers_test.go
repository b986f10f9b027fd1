package mux

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"pokerdex-server/internal/rng"
	"pokerdex-server/pkg/room"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	opts := room.DefaultOptions()
	opts.Game.RNG = rng.NewSeeded(1)

	ts := httptest.NewServer(NewMux("test", room.NewPitBoss(logger, opts)))
	t.Cleanup(ts.Close)

	return ts
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, statusCode, resp.StatusCode)

	if respObj != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(respObj))
	}
}

func assertPost(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := http.Post(ts.URL+path, "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, statusCode, resp.StatusCode)

	if respObj != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(respObj))
	}
}

func readMessage(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second*5)))

	var msg map[string]interface{}
	require.NoError(t, conn.ReadJSON(&msg))

	return msg
}

// readUntil drains messages until one of the wanted type arrives
func readUntil(t *testing.T, conn *websocket.Conn, msgType string) map[string]interface{} {
	t.Helper()

	for i := 0; i < 20; i++ {
		msg := readMessage(t, conn)
		if msg["type"] == msgType {
			return msg
		}
	}

	t.Fatalf("did not receive a %q message", msgType)
	return nil
}
