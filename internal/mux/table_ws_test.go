package mux

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTable(t *testing.T, wsURL, uuid string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"/table/"+uuid+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = conn.Close()
	})

	return conn
}

func TestTableWebSocket(t *testing.T) {
	a := assert.New(t)
	ts := testServer(t)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")

	var created tableResponse
	assertPost(t, ts, "/table", &created, http.StatusCreated)

	alice := dialTable(t, wsURL, created.UUID)
	msg := readMessage(t, alice)
	a.Equal("updatePlayers", msg["type"])
	a.Equal([]interface{}{}, msg["players"])

	require.NoError(t, alice.WriteJSON(map[string]interface{}{"type": "join", "name": "alice"}))
	msg = readUntil(t, alice, "updatePlayers")
	a.Equal([]interface{}{"alice"}, msg["players"])

	bob := dialTable(t, wsURL, created.UUID)
	require.NoError(t, bob.WriteJSON(map[string]interface{}{"type": "join", "name": "bob"}))
	readUntil(t, bob, "updatePlayers")

	require.NoError(t, alice.WriteJSON(map[string]interface{}{"type": "startGame"}))
	readUntil(t, alice, "startGame")

	state := readUntil(t, alice, "updateGameState")
	players, ok := state["players"].([]interface{})
	require.True(t, ok)
	require.Equal(t, 2, len(players))

	// alice sees her own hole cards and nobody else's
	self := players[0].(map[string]interface{})
	other := players[1].(map[string]interface{})
	a.Equal("alice", self["name"])
	a.Equal(2, len(self["hand"].([]interface{})))
	_, leaked := other["hand"]
	a.False(leaked)

	a.Equal(float64(30), state["pot"])

	// bob's copy of the same update hides alice's cards
	state = readUntil(t, bob, "updateGameState")
	players = state["players"].([]interface{})
	_, leaked = players[0].(map[string]interface{})["hand"]
	a.False(leaked)
}

func TestTableWebSocket_errors(t *testing.T) {
	a := assert.New(t)
	ts := testServer(t)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")

	var created tableResponse
	assertPost(t, ts, "/table", &created, http.StatusCreated)

	conn := dialTable(t, wsURL, created.UUID)
	readMessage(t, conn) // updatePlayers

	require.NoError(t, conn.WriteJSON(map[string]interface{}{"type": "startGame"}))
	msg := readUntil(t, conn, "error")
	a.Equal("at least two players with tokens are required", msg["error"])
}
