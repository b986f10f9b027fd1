package room

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerdex-server/internal/rng"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	return logger
}

func testOptions() Options {
	opts := DefaultOptions()
	opts.Game.RNG = rng.NewSeeded(1)
	return opts
}

func drain(c *Client) []interface{} {
	var msgs []interface{}
	for {
		select {
		case msg := <-c.SendChan():
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

func lastState(t *testing.T, c *Client) *gameStatePayload {
	t.Helper()

	var state *gameStatePayload
	for _, msg := range drain(c) {
		if s, ok := msg.(*gameStatePayload); ok {
			state = s
		}
	}

	require.NotNil(t, state)
	return state
}

func TestDealer_AddClient(t *testing.T) {
	d, err := NewDealer(testLogger(), "test-uuid", testOptions())
	require.NoError(t, err)

	c := NewClient(nil)
	c2 := NewClient(nil)

	d.AddClient(c)
	d.AddClient(c2)

	assert.False(t, d.RemoveClient(c))
	assert.True(t, d.RemoveClient(c2))
}

func TestDealer_joinAndStart(t *testing.T) {
	a := assert.New(t)

	d, err := NewDealer(testLogger(), "test-uuid", testOptions())
	require.NoError(t, err)

	alice := NewClient(nil)
	bob := NewClient(nil)
	spectator := NewClient(nil)
	d.AddClient(alice)
	d.AddClient(bob)
	d.AddClient(spectator)

	alice.ReceivedMessage(&PayloadIn{Type: "startGame"})
	msgs := drain(alice)
	require.NotEmpty(t, msgs)
	errMsg, ok := msgs[len(msgs)-1].(*errorPayload)
	require.True(t, ok)
	a.Equal("at least two players with tokens are required", errMsg.Error)

	alice.ReceivedMessage(&PayloadIn{Type: "join", Name: "alice"})
	bob.ReceivedMessage(&PayloadIn{Type: "join", Name: "bob"})

	bob.ReceivedMessage(&PayloadIn{Type: "join", Name: "bob"})
	msgs = drain(bob)
	errMsg, ok = msgs[len(msgs)-1].(*errorPayload)
	require.True(t, ok)
	a.Equal("a player with that name is already seated", errMsg.Error)

	drain(alice)
	drain(spectator)

	alice.ReceivedMessage(&PayloadIn{Type: "startGame"})

	// every connection gets its own filtered snapshot
	aliceState := lastState(t, alice)
	a.Equal(2, len(aliceState.Players[0].Hand))
	a.Nil(aliceState.Players[1].Hand)

	bobState := lastState(t, bob)
	a.Nil(bobState.Players[0].Hand)
	a.Equal(2, len(bobState.Players[1].Hand))

	spectatorState := lastState(t, spectator)
	a.Nil(spectatorState.Players[0].Hand)
	a.Nil(spectatorState.Players[1].Hand)
	a.Equal(30, spectatorState.Pot)
}

func TestDealer_joinWithoutName(t *testing.T) {
	a := assert.New(t)

	d, err := NewDealer(testLogger(), "test-uuid", testOptions())
	require.NoError(t, err)

	c := NewClient(nil)
	d.AddClient(c)
	drain(c)

	// a blank name gets a generated one
	c.ReceivedMessage(&PayloadIn{Type: "join"})

	var players *playersPayload
	for _, msg := range drain(c) {
		if p, ok := msg.(*playersPayload); ok {
			players = p
		}
	}

	require.NotNil(t, players)
	require.Equal(t, 1, len(players.Players))
	a.NotEmpty(players.Players[0])
	a.Equal(players.Players[0], c.name)
}

func TestDealer_actionsAndSettlement(t *testing.T) {
	a := assert.New(t)

	d, err := NewDealer(testLogger(), "test-uuid", testOptions())
	require.NoError(t, err)

	alice := NewClient(nil)
	bob := NewClient(nil)
	d.AddClient(alice)
	d.AddClient(bob)

	alice.ReceivedMessage(&PayloadIn{Type: "join", Name: "alice"})
	bob.ReceivedMessage(&PayloadIn{Type: "join", Name: "bob"})
	alice.ReceivedMessage(&PayloadIn{Type: "startGame"})
	drain(alice)
	drain(bob)

	bob.ReceivedMessage(&PayloadIn{Type: "shove"})
	msgs := drain(bob)
	errMsg, ok := msgs[len(msgs)-1].(*errorPayload)
	require.True(t, ok)
	a.Equal("unknown action for identifier: shove", errMsg.Error)

	// out of turn: alice posted the big blind, bob acts first
	alice.ReceivedMessage(&PayloadIn{Type: "call", PlayerName: "alice"})
	msgs = drain(alice)
	errMsg, ok = msgs[len(msgs)-1].(*errorPayload)
	require.True(t, ok)
	a.Equal("it is not your turn", errMsg.Error)

	bob.ReceivedMessage(&PayloadIn{Type: "call", PlayerName: "bob"})
	bobState := lastState(t, bob)
	a.Equal(0, bobState.CurrentBet)

	alice.ReceivedMessage(&PayloadIn{Type: "check", PlayerName: "alice"})
	drain(alice)

	// bob opens the flop and alice folds the hand away
	bob.ReceivedMessage(&PayloadIn{Type: "bet", PlayerName: "bob", Amount: 50})
	alice.ReceivedMessage(&PayloadIn{Type: "fold", PlayerName: "alice"})

	var settlement *settlementPayload
	for _, msg := range drain(bob) {
		if s, ok := msg.(*settlementPayload); ok {
			settlement = s
		}
	}

	require.NotNil(t, settlement)
	a.Equal(90, settlement.Pot)
	a.Equal([]string{"bob"}, settlement.Winners)
	a.Empty(settlement.HandName)
}
