package texasholdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokerdex-server/pkg/deck"
)

func TestGame_Snapshot_holeCardPrivacy(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, 1000, 1000, 1000)
	require.NoError(t, g.StartHand())

	own := g.Snapshot("player-1")
	a.Equal(2, len(own.Players[0].Hand))
	a.Equal("", own.Players[0].HandName)
	a.Nil(own.Players[1].Hand)
	a.Nil(own.Players[2].Hand)

	spectator := g.Snapshot("")
	for _, ps := range spectator.Players {
		a.Nil(ps.Hand)
	}

	// pot display includes live bets so the table never looks short
	a.Equal(30, own.Pot)
	a.Equal(20, own.CurrentBet)
	a.Equal(0, own.CurrentPlayerIndex)
	a.Equal(RoundPreFlop, own.Round)
}

func TestGame_Snapshot_showdownReveals(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, 1000, 1000)
	require.NoError(t, g.StartHand())

	a.NoError(g.Call("player-2"))
	a.NoError(g.Check("player-1"))

	for g.round.isBetting() {
		turn, err := g.CurrentTurn()
		require.NoError(t, err)
		require.NoError(t, g.Check(turn.Name()))
	}

	a.Equal(RoundShowdown, g.round)

	spectator := g.Snapshot("")
	a.Equal(-1, spectator.CurrentPlayerIndex)
	a.Equal(5, len(spectator.TableCards))
	for _, ps := range spectator.Players {
		a.Equal(2, len(ps.Hand))
		a.NotEmpty(ps.HandName)
	}
}

func TestGame_Snapshot_foldWinRevealsNothing(t *testing.T) {
	a := assert.New(t)

	g := testGame(t, 1000, 1000)
	require.NoError(t, g.StartHand())
	require.NoError(t, g.Fold("player-2"))

	spectator := g.Snapshot("")
	a.Equal(RoundWaiting, spectator.Round)
	for _, ps := range spectator.Players {
		a.Nil(ps.Hand)
		a.Empty(ps.HandName)
	}
	a.Equal(StatusFolded, spectator.Players[1].Status)
}

func TestPlayerSnapshot_json(t *testing.T) {
	a := assert.New(t)

	ps := PlayerSnapshot{
		Name:       "alice",
		Tokens:     980,
		Hand:       deck.CardsFromString("14s,14h"),
		CurrentBet: 20,
		Status:     StatusActive,
	}

	b, err := json.Marshal(ps)
	require.NoError(t, err)
	a.JSONEq(`{
		"name": "alice",
		"tokens": 980,
		"hand": [{"rank":14,"suit":"spades"},{"rank":14,"suit":"hearts"}],
		"currentBet": 20,
		"status": "active",
		"allIn": false
	}`, string(b))
}
