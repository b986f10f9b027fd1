package texasholdem

import "pokerdex-server/pkg/deck"

// player status strings
const (
	StatusActive = "active"
	StatusFolded = "folded"
)

// PlayerSnapshot is the public view of a seated player.
// Hand is only populated for the viewer's own seat, or for showdown
// contenders once the hand is over; every other field is public.
type PlayerSnapshot struct {
	Name       string    `json:"name"`
	Tokens     int       `json:"tokens"`
	Hand       deck.Hand `json:"hand,omitempty"`
	CurrentBet int       `json:"currentBet"`
	Status     string    `json:"status"`
	AllIn      bool      `json:"allIn"`
	SittingOut bool      `json:"sittingOut,omitempty"`
	HandName   string    `json:"handName,omitempty"`
}

// TableSnapshot is the state of the table as seen by one viewer
type TableSnapshot struct {
	Players            []*PlayerSnapshot `json:"players"`
	TableCards         deck.Hand         `json:"tableCards"`
	Pot                int               `json:"pot"`
	CurrentBet         int               `json:"currentBet"`
	Round              Round             `json:"round"`
	DealerIndex        int               `json:"dealerIndex"`
	CurrentPlayerIndex int               `json:"currentPlayerIndex"`
	SmallBlind         int               `json:"smallBlind"`
	BigBlind           int               `json:"bigBlind"`
}

// Snapshot renders the table for the given viewer. An empty viewer name
// yields a spectator view with no hole cards.
func (g *Game) Snapshot(viewer string) *TableSnapshot {
	players := make([]*PlayerSnapshot, len(g.players))
	liveBets := 0
	for i, p := range g.players {
		liveBets += p.roundBet
		players[i] = g.playerSnapshot(p, viewer)
	}

	return &TableSnapshot{
		Players:    players,
		TableCards: g.community,
		// includes live wagers not yet swept into the pot
		Pot:                g.pot + liveBets,
		CurrentBet:         g.currentBet,
		Round:              g.round,
		DealerIndex:        g.dealerIndex,
		CurrentPlayerIndex: g.currentPlayerIndex,
		SmallBlind:         g.opts.SmallBlind,
		BigBlind:           g.opts.BigBlind,
	}
}

func (g *Game) playerSnapshot(p *Player, viewer string) *PlayerSnapshot {
	status := StatusActive
	if p.folded {
		status = StatusFolded
	}

	ps := &PlayerSnapshot{
		Name:       p.name,
		Tokens:     p.tokens,
		CurrentBet: p.roundBet,
		Status:     status,
		AllIn:      p.allIn,
		SittingOut: p.sitOut,
	}

	reveal := g.round == RoundShowdown && p.inHand() && !p.folded
	if reveal || p.name == viewer {
		ps.Hand = p.cards
	}

	if reveal {
		if ha := p.getHandAnalyzer(g.community); ha != nil {
			ps.HandName = ha.GetHand().String()
		}
	}

	return ps
}
