package texasholdem

import (
	"github.com/sirupsen/logrus"

	"pokerdex-server/pkg/poker/potmanager"
)

// SettlementEvent reports the payout of one pot layer
type SettlementEvent struct {
	Pot     int            `json:"pot"`
	Winners []string       `json:"winners"`
	Shares  map[string]int `json:"shares"`
	// HandName is empty when the pot was won without a showdown
	HandName string `json:"handName,omitempty"`
}

// Settlements returns the payout events of the last completed hand
func (g *Game) Settlements() []SettlementEvent {
	return g.settlements
}

// showdown compares the remaining hands, pays out every pot layer, and
// leaves the table ready for the next hand
func (g *Game) showdown() {
	g.round = RoundShowdown
	g.currentPlayerIndex = -1

	contributors := make([]potmanager.Contributor, 0, len(g.players))
	wm := potmanager.NewWinManager()
	for _, p := range g.players {
		if !p.inHand() {
			continue
		}

		contributors = append(contributors, p)
		if !p.folded {
			wm.AddContender(p, p.getHandAnalyzer(g.community).GetStrength())
		}
	}

	for _, sp := range potmanager.BuildSidePots(contributors) {
		winners := wm.BestAmong(sp.Eligible)
		shares := sp.Payout(winners)

		names := make([]string, len(winners))
		for i, w := range winners {
			names[i] = w.Name()
		}

		event := SettlementEvent{
			Pot:     sp.Amount,
			Winners: names,
			Shares:  shares,
		}

		if len(winners) > 0 {
			winner, _ := g.player(names[0])
			event.HandName = winner.getHandAnalyzer(g.community).GetHand().String()
		}

		g.settlements = append(g.settlements, event)
		g.logger.WithFields(logrus.Fields{
			"pot":     event.Pot,
			"winners": event.Winners,
			"hand":    event.HandName,
		}).Info("pot settled")
	}

	g.pot = 0
	g.endHand()
}

// settleFoldWin awards the whole pot to the last non-folded player without
// evaluating any hands
func (g *Game) settleFoldWin() {
	g.sweepBets()

	var winner *Player
	for _, p := range g.players {
		if p.inHand() && !p.folded {
			winner = p
			break
		}
	}

	if winner == nil {
		panic("no winner after fold")
	}

	winner.AddTokens(g.pot)
	event := SettlementEvent{
		Pot:     g.pot,
		Winners: []string{winner.name},
		Shares:  map[string]int{winner.name: g.pot},
	}
	g.settlements = append(g.settlements, event)

	g.logger.WithFields(logrus.Fields{
		"pot":    event.Pot,
		"winner": winner.name,
	}).Info("pot won uncontested")

	g.pot = 0
	g.round = RoundWaiting
	g.currentPlayerIndex = -1
	g.rotateDealer()
}

// endHand rotates the dealer button after a showdown. The round stays at
// showdown so viewers can see the revealed hands until the next deal.
func (g *Game) endHand() {
	g.rotateDealer()
}

func (g *Game) rotateDealer() {
	g.dealerIndex = (g.dealerIndex + 1) % len(g.players)
}
