package texasholdem

import (
	"pokerdex-server/pkg/poker/action"
)

// actingPlayer returns the player on the clock if it matches the given name.
// All action validation starts here; nothing is mutated until it passes.
func (g *Game) actingPlayer(name string) (*Player, error) {
	if !g.round.isBetting() {
		return nil, newIllegalActionError("no betting round is in progress")
	}

	if g.currentPlayerIndex < 0 {
		return nil, newIllegalActionError("no player may act")
	}

	p := g.players[g.currentPlayerIndex]
	if p.name != name {
		return nil, ErrNotYourTurn
	}

	return p, nil
}

// Fold folds the acting player's hand.
// If only one player remains, the hand ends immediately and the pot is
// awarded without a showdown.
func (g *Game) Fold(name string) error {
	p, err := g.actingPlayer(name)
	if err != nil {
		return err
	}

	p.folded = true
	p.acted = true

	if g.nonFoldedCount() <= 1 {
		g.settleFoldWin()
		return nil
	}

	g.afterAction(p, action.Fold, 0)
	return nil
}

// Check passes the action. Legal only when the player already matches the
// table's current bet.
func (g *Game) Check(name string) error {
	p, err := g.actingPlayer(name)
	if err != nil {
		return err
	}

	if p.roundBet != g.currentBet {
		return newIllegalActionError("you cannot check with an active bet")
	}

	p.acted = true
	g.afterAction(p, action.Check, 0)
	return nil
}

// Call matches the table's current bet, going all-in if the stack is short
func (g *Game) Call(name string) error {
	p, err := g.actingPlayer(name)
	if err != nil {
		return err
	}

	owed := g.currentBet - p.roundBet
	if owed <= 0 {
		return newIllegalActionError("there is no bet to call")
	}

	committed := p.commit(owed)
	p.acted = true
	g.afterAction(p, action.Call, committed)
	return nil
}

// Bet opens the betting. Legal only when nobody has bet this round.
func (g *Game) Bet(name string, amount int) error {
	p, err := g.actingPlayer(name)
	if err != nil {
		return err
	}

	if g.currentBet != 0 {
		return newIllegalActionError("a bet has already been made; raise instead")
	}

	if amount <= 0 {
		return newIllegalActionError("bet must be a positive amount")
	}

	p.commit(amount)
	g.currentBet = amount
	p.acted = true
	g.afterAction(p, action.Bet, amount)
	return nil
}

// Raise raises the table's current bet to amount (a total, not a delta).
// Legal only when there is a standing bet to raise.
func (g *Game) Raise(name string, amount int) error {
	p, err := g.actingPlayer(name)
	if err != nil {
		return err
	}

	if g.currentBet == 0 {
		return newIllegalActionError("there is no bet to raise; bet instead")
	}

	if amount <= g.currentBet {
		return newIllegalActionError("raise to %d must exceed the current bet of %d", amount, g.currentBet)
	}

	p.commit(amount - p.roundBet)
	g.currentBet = amount
	p.acted = true
	g.afterAction(p, action.Raise, amount)
	return nil
}

// afterAction logs the action and advances the turn, finishing the betting
// round when no further action is owed
func (g *Game) afterAction(p *Player, act action.Action, amount int) {
	g.logger.WithField("player", p.name).Debug(act.LogMessage(amount))

	if g.isRoundOver() {
		g.finishBettingRound()
		return
	}

	g.currentPlayerIndex = g.nextEligibleFrom(g.currentPlayerIndex + 1)
}

// isRoundOver returns true when at most one non-folded player remains, or
// when every player who can still act has acted and matches the current bet
func (g *Game) isRoundOver() bool {
	if g.nonFoldedCount() <= 1 {
		return true
	}

	for _, p := range g.players {
		if !p.canAct() {
			continue
		}

		if !p.acted || p.roundBet != g.currentBet {
			return false
		}
	}

	return true
}

// sweepBets moves every live wager into the pot and resets the round's
// betting state
func (g *Game) sweepBets() {
	for _, p := range g.players {
		g.pot += p.roundBet
		p.roundBet = 0
		p.acted = false
	}

	g.currentBet = 0
}

// finishBettingRound sweeps the bets and advances to the next street,
// dealing community cards as needed. Streets where nobody can act (everyone
// all-in) run out automatically until showdown.
func (g *Game) finishBettingRound() {
	g.sweepBets()

	for {
		switch g.round {
		case RoundPreFlop:
			g.dealCommunity(3)
			g.round = RoundFlop
		case RoundFlop:
			g.dealCommunity(1)
			g.round = RoundTurn
		case RoundTurn:
			g.dealCommunity(1)
			g.round = RoundRiver
		case RoundRiver:
			g.showdown()
			return
		}

		if index := g.nextEligibleFrom(g.dealerIndex + 1); index >= 0 && !g.isRoundOver() {
			g.currentPlayerIndex = index
			return
		}
	}
}

func (g *Game) dealCommunity(count int) {
	cards, err := g.deck.DrawN(count)
	if err != nil {
		// can only happen with more seats than the deck supports
		g.logger.WithError(err).Error("deck exhausted while dealing community cards")
		panic(err)
	}

	g.community = append(g.community, cards...)
	g.logger.WithField("community", g.community.String()).Debug("community cards dealt")
}
