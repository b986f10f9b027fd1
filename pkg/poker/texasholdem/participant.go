package texasholdem

import (
	"pokerdex-server/pkg/deck"
	"pokerdex-server/pkg/poker"
)

// Player represents an individual player at the table
type Player struct {
	name      string
	seatIndex int
	tokens    int
	cards     deck.Hand

	// roundBet is what the player has wagered this betting round
	roundBet int
	// handBet is what the player has committed over the whole hand
	handBet int

	folded bool
	allIn  bool
	acted  bool
	sitOut bool

	handAnalyzer         *poker.HandAnalyzer
	handAnalyzerCacheKey string
}

func newPlayer(name string, seatIndex, tokens int) *Player {
	return &Player{
		name:      name,
		seatIndex: seatIndex,
		tokens:    tokens,
		cards:     make(deck.Hand, 0, 2),
	}
}

// newHand resets the player for the next hand.
// A player without tokens sits the hand out.
func (p *Player) newHand() {
	p.cards = make(deck.Hand, 0, 2)
	p.roundBet = 0
	p.handBet = 0
	p.allIn = false
	p.acted = false
	p.sitOut = p.tokens == 0
	p.folded = p.sitOut
	p.handAnalyzer = nil
	p.handAnalyzerCacheKey = ""
}

// commit moves up to amount from the player's stack into their wager.
// The amount is clamped to the available tokens; exhausting the stack puts
// the player all-in. Returns the amount actually committed.
func (p *Player) commit(amount int) int {
	if amount > p.tokens {
		amount = p.tokens
	}

	p.tokens -= amount
	p.roundBet += amount
	p.handBet += amount

	if p.tokens == 0 {
		p.allIn = true
	}

	return amount
}

// canAct returns true if the player can check, call, bet, raise, or fold
func (p *Player) canAct() bool {
	return !p.sitOut && !p.folded && !p.allIn && p.tokens > 0
}

// inHand returns true if the player was dealt into the current hand
func (p *Player) inHand() bool {
	return !p.sitOut
}

func (p *Player) getHandAnalyzer(community deck.Hand) *poker.HandAnalyzer {
	if len(p.cards) == 0 {
		return nil
	}

	hand := append(p.cards.Clone(), community...)
	key := hand.String()
	if p.handAnalyzerCacheKey != key {
		p.handAnalyzer = poker.New(5, hand)
		p.handAnalyzerCacheKey = key
	}

	return p.handAnalyzer
}

// Tokens returns the player's stack
func (p *Player) Tokens() int {
	return p.tokens
}

// potmanager.Contributor interface

// Name returns the player's table-unique name
func (p *Player) Name() string {
	return p.name
}

// TotalBet returns the amount committed over the whole hand
func (p *Player) TotalBet() int {
	return p.handBet
}

// Folded returns true if the player folded this hand
func (p *Player) Folded() bool {
	return p.folded
}

// SeatIndex returns the player's position in seating order
func (p *Player) SeatIndex() int {
	return p.seatIndex
}

// AddTokens credits winnings to the player's stack
func (p *Player) AddTokens(amount int) {
	p.tokens += amount
}
