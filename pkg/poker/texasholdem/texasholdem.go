package texasholdem

import (
	"errors"

	"github.com/sirupsen/logrus"

	"pokerdex-server/internal/rng"
	"pokerdex-server/pkg/deck"
)

// deckCeiling is the largest table a 52-card deck supports: 2 hole cards per
// player plus 5 community cards
const deckCeiling = 22

// Game is a single table's no-limit Texas Hold'em state machine.
// It is not safe for concurrent use; callers must serialize access.
type Game struct {
	opts   Options
	logger logrus.FieldLogger

	deck      *deck.Deck
	players   []*Player
	community deck.Hand

	// pot holds chips swept from completed betting rounds
	pot int
	// currentBet is the highest standing wager this betting round
	currentBet int

	round              Round
	dealerIndex        int
	currentPlayerIndex int

	settlements []SettlementEvent
}

// Options configures how Texas Hold'em is played
type Options struct {
	SmallBlind int
	BigBlind   int
	MaxPlayers int
	RNG        rng.Generator
}

// DefaultOptions returns the default options for Texas Hold'em
func DefaultOptions() Options {
	return Options{
		SmallBlind: 10,
		BigBlind:   20,
		MaxPlayers: 10,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind <= opts.SmallBlind {
		return errors.New("big blind must be greater than the small blind")
	}

	if opts.MaxPlayers < 2 || opts.MaxPlayers > deckCeiling {
		return errors.New("max players must be between 2 and 22")
	}

	return nil
}

// NewGame returns a new table waiting for players
func NewGame(logger logrus.FieldLogger, opts Options) (*Game, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if opts.RNG == nil {
		opts.RNG = rng.Crypto{}
	}

	return &Game{
		opts:               opts,
		logger:             logger,
		players:            make([]*Player, 0, opts.MaxPlayers),
		community:          make(deck.Hand, 0, 5),
		round:              RoundWaiting,
		currentPlayerIndex: -1,
	}, nil
}

// AddPlayer seats a new player. Players may only join between hands.
func (g *Game) AddPlayer(name string, tokens int) error {
	if g.round.isBetting() {
		return ErrAlreadyStarted
	}

	if len(g.players) >= g.opts.MaxPlayers {
		return ErrTableFull
	}

	for _, p := range g.players {
		if p.name == name {
			return ErrDuplicateName
		}
	}

	g.players = append(g.players, newPlayer(name, len(g.players), tokens))
	g.logger.WithFields(logrus.Fields{
		"player": name,
		"tokens": tokens,
	}).Info("player seated")

	return nil
}

// RemovePlayer removes a seated player. Players may only leave between hands.
func (g *Game) RemovePlayer(name string) error {
	if g.round.isBetting() {
		return ErrAlreadyStarted
	}

	index := -1
	for i, p := range g.players {
		if p.name == name {
			index = i
			break
		}
	}

	if index == -1 {
		return ErrPlayerNotFound
	}

	g.players = append(g.players[:index], g.players[index+1:]...)
	for i, p := range g.players {
		p.seatIndex = i
	}

	if len(g.players) > 0 {
		if g.dealerIndex > index {
			g.dealerIndex--
		}
		g.dealerIndex %= len(g.players)
	} else {
		g.dealerIndex = 0
	}

	g.logger.WithField("player", name).Info("player left")
	return nil
}

// Players returns the seated players in seating order
func (g *Game) Players() []*Player {
	return g.players
}

// Round returns the phase of the current hand
func (g *Game) Round() Round {
	return g.round
}

// StartHand deals a fresh hand: new shuffled deck, two hole cards per funded
// player, and the blinds posted. At least two funded players are required.
func (g *Game) StartHand() error {
	if g.round.isBetting() {
		return ErrAlreadyStarted
	}

	funded := 0
	for _, p := range g.players {
		if p.tokens > 0 {
			funded++
		}
	}

	if funded < 2 {
		return ErrNotEnoughPlayers
	}

	g.deck = deck.NewWithRNG(g.opts.RNG)
	g.deck.Shuffle()

	// two hole cards per dealt-in player plus the full board
	if !g.deck.CanDraw(funded*2 + 5) {
		return ErrDeckExhausted
	}

	for _, p := range g.players {
		p.newHand()
	}

	g.community = make(deck.Hand, 0, 5)
	g.pot = 0
	g.currentBet = 0
	g.settlements = nil

	// two passes, one card at a time
	for i := 0; i < 2; i++ {
		for _, p := range g.players {
			if !p.inHand() {
				continue
			}

			card, err := g.deck.Draw()
			if err != nil {
				g.logger.WithError(err).Error("deck exhausted while dealing hole cards")
				panic(err)
			}

			p.cards.AddCard(card)
		}
	}

	sbIndex := g.nextInHandFrom(g.dealerIndex + 1)
	bbIndex := g.nextInHandFrom(sbIndex + 1)

	g.players[sbIndex].commit(g.opts.SmallBlind)
	g.players[bbIndex].commit(g.opts.BigBlind)
	g.currentBet = g.opts.BigBlind

	g.round = RoundPreFlop
	g.currentPlayerIndex = g.nextEligibleFrom(bbIndex + 1)

	g.logger.WithFields(logrus.Fields{
		"players":    funded,
		"dealer":     g.players[g.dealerIndex].name,
		"smallBlind": g.players[sbIndex].name,
		"bigBlind":   g.players[bbIndex].name,
	}).Info("hand started")

	// everyone may already be all-in from the blinds
	if g.isRoundOver() {
		g.finishBettingRound()
	}

	return nil
}

// nextInHandFrom returns the first seat at or after index (wrapping) whose
// player was dealt into the hand
func (g *Game) nextInHandFrom(index int) int {
	n := len(g.players)
	for i := 0; i < n; i++ {
		seat := (index + i) % n
		if g.players[seat].inHand() {
			return seat
		}
	}

	panic("no players in hand")
}

// nextEligibleFrom returns the first seat at or after index (wrapping) whose
// player can act, or -1 if no such seat exists
func (g *Game) nextEligibleFrom(index int) int {
	n := len(g.players)
	for i := 0; i < n; i++ {
		seat := (index + i) % n
		if g.players[seat].canAct() {
			return seat
		}
	}

	return -1
}

func (g *Game) nonFoldedCount() int {
	count := 0
	for _, p := range g.players {
		if p.inHand() && !p.folded {
			count++
		}
	}

	return count
}

// CurrentTurn returns the player whose action is awaited, or an error if no
// betting round is in progress
func (g *Game) CurrentTurn() (*Player, error) {
	if !g.round.isBetting() || g.currentPlayerIndex < 0 {
		return nil, newIllegalActionError("no betting round is in progress")
	}

	return g.players[g.currentPlayerIndex], nil
}

// player returns the seated player with the given name
func (g *Game) player(name string) (*Player, error) {
	for _, p := range g.players {
		if p.name == name {
			return p, nil
		}
	}

	return nil, ErrPlayerNotFound
}
