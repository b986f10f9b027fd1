package deck

import (
	"errors"

	"pokerdex-server/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards.
// Hitting it mid-hand means the caller seated more players than the deck supports,
// which is a programming error, not a game condition.
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []*Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	return NewWithRNG(rng.Crypto{})
}

// NewWithRNG returns a new unshuffled deck using the provided random source
func NewWithRNG(g rng.Generator) *Deck {
	d := &Deck{rng: g}
	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for _, suit := range Suits {
		for rank := 2; rank <= 14; rank++ {
			cards = append(cards, &Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards using a Fisher-Yates permutation.
// Every permutation is equally likely given a uniform random source.
func (d *Deck) Shuffle() {
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will remove and return the top card of the deck.
// The top of the deck is the end of the slice.
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	n := len(d.Cards)
	if n == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[n-1]
	d.Cards = d.Cards[:n-1]

	return card, nil
}

// DrawN draws count cards in sequence
func (d *Deck) DrawN(count int) (Hand, error) {
	hand := make(Hand, 0, count)
	for i := 0; i < count; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		hand.AddCard(card)
	}

	return hand, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
