package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	assert.Equal(t, "A♠", (&Card{Rank: Ace, Suit: Spades}).String())
	assert.Equal(t, "10♡", (&Card{Rank: 10, Suit: Hearts}).String())
	assert.Equal(t, "J♢", (&Card{Rank: Jack, Suit: Diamonds}).String())
	assert.Equal(t, "2♣", (&Card{Rank: 2, Suit: Clubs}).String())
}

func TestCardFromString(t *testing.T) {
	assert.Equal(t, &Card{Rank: 14, Suit: Clubs}, CardFromString("14c"))
	assert.Equal(t, &Card{Rank: 2, Suit: Hearts}, CardFromString("2h"))
	assert.Nil(t, CardFromString(""))

	assert.PanicsWithValue(t, "could not parse card: 15c", func() {
		CardFromString("15c")
	})
}

func TestCardsFromString(t *testing.T) {
	cards := CardsFromString("2c,3h,14s")
	assert.Equal(t, 3, len(cards))
	assert.Equal(t, "2c,3h,14s", CardsToString(cards))
}
