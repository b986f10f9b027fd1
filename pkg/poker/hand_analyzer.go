package poker

import (
	"math"
	"sort"

	"pokerdex-server/pkg/deck"
)

// HandAnalyzer finds the best five-card hand in a set of five to seven cards
type HandAnalyzer struct {
	size  int
	cards []*deck.Card

	flush         []int
	quads         []int
	trips         []int
	pairs         []int
	straight      int
	straightFlush int

	hand     Hand
	strength int
}

// New will return a new HandAnalyzer instance.
// The input order of the cards does not matter.
func New(size int, cards []*deck.Card) *HandAnalyzer {
	// clone to prevent modifying the original
	sortedCards := make([]*deck.Card, len(cards))
	copy(sortedCards, cards)
	sort.Sort(sort.Reverse(sortByRank(sortedCards)))

	h := &HandAnalyzer{
		size:  size,
		cards: sortedCards,
	}

	h.analyzeHand()
	h.calculateHand()

	return h
}

// analyzeHand will loop through the cards and calculate the various combinations.
// This is required to be called in order for the public Get*() methods to return properly
func (h *HandAnalyzer) analyzeHand() {
	suitRanks := make(map[deck.Suit][]int)
	allRanks := make([]int, 0, len(h.cards))

	// keeps track of pairs, trips, and quads
	prevRank := math.MaxInt8
	numOfRank := 1

	nCards := len(h.cards)
	for i, card := range h.cards {
		allRanks = append(allRanks, card.Rank)
		suitRanks[card.Suit] = append(suitRanks[card.Suit], card.Rank)

		if card.Rank == prevRank {
			numOfRank++
		}

		// the rank changed, or we're at the end; record the group we just left
		if card.Rank != prevRank || i+1 == nCards {
			if card.Rank != prevRank {
				h.recordGroup(prevRank, numOfRank)
				numOfRank = 1
			}

			if i+1 == nCards {
				h.recordGroup(card.Rank, numOfRank)
			}
		}

		prevRank = card.Rank
	}

	for suit, ranks := range suitRanks {
		if len(ranks) < h.size {
			continue
		}

		// ranks arrive in descending order, so the best flush is the first five
		h.flush = ranks[0:h.size]

		if sf := bestStraight(suitRanks[suit]); sf > h.straightFlush {
			h.straightFlush = sf
		}
	}

	h.straight = bestStraight(allRanks)
}

func (h *HandAnalyzer) recordGroup(rank, count int) {
	if count > 4 {
		count = 4
	}

	switch count {
	case 4:
		h.quads = append(h.quads, rank)
	case 3:
		h.trips = append(h.trips, rank)
	case 2:
		h.pairs = append(h.pairs, rank)
	}
}

// GetHand will return the best possible hand the cards can make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetRoyalFlush will return true if there's a royal flush
func (h *HandAnalyzer) GetRoyalFlush() bool {
	return h.straightFlush == deck.Ace
}

// GetStraightFlush will return the best straight flush, if possible
func (h *HandAnalyzer) GetStraightFlush() (int, bool) {
	if h.straightFlush > 0 {
		return h.straightFlush, true
	}

	return 0, false
}

// GetFourOfAKind will return the best four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() (int, bool) {
	if len(h.quads) > 0 {
		return h.quads[0], true
	}

	return 0, false
}

// GetFullHouse will return the best full house, if possible
func (h *HandAnalyzer) GetFullHouse() ([]int, bool) {
	if len(h.trips) == 0 {
		return nil, false
	}

	trips := h.trips[0]

	pair, ok := h.GetPair()
	if !ok {
		if len(h.trips) < 2 {
			return nil, false
		}

		pair = h.trips[1]
	} else if len(h.trips) >= 2 && h.trips[1] > pair {
		// in a 7-card hand we may have two sets of trips and a separate pair;
		// make sure we grab the better pair from the trips
		pair = h.trips[1]
	}

	return []int{trips, pair}, true
}

// GetFlush will return the best possible flush, if possible
func (h *HandAnalyzer) GetFlush() ([]int, bool) {
	if h.flush != nil {
		return h.flush, true
	}

	return nil, false
}

// GetStraight will return the best straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the best three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() (int, bool) {
	if len(h.trips) > 0 {
		return h.trips[0], true
	}

	return 0, false
}

// GetTwoPair will return the best two pairs, if possible
func (h *HandAnalyzer) GetTwoPair() ([]int, bool) {
	if len(h.pairs) >= 2 {
		return h.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() (int, bool) {
	if len(h.pairs) > 0 {
		return h.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the top ranks, best first
func (h *HandAnalyzer) GetHighCard() ([]int, bool) {
	cards := make([]int, h.size)
	for i := 0; i < h.size; i++ {
		if i < len(h.cards) {
			cards[i] = h.cards[i].Rank
		}
	}
	return cards, true
}

// calculateHand will determine the best hand.
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	if h.GetRoyalFlush() {
		h.hand = RoyalFlush
	} else if _, ok := h.GetStraightFlush(); ok {
		h.hand = StraightFlush
	} else if _, ok := h.GetFourOfAKind(); ok {
		h.hand = FourOfAKind
	} else if _, ok := h.GetFullHouse(); ok {
		h.hand = FullHouse
	} else if _, ok := h.GetFlush(); ok {
		h.hand = Flush
	} else if _, ok := h.GetStraight(); ok {
		h.hand = Straight
	} else if _, ok := h.GetThreeOfAKind(); ok {
		h.hand = ThreeOfAKind
	} else if _, ok := h.GetTwoPair(); ok {
		h.hand = TwoPair
	} else if _, ok := h.GetPair(); ok {
		h.hand = OnePair
	} else {
		h.hand = HighCard
	}
}

func calculateStrength(hand Hand, cards []int) int {
	fiveCards := make([]int, 5)
	copy(fiveCards, cards)

	strength := math.Pow(15, 5) * float64(hand)
	for i := 0; i < 5; i++ {
		val := fiveCards[4-i]
		strength += math.Pow(15, float64(i)) * float64(val)
	}

	return int(strength)
}

// GetStrength returns the strength of the hand.
// Strengths are totally ordered: a greater value always beats a lesser one,
// and equal values tie.
func (h *HandAnalyzer) GetStrength() int {
	if h.strength > 0 {
		return h.strength
	}

	h.strength = h.getStrength()
	return h.strength
}

// kickers returns the top n card ranks not present in the exclude list
func (h *HandAnalyzer) kickers(n int, exclude ...int) []int {
	skip := make(map[int]bool, len(exclude))
	for _, rank := range exclude {
		skip[rank] = true
	}

	kickers := make([]int, 0, n)
	for _, card := range h.cards {
		if skip[card.Rank] {
			continue
		}

		kickers = append(kickers, card.Rank)
		if len(kickers) == n {
			break
		}
	}

	return kickers
}

func (h *HandAnalyzer) getStrength() int {
	hand := h.GetHand()

	switch hand {
	case HighCard:
		c, _ := h.GetHighCard()
		return calculateStrength(hand, c)
	case OnePair:
		pair, _ := h.GetPair()
		return calculateStrength(hand, append([]int{pair}, h.kickers(3, pair)...))
	case TwoPair:
		twoPair, _ := h.GetTwoPair()
		kickers := h.kickers(1, twoPair[0], twoPair[1])
		return calculateStrength(hand, append(twoPair[0:2:2], kickers...))
	case ThreeOfAKind:
		trips, _ := h.GetThreeOfAKind()
		return calculateStrength(hand, append([]int{trips}, h.kickers(2, trips)...))
	case Straight:
		s, _ := h.GetStraight()
		return calculateStrength(hand, []int{s})
	case Flush:
		f, _ := h.GetFlush()
		return calculateStrength(hand, f)
	case FullHouse:
		fh, _ := h.GetFullHouse()
		return calculateStrength(hand, fh)
	case FourOfAKind:
		quads, _ := h.GetFourOfAKind()
		return calculateStrength(hand, append([]int{quads}, h.kickers(1, quads)...))
	case StraightFlush:
		s, _ := h.GetStraightFlush()
		return calculateStrength(hand, []int{s})
	case RoyalFlush:
		return calculateStrength(hand, []int{})
	}

	panic("unknown hand")
}
