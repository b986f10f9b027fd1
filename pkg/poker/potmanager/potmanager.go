package potmanager

import "sort"

// Contributor is what the pot manager needs to know about a player at showdown
type Contributor interface {
	Name() string
	// TotalBet is the amount the player committed over the whole hand
	TotalBet() int
	Folded() bool
	SeatIndex() int
	AddTokens(amount int)
}

// SidePot is one pot layer, capped at an all-in contribution level and
// eligible only to the non-folded contributors who matched it
type SidePot struct {
	Amount   int
	Eligible []Contributor
}

// BuildSidePots splits the hand's contributions into pot layers.
//
// Layers are peeled off at each distinct contribution level of the non-folded
// contributors, lowest first. Folded players' chips stay in the layers they
// matched, but folded players are never eligible to win. Any chips a folded
// player committed beyond the highest live contribution level are folded into
// the last layer so no money leaves the table.
func BuildSidePots(contributors []Contributor) []*SidePot {
	levels := make([]int, 0, len(contributors))
	seen := make(map[int]bool)
	for _, c := range contributors {
		if c.Folded() || c.TotalBet() == 0 {
			continue
		}

		if !seen[c.TotalBet()] {
			seen[c.TotalBet()] = true
			levels = append(levels, c.TotalBet())
		}
	}
	sort.Ints(levels)

	if len(levels) == 0 {
		return nil
	}

	pots := make([]*SidePot, 0, len(levels))

	prev := 0
	for _, level := range levels {
		sp := &SidePot{}
		for _, c := range contributors {
			matched := c.TotalBet()
			if matched > level {
				matched = level
			}

			if matched > prev {
				sp.Amount += matched - prev
			}

			if !c.Folded() && c.TotalBet() >= level {
				sp.Eligible = append(sp.Eligible, c)
			}
		}

		pots = append(pots, sp)
		prev = level
	}

	// forfeited chips above the top live level
	last := pots[len(pots)-1]
	top := levels[len(levels)-1]
	for _, c := range contributors {
		if c.Folded() && c.TotalBet() > top {
			last.Amount += c.TotalBet() - top
		}
	}

	return pots
}

// Payout splits the pot among the winners and credits their stacks.
// The remainder of an uneven split is awarded one chip at a time in seating
// order, so no chips are ever burned. Returns each winner's share.
func (sp *SidePot) Payout(winners []Contributor) map[string]int {
	if len(winners) == 0 {
		return nil
	}

	sorted := make([]Contributor, len(winners))
	copy(sorted, winners)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SeatIndex() < sorted[j].SeatIndex()
	})

	share := sp.Amount / len(sorted)
	remainder := sp.Amount % len(sorted)

	shares := make(map[string]int, len(sorted))
	for i, winner := range sorted {
		amount := share
		if i < remainder {
			amount++
		}

		winner.AddTokens(amount)
		shares[winner.Name()] = amount
	}

	return shares
}
