package poker

import (
	"sort"

	"pokerdex-server/pkg/deck"
)

// bestStraight returns the high card of the best five-card straight found in
// ranks, or 0 if there is none.
//
// Ranks may arrive unsorted and with duplicates (a paired board). Detection
// runs over a deduplicated, descending list so duplicate ranks cannot shift
// the window. An ace counts both high and low; the wheel (A-2-3-4-5) reads as
// a 5-high straight.
func bestStraight(ranks []int) int {
	unique := make([]int, 0, len(ranks)+1)
	seen := make(map[int]bool)
	hasAce := false

	for _, rank := range ranks {
		if rank == deck.Ace {
			hasAce = true
		}

		if !seen[rank] {
			seen[rank] = true
			unique = append(unique, rank)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(unique)))

	if hasAce {
		unique = append(unique, deck.LowAce)
	}

	// five distinct descending ranks spanning exactly four are consecutive
	for i := 0; i+4 < len(unique); i++ {
		if unique[i]-unique[i+4] == 4 {
			return unique[i]
		}
	}

	return 0
}
