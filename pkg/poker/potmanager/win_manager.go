package potmanager

import "sort"

// WinManager ranks showdown contenders by hand strength
type WinManager struct {
	strengths map[string]int
}

// NewWinManager returns an empty WinManager
func NewWinManager() *WinManager {
	return &WinManager{strengths: make(map[string]int)}
}

// AddContender records a contender's hand strength
func (w *WinManager) AddContender(c Contributor, strength int) {
	w.strengths[c.Name()] = strength
}

// BestAmong returns the contenders with the best hand strength out of the
// eligible set, in seating order. Contributors never added as contenders are
// skipped.
func (w *WinManager) BestAmong(eligible []Contributor) []Contributor {
	best := -1
	var winners []Contributor

	for _, c := range eligible {
		strength, ok := w.strengths[c.Name()]
		if !ok {
			continue
		}

		if strength > best {
			best = strength
			winners = []Contributor{c}
		} else if strength == best {
			winners = append(winners, c)
		}
	}

	sort.Slice(winners, func(i, j int) bool {
		return winners[i].SeatIndex() < winners[j].SeatIndex()
	})

	return winners
}
