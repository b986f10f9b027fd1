package texasholdem

import "encoding/json"

// Round represents the phase of the current hand
type Round int

// constants for Round
const (
	RoundWaiting Round = iota
	RoundPreFlop
	RoundFlop
	RoundTurn
	RoundRiver
	RoundShowdown
)

func (r Round) String() string {
	switch r {
	case RoundWaiting:
		return "waiting-for-players"
	case RoundPreFlop:
		return "pre-flop"
	case RoundFlop:
		return "flop"
	case RoundTurn:
		return "turn"
	case RoundRiver:
		return "river"
	case RoundShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (r Round) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(r),
		Name: r.String(),
	})
}

// isBetting returns true if the round accepts player actions
func (r Round) isBetting() bool {
	return r == RoundPreFlop || r == RoundFlop || r == RoundTurn || r == RoundRiver
}
