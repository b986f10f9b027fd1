package room

import (
	"pokerdex-server/pkg/poker/texasholdem"
)

// PayloadIn is the format we expect from the JS client
type PayloadIn struct {
	Type       string `json:"type"`
	Name       string `json:"name,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	Amount     int    `json:"amount,omitempty"`
}

type playersPayload struct {
	Type    string   `json:"type"`
	Players []string `json:"players"`
}

type startGamePayload struct {
	Type string `json:"type"`
}

type gameStatePayload struct {
	Type string `json:"type"`
	*texasholdem.TableSnapshot
}

type settlementPayload struct {
	Type string `json:"type"`
	texasholdem.SettlementEvent
}

type errorPayload struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func newErrorPayload(err error) *errorPayload {
	return &errorPayload{
		Type:  "error",
		Error: err.Error(),
	}
}
