package texasholdem

import (
	"errors"
	"fmt"
)

// IllegalActionError is a player-facing rejection.
// The game state is guaranteed to be left untouched.
type IllegalActionError string

func (e IllegalActionError) Error() string {
	return string(e)
}

func newIllegalActionError(format string, a ...interface{}) IllegalActionError {
	return IllegalActionError(fmt.Sprintf(format, a...))
}

// ErrNotYourTurn is an error when a player acts out of turn
const ErrNotYourTurn = IllegalActionError("it is not your turn")

// ErrNotEnoughPlayers is an error when a hand is started with fewer than two funded players
var ErrNotEnoughPlayers = errors.New("at least two players with tokens are required")

// ErrTableFull is an error when a join would exceed the table's seat limit
var ErrTableFull = errors.New("table is full")

// ErrDuplicateName is an error when a joining player's name is already taken
var ErrDuplicateName = errors.New("a player with that name is already seated")

// ErrAlreadyStarted is an error when an operation requires the table to be between hands
var ErrAlreadyStarted = errors.New("a hand is already in progress")

// ErrPlayerNotFound is an error when the named player is not at the table
var ErrPlayerNotFound = errors.New("player not found")

// ErrDeckExhausted is an error when the deck cannot cover a full hand
var ErrDeckExhausted = errors.New("not enough cards to deal the seated players")
