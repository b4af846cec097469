package entity

import "fmt"

// GameStatus is the classification of a board. It is always derived from
// the board and never stored alongside it.
type GameStatus uint8

const (
	Ongoing GameStatus = iota
	Draw
	WinX
	WinO
	Impossible
)

var statusNames = map[GameStatus]string{
	Ongoing:    "Game not finished",
	Draw:       "Draw",
	WinX:       "X wins",
	WinO:       "O wins",
	Impossible: "Impossible",
}

func (that GameStatus) String() string {
	if name, ok := statusNames[that]; ok {
		return name
	}

	return fmt.Sprintf("GameStatus(%d)", uint8(that))
}

func (that GameStatus) IsFinished() bool {
	return that != Ongoing
}

func (that GameStatus) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

