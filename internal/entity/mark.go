package entity

// Mark is the value held by a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

// Marks lists the two player marks in the order they move.
var Marks = [2]Mark{PlayerX, PlayerO}

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// Opponent - returns the mark that moves after this one.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}
