package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrOutOfBounds  = errors.New("coordinates are out of bounds")
	ErrNotNumbers   = errors.New("coordinates should be numbers")
	ErrInvalidCells = errors.New("invalid cells string")
	ErrInvalidMark  = errors.New("only a player mark can be placed")
	ErrInputClosed  = errors.New("input is closed")
	ErrUnknownMode  = errors.New("unknown console mode")
)
