package errors

import "errors"

var (
	ErrBoardSize        = errors.New("board size out of range")
	ErrEmptyCollection  = errors.New("sgf collection has no game trees")
	ErrRecordNotFound   = errors.New("record was not found")
	ErrPuzzleNotFound   = errors.New("puzzle was not found")
	ErrNoPuzzles        = errors.New("puzzle collection is empty")
	ErrInvalidMoves     = errors.New("invalid move list")
	ErrAlreadySolved    = errors.New("puzzle already solved")
	ErrStorageNotConfig = errors.New("storage is not configured")
)
