package common

import "errors"

// Business logic errors
var (
	// General errors
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")

	// Board errors
	ErrBoardNotFound = errors.New("board not found")

	// Card errors
	ErrCardNotFound = errors.New("card not found")

	// Comment errors
	ErrCommentNotFound = errors.New("comment not found")
)
