package model

import "errors"

var (
	ErrInvalidBet           = errors.New("bet must be positive")
	ErrInsufficientBalance  = errors.New("not enough balance")
	ErrCardAlreadyScratched = errors.New("card already scratched, take a new card")
	ErrPersistenceRead      = errors.New("failed to read saved state")
	ErrPersistenceWrite     = errors.New("failed to write saved state")
)
