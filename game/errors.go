package game

import "errors"

var (
	ErrCategoryFilled  = errors.New("category already scored")
	ErrDiceNotInPool   = errors.New("dice not in pool")
	ErrPoolTooSmall    = errors.New("pool holds fewer than five dice")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownGroup    = errors.New("unknown group")
	ErrMalformedHand   = errors.New("malformed hand")
)
