package entity

import "errors"

var (
	ErrNoStoreSelected    = errors.New("no store selected for cart")
	ErrEmptyCart          = errors.New("cart must have at least one item")
	ErrSubmissionInFlight = errors.New("a submission is already in progress for this cart")
)
