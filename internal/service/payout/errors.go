package payout

import "errors"

var (
	ErrPayoutNotFound      = errors.New("payout request not found")
	ErrInvalidPayoutStatus = errors.New("payout request is not in a suitable status")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
