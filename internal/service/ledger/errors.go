package ledger

import "errors"

var (
	ErrTransactionNotFound = errors.New("commission transaction not found")
	ErrTransactionReversed = errors.New("commission transaction is reversed")
	ErrRateNotFound        = errors.New("store commission rate not set")
)
