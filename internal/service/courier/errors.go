package courier

import "errors"

var (
	ErrUnknownProvider        = errors.New("unknown courier provider")
	ErrDuplicateProvider      = errors.New("courier provider registered twice")
	ErrCapabilityNotSupported = errors.New("courier does not support this operation")
	ErrRetriesExhausted       = errors.New("courier retries exhausted")
	ErrNoProviderAvailable    = errors.New("no courier covers this destination and service")
)
