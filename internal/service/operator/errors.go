package operator

import "errors"

var (
	ErrTaskNotFound = errors.New("operator task not found")
	ErrTaskResolved = errors.New("operator task already resolved")
)
