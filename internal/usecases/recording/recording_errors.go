package recording

import "errors"

var (
	ErrOwnerRequired       = errors.New("owner ID is required")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidPeriod       = errors.New("start of period must be before its end")
)
