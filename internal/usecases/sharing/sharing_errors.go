package sharing

import "errors"

var (
	ErrShareNotFound = errors.New("share not found")
	ErrSelfShare     = errors.New("cannot accept your own share")
	ErrNotShareOwner = errors.New("share belongs to another owner")
)
