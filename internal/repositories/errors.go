package repositories

import "errors"

// ErrNotFound is wrapped by every repository when the targeted record does
// not exist, so callers can branch with errors.Is instead of matching
// message strings.
var ErrNotFound = errors.New("record not found")
