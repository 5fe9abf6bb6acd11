package repository

import "errors"

// ErrNotFound is returned by Get* methods when no row matches. Mutation
// services translate it into a silent no-op; query callers surface an
// empty result.
var ErrNotFound = errors.New("not found")
