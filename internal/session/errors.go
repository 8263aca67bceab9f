package session

import (
	"errors"
)

// ErrIO is returned when reading, writing or stat-ing one of the session files failed. Output
// written before the failure is not rolled back.
var ErrIO = errors.New("i/o failure")
