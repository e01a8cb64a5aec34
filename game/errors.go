package game

import "errors"

var (
	// ErrIllegalAction is returned when an action is applied to a state in which it is not applicable.
	ErrIllegalAction = errors.New("illegal action")
	// ErrInvalidSetup is returned when a state cannot be constructed consistently.
	ErrInvalidSetup = errors.New("invalid setup")
)
