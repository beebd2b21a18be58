package complaint

import "errors"

var (
	// ErrInvalidTransition is returned when a status change would move a
	// complaint backwards in its lifecycle.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus is returned for an unknown status label.
	ErrInvalidStatus = errors.New("invalid complaint status")
)
