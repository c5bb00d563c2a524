package moderation

import (
	"errors"
)

var (
	// ErrNotFound is returned when an operation references an id absent
	// from the relevant store (or a report that was already resolved).
	ErrNotFound = errors.New("not found")

	// ErrAlreadyReplied is returned when a second reply is attempted on
	// a message that already carries one.
	ErrAlreadyReplied = errors.New("message already has a reply")

	// ErrInvalidTransition is returned for status changes outside the
	// entity's state machine. Setting the status an entity already has
	// is not a transition and succeeds as a no-op.
	ErrInvalidTransition = errors.New("invalid status transition")
)
