package state

import "errors"

var (
	// ErrInvalidState is returned when a stroke operation is called out of sequence.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidArgument is returned for a malformed colour or a non-positive / non-finite width.
	ErrInvalidArgument = errors.New("invalid argument")
)
