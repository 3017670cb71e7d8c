package storage

import "errors"

// Validation errors surfaced to the user as blocking form messages. The
// operation that raised one does not proceed; nothing propagates past the
// handler.
var (
	ErrTitleRequired   = errors.New("event title is required")
	ErrDateRequired    = errors.New("event date is required")
	ErrTimeRequired    = errors.New("start and end time are required")
	ErrUnknownType     = errors.New("unknown event type")
	ErrCaseRequired    = errors.New("please link a case for this event type")
	ErrNameRequired    = errors.New("client name is required")
	ErrContactRequired = errors.New("client phone and email are required")
	ErrEmailRequired   = errors.New("a valid email address is required")
	ErrMemberNotFound  = errors.New("team member not found")
)
