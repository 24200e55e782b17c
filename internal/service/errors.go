package service

import "errors"

// Kind identifies which business rule refused an operation.
type Kind int

const (
	// KindUnknown marks errors that are not business-rule failures.
	KindUnknown Kind = iota
	KindNotFound
	KindCapacityExceeded
	KindDuplicateRegistration
	KindAlreadyCheckedIn
	KindSlugTaken
)

// String returns the stable label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindCapacityExceeded:
		return "capacity_exceeded"
	case KindDuplicateRegistration:
		return "duplicate_registration"
	case KindAlreadyCheckedIn:
		return "already_checked_in"
	case KindSlugTaken:
		return "slug_taken"
	default:
		return "unknown"
	}
}

// Error is a client-caused failure of a business rule.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// KindOf returns the Kind of err, or KindUnknown when err is not a *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

var (
	errEventNotFound    = newError(KindNotFound, "Event not found.")
	errAttendeeNotFound = newError(KindNotFound, "Attendee not found.")
	errCapacityExceeded = newError(KindCapacityExceeded, "The maximum number of attendees for this event has been reached.")
	errDuplicateEmail   = newError(KindDuplicateRegistration, "This email is already registered for this event.")
	errAlreadyCheckedIn = newError(KindAlreadyCheckedIn, "Attendee has already checked in.")
	errSlugTaken        = newError(KindSlugTaken, "Another event with the same title already exists.")
)
