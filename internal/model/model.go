// Package model defines the core domain types for the event check-in system.
package model

import (
	"math"
	"time"
)

// AttendeesPageSize is the fixed number of attendees returned per listing page.
const AttendeesPageSize = 10

// MaxPageIndex is the largest page index whose offset fits in an int.
const MaxPageIndex = math.MaxInt / AttendeesPageSize

// Event represents a registrable occasion created by an organizer.
type Event struct {
	ID               string
	Title            string
	Details          *string
	Slug             string
	MaximumAttendees *int
	CreatedAt        time.Time
}

// HasCapacityFor reports whether one more attendee fits when count
// attendees are already registered. A nil maximum means unlimited.
func (e *Event) HasCapacityFor(count int) bool {
	return e.MaximumAttendees == nil || count < *e.MaximumAttendees
}

// Attendee is a person registered for exactly one event.
type Attendee struct {
	ID        int64
	Name      string
	Email     string
	EventID   string
	CreatedAt time.Time
}

// CheckIn records that an attendee has physically arrived.
type CheckIn struct {
	ID         int64
	AttendeeID int64
	CreatedAt  time.Time
}

// EventView is an event together with its live attendee count.
type EventView struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	Details          *string `json:"details"`
	Slug             string  `json:"slug"`
	MaximumAttendees *int    `json:"maximumAttendees"`
	AttendeesAmount  int     `json:"attendeesAmount"`
}

// AttendeeListItem is one row of an event's attendee listing.
type AttendeeListItem struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	CreatedAt   time.Time  `json:"createdAt"`
	CheckedInAt *time.Time `json:"checkedInAt"`
}

// AttendeeFilter scopes an attendee listing. A non-empty Query restricts
// results to names containing it.
type AttendeeFilter struct {
	EventID   string
	Query     string
	PageIndex int
}

// Offset returns the number of rows to skip for the filter's page.
func (f AttendeeFilter) Offset() int {
	return AttendeesPageSize * f.PageIndex
}

// AttendeePage is a single page of attendees plus the unpaged total.
type AttendeePage struct {
	Attendees      []AttendeeListItem `json:"attendees"`
	TotalAttendees int                `json:"totalAttendees"`
}

// BadgeHolder is the attendee data a badge is printed from.
type BadgeHolder struct {
	Name       string
	Email      string
	EventTitle string
}

// Badge is the printable view of an attendee.
type Badge struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	EventTitle string `json:"eventTitle"`
	CheckInURL string `json:"checkInURL"`
}

// CreateEventRequest is the payload for creating a new event.
type CreateEventRequest struct {
	Title            string  `json:"title" validate:"required,min=4"`
	Details          *string `json:"details"`
	MaximumAttendees *int    `json:"maximumAttendees" validate:"omitempty,gt=0"`
}

// RegisterRequest is the payload for registering an attendee for an event.
type RegisterRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}
