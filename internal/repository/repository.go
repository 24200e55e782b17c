// Package repository implements all database queries for the event check-in system.
// It uses pgx directly (no ORM) for transparency and performance.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Shivanand-hulikatti/event-checkin/internal/model"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrEventFull is returned when an event has reached its maximum attendees.
var ErrEventFull = errors.New("event is full")

// ErrAlreadyRegistered is returned when the same email registers twice for an event.
var ErrAlreadyRegistered = errors.New("email already registered for this event")

// ErrAlreadyCheckedIn is returned when an attendee already has a check-in.
var ErrAlreadyCheckedIn = errors.New("attendee already checked in")

// ErrSlugTaken is returned when another event already uses the slug.
var ErrSlugTaken = errors.New("slug already in use")

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// EventRepository handles persistence for events.
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// Create inserts a new event. The caller assigns the ID and slug.
func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO events (id, title, details, slug, maximum_attendees, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Title, e.Details, e.Slug, e.MaximumAttendees, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlugTaken
		}
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// FindBySlug returns the event using slug or ErrNotFound.
func (r *EventRepository) FindBySlug(ctx context.Context, slug string) (*model.Event, error) {
	var e model.Event
	err := r.db.QueryRow(ctx,
		`SELECT id, title, details, slug, maximum_attendees, created_at
		 FROM events WHERE slug = $1`,
		slug,
	).Scan(&e.ID, &e.Title, &e.Details, &e.Slug, &e.MaximumAttendees, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find event by slug: %w", err)
	}
	return &e, nil
}

// Exists reports whether an event with id is stored.
func (r *EventRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check event exists: %w", err)
	}
	return exists, nil
}

// View returns an event with its live attendee count, or ErrNotFound.
func (r *EventRepository) View(ctx context.Context, id string) (*model.EventView, error) {
	var v model.EventView
	err := r.db.QueryRow(ctx,
		`SELECT e.id, e.title, e.details, e.slug, e.maximum_attendees,
		        (SELECT COUNT(*) FROM attendees a WHERE a.event_id = e.id)
		 FROM events e WHERE e.id = $1`,
		id,
	).Scan(&v.ID, &v.Title, &v.Details, &v.Slug, &v.MaximumAttendees, &v.AttendeesAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return &v, nil
}

// List returns all events ordered by creation time descending.
func (r *EventRepository) List(ctx context.Context) ([]model.EventView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT e.id, e.title, e.details, e.slug, e.maximum_attendees,
		        (SELECT COUNT(*) FROM attendees a WHERE a.event_id = e.id)
		 FROM events e
		 ORDER BY e.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []model.EventView
	for rows.Next() {
		var v model.EventView
		if err := rows.Scan(&v.ID, &v.Title, &v.Details, &v.Slug, &v.MaximumAttendees, &v.AttendeesAmount); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, v)
	}
	return events, rows.Err()
}

// AttendeeRepository handles persistence for attendees.
type AttendeeRepository struct {
	db *pgxpool.Pool
}

// NewAttendeeRepository constructs an AttendeeRepository.
func NewAttendeeRepository(db *pgxpool.Pool) *AttendeeRepository {
	return &AttendeeRepository{db: db}
}

// Register creates an attendee inside a single transaction and returns its id.
//
// The event row is locked with SELECT ... FOR UPDATE before the attendee count
// is read, so concurrent registrations for the same event run one at a time
// and cannot overshoot maximum_attendees. Checks run in this order: event
// exists, capacity, duplicate email. The (event_id, email) unique index backs
// the duplicate check.
func (r *AttendeeRepository) Register(ctx context.Context, eventID, name, email string) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	// No-op once committed.
	defer func() { _ = tx.Rollback(ctx) }()

	var maximum *int
	err = tx.QueryRow(ctx,
		`SELECT maximum_attendees FROM events WHERE id = $1 FOR UPDATE`,
		eventID,
	).Scan(&maximum)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("lock event row: %w", err)
	}

	var count int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendees WHERE event_id = $1`,
		eventID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count attendees: %w", err)
	}
	event := model.Event{MaximumAttendees: maximum}
	if !event.HasCapacityFor(count) {
		return 0, ErrEventFull
	}

	var duplicate bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM attendees WHERE event_id = $1 AND email = $2)`,
		eventID, email,
	).Scan(&duplicate)
	if err != nil {
		return 0, fmt.Errorf("check duplicate: %w", err)
	}
	if duplicate {
		return 0, ErrAlreadyRegistered
	}

	var id int64
	err = tx.QueryRow(ctx,
		`INSERT INTO attendees (name, email, event_id) VALUES ($1, $2, $3) RETURNING id`,
		name, email, eventID,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrAlreadyRegistered
		}
		return 0, fmt.Errorf("insert attendee: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return id, nil
}

// BadgeHolder returns the attendee joined with its event title, or ErrNotFound.
func (r *AttendeeRepository) BadgeHolder(ctx context.Context, attendeeID int64) (*model.BadgeHolder, error) {
	var b model.BadgeHolder
	err := r.db.QueryRow(ctx,
		`SELECT a.name, a.email, e.title
		 FROM attendees a
		 JOIN events e ON e.id = a.event_id
		 WHERE a.id = $1`,
		attendeeID,
	).Scan(&b.Name, &b.Email, &b.EventTitle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get badge holder: %w", err)
	}
	return &b, nil
}

// List returns one page of attendees matching f, newest first.
// strpos keeps the name filter a literal substring match.
func (r *AttendeeRepository) List(ctx context.Context, f model.AttendeeFilter) ([]model.AttendeeListItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.name, a.email, a.created_at, c.created_at
		 FROM attendees a
		 LEFT JOIN check_ins c ON c.attendee_id = a.id
		 WHERE a.event_id = $1 AND ($2::text = '' OR strpos(a.name, $2) > 0)
		 ORDER BY a.created_at DESC, a.id DESC
		 LIMIT $3 OFFSET $4`,
		f.EventID, f.Query, model.AttendeesPageSize, f.Offset(),
	)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	attendees := []model.AttendeeListItem{}
	for rows.Next() {
		var a model.AttendeeListItem
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.CreatedAt, &a.CheckedInAt); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		attendees = append(attendees, a)
	}
	return attendees, rows.Err()
}

// Count returns the number of attendees matching f, ignoring its page.
func (r *AttendeeRepository) Count(ctx context.Context, f model.AttendeeFilter) (int, error) {
	var n int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendees
		 WHERE event_id = $1 AND ($2::text = '' OR strpos(name, $2) > 0)`,
		f.EventID, f.Query,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count attendees: %w", err)
	}
	return n, nil
}

// CheckInRepository handles persistence for check-ins.
type CheckInRepository struct {
	db *pgxpool.Pool
}

// NewCheckInRepository constructs a CheckInRepository.
func NewCheckInRepository(db *pgxpool.Pool) *CheckInRepository {
	return &CheckInRepository{db: db}
}

// Create records a check-in for attendeeID. It returns ErrNotFound when the
// attendee does not exist and ErrAlreadyCheckedIn when a check-in is already
// stored; the unique attendee_id index makes the insert the single arbiter.
func (r *CheckInRepository) Create(ctx context.Context, attendeeID int64) error {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM attendees WHERE id = $1)`,
		attendeeID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check attendee exists: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	tag, err := r.db.Exec(ctx,
		`INSERT INTO check_ins (attendee_id) VALUES ($1)
		 ON CONFLICT (attendee_id) DO NOTHING`,
		attendeeID,
	)
	if err != nil {
		return fmt.Errorf("insert check-in: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAlreadyCheckedIn
	}
	return nil
}
