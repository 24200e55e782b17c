package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Shivanand-hulikatti/event-checkin/internal/model"
)

// Memory is an in-process store with the same semantics as the PostgreSQL
// repositories. A single mutex makes every operation atomic, standing in for
// the row lock and unique indexes of the database.
type Memory struct {
	mu           sync.RWMutex
	now          func() time.Time
	events       map[string]*model.Event
	attendees    map[int64]*model.Attendee
	checkIns     map[int64]*model.CheckIn
	nextAttendee int64
	nextCheckIn  int64
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithClock sets the time source used for created_at stamps.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMemory constructs an empty in-memory store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		now:       func() time.Time { return time.Now().UTC() },
		events:    make(map[string]*model.Event),
		attendees: make(map[int64]*model.Attendee),
		checkIns:  make(map[int64]*model.CheckIn),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Events returns the event repository view of the store.
func (m *Memory) Events() *MemoryEvents { return &MemoryEvents{m: m} }

// Attendees returns the attendee repository view of the store.
func (m *Memory) Attendees() *MemoryAttendees { return &MemoryAttendees{m: m} }

// CheckIns returns the check-in repository view of the store.
func (m *Memory) CheckIns() *MemoryCheckIns { return &MemoryCheckIns{m: m} }

func (m *Memory) countAttendees(eventID string) int {
	n := 0
	for _, a := range m.attendees {
		if a.EventID == eventID {
			n++
		}
	}
	return n
}

func (m *Memory) view(e *model.Event) model.EventView {
	return model.EventView{
		ID:               e.ID,
		Title:            e.Title,
		Details:          e.Details,
		Slug:             e.Slug,
		MaximumAttendees: e.MaximumAttendees,
		AttendeesAmount:  m.countAttendees(e.ID),
	}
}

// MemoryEvents is the in-memory counterpart of EventRepository.
type MemoryEvents struct {
	m *Memory
}

// Create stores e, rejecting a slug that is already used.
func (r *MemoryEvents) Create(_ context.Context, e *model.Event) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, existing := range r.m.events {
		if existing.Slug == e.Slug {
			return ErrSlugTaken
		}
	}
	stored := *e
	r.m.events[e.ID] = &stored
	return nil
}

// FindBySlug returns the event using slug or ErrNotFound.
func (r *MemoryEvents) FindBySlug(_ context.Context, slug string) (*model.Event, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	for _, e := range r.m.events {
		if e.Slug == slug {
			found := *e
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Exists reports whether an event with id is stored.
func (r *MemoryEvents) Exists(_ context.Context, id string) (bool, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	_, ok := r.m.events[id]
	return ok, nil
}

// View returns an event with its live attendee count, or ErrNotFound.
func (r *MemoryEvents) View(_ context.Context, id string) (*model.EventView, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	e, ok := r.m.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	v := r.m.view(e)
	return &v, nil
}

// List returns all events ordered by creation time descending.
func (r *MemoryEvents) List(_ context.Context) ([]model.EventView, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	events := make([]*model.Event, 0, len(r.m.events))
	for _, e := range r.m.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})

	views := make([]model.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, r.m.view(e))
	}
	return views, nil
}

// MemoryAttendees is the in-memory counterpart of AttendeeRepository.
type MemoryAttendees struct {
	m *Memory
}

// Register creates an attendee with the same check order as the database
// transaction: event exists, capacity, duplicate email.
func (r *MemoryAttendees) Register(_ context.Context, eventID, name, email string) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	e, ok := r.m.events[eventID]
	if !ok {
		return 0, ErrNotFound
	}
	if !e.HasCapacityFor(r.m.countAttendees(eventID)) {
		return 0, ErrEventFull
	}
	for _, a := range r.m.attendees {
		if a.EventID == eventID && a.Email == email {
			return 0, ErrAlreadyRegistered
		}
	}

	r.m.nextAttendee++
	a := &model.Attendee{
		ID:        r.m.nextAttendee,
		Name:      name,
		Email:     email,
		EventID:   eventID,
		CreatedAt: r.m.now(),
	}
	r.m.attendees[a.ID] = a
	return a.ID, nil
}

// BadgeHolder returns the attendee joined with its event title, or ErrNotFound.
func (r *MemoryAttendees) BadgeHolder(_ context.Context, attendeeID int64) (*model.BadgeHolder, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	a, ok := r.m.attendees[attendeeID]
	if !ok {
		return nil, ErrNotFound
	}
	e, ok := r.m.events[a.EventID]
	if !ok {
		return nil, ErrNotFound
	}
	return &model.BadgeHolder{Name: a.Name, Email: a.Email, EventTitle: e.Title}, nil
}

func (r *MemoryAttendees) matching(f model.AttendeeFilter) []*model.Attendee {
	var out []*model.Attendee
	for _, a := range r.m.attendees {
		if a.EventID != f.EventID {
			continue
		}
		if f.Query != "" && !strings.Contains(a.Name, f.Query) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// List returns one page of attendees matching f, newest first.
func (r *MemoryAttendees) List(_ context.Context, f model.AttendeeFilter) ([]model.AttendeeListItem, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	matched := r.matching(f)
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	items := []model.AttendeeListItem{}
	start := f.Offset()
	if start < 0 || start >= len(matched) {
		return items, nil
	}
	end := min(start+model.AttendeesPageSize, len(matched))
	for _, a := range matched[start:end] {
		item := model.AttendeeListItem{
			ID:        a.ID,
			Name:      a.Name,
			Email:     a.Email,
			CreatedAt: a.CreatedAt,
		}
		if c, ok := r.m.checkIns[a.ID]; ok {
			at := c.CreatedAt
			item.CheckedInAt = &at
		}
		items = append(items, item)
	}
	return items, nil
}

// Count returns the number of attendees matching f, ignoring its page.
func (r *MemoryAttendees) Count(_ context.Context, f model.AttendeeFilter) (int, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()

	return len(r.matching(f)), nil
}

// MemoryCheckIns is the in-memory counterpart of CheckInRepository.
type MemoryCheckIns struct {
	m *Memory
}

// Create records a check-in for attendeeID.
func (r *MemoryCheckIns) Create(_ context.Context, attendeeID int64) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if _, ok := r.m.attendees[attendeeID]; !ok {
		return ErrNotFound
	}
	if _, ok := r.m.checkIns[attendeeID]; ok {
		return ErrAlreadyCheckedIn
	}

	r.m.nextCheckIn++
	r.m.checkIns[attendeeID] = &model.CheckIn{
		ID:         r.m.nextCheckIn,
		AttendeeID: attendeeID,
		CreatedAt:  r.m.now(),
	}
	return nil
}
