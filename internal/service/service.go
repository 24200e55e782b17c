// Package service implements the business rules for events, registrations,
// badges and check-ins, between HTTP handlers and the repository layer.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks EventStore,AttendeeStore,CheckInStore

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Shivanand-hulikatti/event-checkin/internal/metrics"
	"github.com/Shivanand-hulikatti/event-checkin/internal/model"
	"github.com/Shivanand-hulikatti/event-checkin/internal/repository"
	"github.com/Shivanand-hulikatti/event-checkin/internal/slug"
)

// EventStore persists events.
type EventStore interface {
	Create(ctx context.Context, e *model.Event) error
	FindBySlug(ctx context.Context, slug string) (*model.Event, error)
	Exists(ctx context.Context, id string) (bool, error)
	View(ctx context.Context, id string) (*model.EventView, error)
	List(ctx context.Context) ([]model.EventView, error)
}

// AttendeeStore persists attendees. Register must apply the existence,
// capacity and duplicate checks atomically with the insert.
type AttendeeStore interface {
	Register(ctx context.Context, eventID, name, email string) (int64, error)
	BadgeHolder(ctx context.Context, attendeeID int64) (*model.BadgeHolder, error)
	List(ctx context.Context, f model.AttendeeFilter) ([]model.AttendeeListItem, error)
	Count(ctx context.Context, f model.AttendeeFilter) (int, error)
}

// CheckInStore persists check-ins, at most one per attendee.
type CheckInStore interface {
	Create(ctx context.Context, attendeeID int64) error
}

// Service orchestrates the event check-in business operations.
type Service struct {
	events    EventStore
	attendees AttendeeStore
	checkIns  CheckInStore
	log       *zap.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for rule outcomes.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithMetrics enables outcome counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock sets the time source for new events.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Service with its dependencies.
func New(events EventStore, attendees AttendeeStore, checkIns CheckInStore, opts ...Option) (*Service, error) {
	if events == nil {
		return nil, errors.New("event store is required")
	}
	if attendees == nil {
		return nil, errors.New("attendee store is required")
	}
	if checkIns == nil {
		return nil, errors.New("check-in store is required")
	}

	s := &Service{
		events:    events,
		attendees: attendees,
		checkIns:  checkIns,
		log:       zap.NewNop(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CreateEvent stores a new event with a slug derived from its title and
// returns the event id.
func (s *Service) CreateEvent(ctx context.Context, req model.CreateEventRequest) (string, error) {
	title := strings.TrimSpace(req.Title)
	event := &model.Event{
		ID:               uuid.NewString(),
		Title:            title,
		Details:          req.Details,
		Slug:             slug.Generate(title),
		MaximumAttendees: req.MaximumAttendees,
		CreatedAt:        s.now(),
	}

	_, err := s.events.FindBySlug(ctx, event.Slug)
	switch {
	case err == nil:
		return "", s.reject("create_event", errSlugTaken)
	case !errors.Is(err, repository.ErrNotFound):
		return "", fmt.Errorf("find event by slug: %w", err)
	}

	if err := s.events.Create(ctx, event); err != nil {
		if errors.Is(err, repository.ErrSlugTaken) {
			return "", s.reject("create_event", errSlugTaken)
		}
		return "", fmt.Errorf("create event: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementEventsCreated()
	}
	s.log.Info("event created", zap.String("event_id", event.ID), zap.String("slug", event.Slug))
	return event.ID, nil
}

// ListEvents returns all events with their live attendee counts.
func (s *Service) ListEvents(ctx context.Context) ([]model.EventView, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// GetEvent returns a single event with its live attendee count.
func (s *Service) GetEvent(ctx context.Context, eventID string) (*model.EventView, error) {
	event, err := s.events.View(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, s.reject("get_event", errEventNotFound)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

// RegisterAttendee registers name and email for an event and returns the new
// attendee id. Failures are reported in this order: event not found, capacity
// exceeded, email already registered.
func (s *Service) RegisterAttendee(ctx context.Context, eventID string, req model.RegisterRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	id, err := s.attendees.Register(ctx, eventID, name, email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return 0, s.reject("register", errEventNotFound)
		case errors.Is(err, repository.ErrEventFull):
			return 0, s.reject("register", errCapacityExceeded)
		case errors.Is(err, repository.ErrAlreadyRegistered):
			return 0, s.reject("register", errDuplicateEmail)
		}
		return 0, fmt.Errorf("register for event: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementRegistrations()
	}
	s.log.Info("attendee registered", zap.String("event_id", eventID), zap.Int64("attendee_id", id))
	return id, nil
}

// GetAttendeeBadge returns the attendee's badge with a check-in URL rooted at
// baseURL, which must be an absolute scheme://host prefix.
func (s *Service) GetAttendeeBadge(ctx context.Context, attendeeID int64, baseURL string) (*model.Badge, error) {
	holder, err := s.attendees.BadgeHolder(ctx, attendeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, s.reject("get_badge", errAttendeeNotFound)
		}
		return nil, fmt.Errorf("get badge holder: %w", err)
	}

	return &model.Badge{
		Name:       holder.Name,
		Email:      holder.Email,
		EventTitle: holder.EventTitle,
		CheckInURL: CheckInURL(baseURL, attendeeID),
	}, nil
}

// CheckInURL is the absolute URL at which attendeeID is checked in.
func CheckInURL(baseURL string, attendeeID int64) string {
	return fmt.Sprintf("%s/attendees/%d/check-in", strings.TrimRight(baseURL, "/"), attendeeID)
}

// CheckIn records the attendee's arrival. A second call for the same attendee
// fails rather than succeeding silently.
func (s *Service) CheckIn(ctx context.Context, attendeeID int64) error {
	if err := s.checkIns.Create(ctx, attendeeID); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return s.reject("check_in", errAttendeeNotFound)
		case errors.Is(err, repository.ErrAlreadyCheckedIn):
			return s.reject("check_in", errAlreadyCheckedIn)
		}
		return fmt.Errorf("check in: %w", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCheckIns()
	}
	s.log.Info("attendee checked in", zap.Int64("attendee_id", attendeeID))
	return nil
}

// ListAttendees returns one page of an event's attendees, newest first, and
// the total number matching the same name filter.
func (s *Service) ListAttendees(ctx context.Context, f model.AttendeeFilter) (*model.AttendeePage, error) {
	var (
		exists    bool
		attendees []model.AttendeeListItem
		total     int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		exists, err = s.events.Exists(gctx, f.EventID)
		return err
	})
	g.Go(func() error {
		var err error
		attendees, err = s.attendees.List(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.attendees.Count(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	if !exists {
		return nil, s.reject("list_attendees", errEventNotFound)
	}
	if attendees == nil {
		attendees = []model.AttendeeListItem{}
	}
	return &model.AttendeePage{Attendees: attendees, TotalAttendees: total}, nil
}

func (s *Service) reject(operation string, err *Error) error {
	if s.metrics != nil {
		s.metrics.IncrementRejection(operation, err.Kind.String())
	}
	s.log.Warn("request rejected",
		zap.String("operation", operation),
		zap.String("kind", err.Kind.String()),
	)
	return err
}
