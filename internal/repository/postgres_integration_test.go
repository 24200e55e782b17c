//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Shivanand-hulikatti/event-checkin/internal/database"
	"github.com/Shivanand-hulikatti/event-checkin/internal/model"
	"github.com/Shivanand-hulikatti/event-checkin/internal/repository"
)

type PostgresSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
	events    *repository.EventRepository
	attendees *repository.AttendeeRepository
	checkIns  *repository.CheckInRepository
}

func TestPostgresSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("eventcheckin"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.pool, err = pgxpool.New(ctx, dsn)
	s.Require().NoError(err)
	s.Require().NoError(database.Migrate(ctx, s.pool))
	// Migrate must be repeatable.
	s.Require().NoError(database.Migrate(ctx, s.pool))

	s.events = repository.NewEventRepository(s.pool)
	s.attendees = repository.NewAttendeeRepository(s.pool)
	s.checkIns = repository.NewCheckInRepository(s.pool)
}

func (s *PostgresSuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *PostgresSuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE check_ins, attendees, events RESTART IDENTITY CASCADE`)
	s.Require().NoError(err)
}

func (s *PostgresSuite) createEvent(title string, maximum *int) string {
	id := uuid.NewString()
	err := s.events.Create(context.Background(), &model.Event{
		ID:               id,
		Title:            title,
		Slug:             title + "-" + id[:8],
		MaximumAttendees: maximum,
		CreatedAt:        time.Now().UTC(),
	})
	s.Require().NoError(err)
	return id
}

func (s *PostgresSuite) TestCreateEventDuplicateSlug() {
	ctx := context.Background()
	e := &model.Event{ID: uuid.NewString(), Title: "DevFest", Slug: "devfest", CreatedAt: time.Now()}
	s.Require().NoError(s.events.Create(ctx, e))

	dup := &model.Event{ID: uuid.NewString(), Title: "Devfest", Slug: "devfest", CreatedAt: time.Now()}
	s.ErrorIs(s.events.Create(ctx, dup), repository.ErrSlugTaken)

	found, err := s.events.FindBySlug(ctx, "devfest")
	s.Require().NoError(err)
	s.Equal(e.ID, found.ID)
}

func (s *PostgresSuite) TestViewCountsAttendees() {
	ctx := context.Background()
	details := "Community conference"
	limit := 50
	id := uuid.NewString()
	s.Require().NoError(s.events.Create(ctx, &model.Event{
		ID: id, Title: "DevFest", Details: &details, Slug: "devfest", MaximumAttendees: &limit, CreatedAt: time.Now(),
	}))
	_, err := s.attendees.Register(ctx, id, "Ana", "ana@example.com")
	s.Require().NoError(err)

	v, err := s.events.View(ctx, id)
	s.Require().NoError(err)
	s.Equal("DevFest", v.Title)
	s.Equal(&details, v.Details)
	s.Equal(&limit, v.MaximumAttendees)
	s.Equal(1, v.AttendeesAmount)

	_, err = s.events.View(ctx, uuid.NewString())
	s.ErrorIs(err, repository.ErrNotFound)

	exists, err := s.events.Exists(ctx, id)
	s.Require().NoError(err)
	s.True(exists)
}

// TestConcurrentRegistrationRespectsCapacity verifies the row lock keeps the
// attendee count at or below the maximum under contention.
func (s *PostgresSuite) TestConcurrentRegistrationRespectsCapacity() {
	ctx := context.Background()
	limit := 10
	id := s.createEvent("capacity", &limit)

	const goroutines = 40
	var wg sync.WaitGroup
	var ok, full atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.attendees.Register(ctx, id, "User", fmt.Sprintf("user%d@example.com", i))
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, repository.ErrEventFull):
				full.Add(1)
			}
		}(i)
	}
	wg.Wait()

	s.Equal(int32(limit), ok.Load())
	s.Equal(int32(goroutines-limit), full.Load())

	total, err := s.attendees.Count(ctx, model.AttendeeFilter{EventID: id})
	s.Require().NoError(err)
	s.Equal(limit, total)
}

// TestConcurrentDuplicateEmail verifies exactly one registration wins.
func (s *PostgresSuite) TestConcurrentDuplicateEmail() {
	ctx := context.Background()
	id := s.createEvent("duplicates", nil)

	const goroutines = 20
	var wg sync.WaitGroup
	var ok, dup atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.attendees.Register(ctx, id, "Ana", "ana@example.com")
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, repository.ErrAlreadyRegistered):
				dup.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), ok.Load())
	s.Equal(int32(goroutines-1), dup.Load())
}

func (s *PostgresSuite) TestRegisterUnknownEvent() {
	_, err := s.attendees.Register(context.Background(), uuid.NewString(), "Ana", "ana@example.com")
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *PostgresSuite) TestListPaginationAndFilter() {
	ctx := context.Background()
	id := s.createEvent("listing", nil)

	var ids []int64
	for i := 1; i <= 15; i++ {
		name := fmt.Sprintf("Attendee %02d", i)
		if i%5 == 0 {
			name = fmt.Sprintf("Speaker %02d", i)
		}
		attendeeID, err := s.attendees.Register(ctx, id, name, fmt.Sprintf("a%d@example.com", i))
		s.Require().NoError(err)
		ids = append(ids, attendeeID)
	}
	s.Require().NoError(s.checkIns.Create(ctx, ids[14]))

	page0, err := s.attendees.List(ctx, model.AttendeeFilter{EventID: id})
	s.Require().NoError(err)
	s.Require().Len(page0, 10)
	s.Equal(ids[14], page0[0].ID)
	s.NotNil(page0[0].CheckedInAt)
	s.Nil(page0[1].CheckedInAt)

	page1, err := s.attendees.List(ctx, model.AttendeeFilter{EventID: id, PageIndex: 1})
	s.Require().NoError(err)
	s.Len(page1, 5)
	s.Equal(ids[0], page1[4].ID)

	filter := model.AttendeeFilter{EventID: id, Query: "Speaker"}
	speakers, err := s.attendees.List(ctx, filter)
	s.Require().NoError(err)
	s.Len(speakers, 3)
	total, err := s.attendees.Count(ctx, filter)
	s.Require().NoError(err)
	s.Equal(3, total)

	// Wildcards are matched literally.
	total, err = s.attendees.Count(ctx, model.AttendeeFilter{EventID: id, Query: "%"})
	s.Require().NoError(err)
	s.Zero(total)
}

func (s *PostgresSuite) TestCheckInOnce() {
	ctx := context.Background()
	id := s.createEvent("checkins", nil)
	attendeeID, err := s.attendees.Register(ctx, id, "Ana", "ana@example.com")
	s.Require().NoError(err)

	s.ErrorIs(s.checkIns.Create(ctx, attendeeID+100), repository.ErrNotFound)
	s.Require().NoError(s.checkIns.Create(ctx, attendeeID))
	s.ErrorIs(s.checkIns.Create(ctx, attendeeID), repository.ErrAlreadyCheckedIn)
}

func (s *PostgresSuite) TestBadgeHolder() {
	ctx := context.Background()
	id := s.createEvent("DevFest", nil)
	attendeeID, err := s.attendees.Register(ctx, id, "Ana", "ana@example.com")
	s.Require().NoError(err)

	b, err := s.attendees.BadgeHolder(ctx, attendeeID)
	s.Require().NoError(err)
	s.Equal("DevFest", b.EventTitle)
	s.Equal("ana@example.com", b.Email)

	_, err = s.attendees.BadgeHolder(ctx, attendeeID+1)
	s.ErrorIs(err, repository.ErrNotFound)
}
