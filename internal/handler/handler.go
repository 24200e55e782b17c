// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Shivanand-hulikatti/event-checkin/internal/model"
	"github.com/Shivanand-hulikatti/event-checkin/internal/service"
)

// Service is the set of business operations the handlers expose.
type Service interface {
	CreateEvent(ctx context.Context, req model.CreateEventRequest) (string, error)
	ListEvents(ctx context.Context) ([]model.EventView, error)
	GetEvent(ctx context.Context, eventID string) (*model.EventView, error)
	RegisterAttendee(ctx context.Context, eventID string, req model.RegisterRequest) (int64, error)
	ListAttendees(ctx context.Context, f model.AttendeeFilter) (*model.AttendeePage, error)
	GetAttendeeBadge(ctx context.Context, attendeeID int64, baseURL string) (*model.Badge, error)
	CheckIn(ctx context.Context, attendeeID int64) error
}

// EventHandler holds all HTTP handlers for the event check-in API.
type EventHandler struct {
	svc      Service
	log      *zap.Logger
	validate *validator.Validate
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(svc Service, log *zap.Logger) *EventHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventHandler{svc: svc, log: log, validate: newValidator()}
}

// Register mounts the API routes on r.
func (h *EventHandler) Register(r chi.Router) {
	r.Route("/events", func(r chi.Router) {
		r.Post("/", h.CreateEvent)
		r.Get("/", h.ListEvents)
		r.Get("/{eventId}", h.GetEvent)
		r.Get("/{eventId}/attendees", h.ListAttendees)
		r.Post("/{eventId}/attendees", h.RegisterAttendee)
	})
	r.Route("/attendees", func(r chi.Router) {
		r.Get("/{attendeeId}/badge", h.GetAttendeeBadge)
		r.Get("/{attendeeId}/check-in", h.CheckIn)
	})
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Message: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// bind decodes and validates a JSON body, writing a 400 response on failure.
func (h *EventHandler) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			writeError(w, http.StatusBadRequest, err.Error())
			return false
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = validationReason(fe)
		}
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Message: "validation failed", Errors: fields})
		return false
	}
	return true
}

func validationReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		return "failed " + fe.Tag() + " validation"
	}
}

// writeServiceError maps a service failure to its HTTP response.
func (h *EventHandler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		writeError(w, statusFor(svcErr.Kind), svcErr.Message)
		return
	}
	h.log.Error("request failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindCapacityExceeded,
		service.KindDuplicateRegistration,
		service.KindAlreadyCheckedIn,
		service.KindSlugTaken:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func eventIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "eventId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "eventId must be a valid UUID")
		return "", false
	}
	return id.String(), true
}

func attendeeIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "attendeeId"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "attendeeId must be a positive integer")
		return 0, false
	}
	return id, true
}

// requestBaseURL is the scheme://host the client used to reach the service.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	// Only http and https are honoured from a proxy header.
	proto, _, _ := strings.Cut(r.Header.Get("X-Forwarded-Proto"), ",")
	switch proto = strings.ToLower(strings.TrimSpace(proto)); proto {
	case "http", "https":
		scheme = proto
	}
	return scheme + "://" + r.Host
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// CreateEvent handles POST /events
// Creates a new event; the slug is derived from the title.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if !h.bind(w, r, &req) {
		return
	}

	id, err := h.svc.CreateEvent(r.Context(), req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"eventId": id})
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListEvents(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	// Return an empty array rather than null for better client compatibility.
	if events == nil {
		events = []model.EventView{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"events": events})
}

// GetEvent handles GET /events/{eventId}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	event, err := h.svc.GetEvent(r.Context(), eventID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"event": event})
}

// ListAttendees handles GET /events/{eventId}/attendees?query=&pageIndex=
func (h *EventHandler) ListAttendees(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	pageIndex := 0
	if raw := q.Get("pageIndex"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > model.MaxPageIndex {
			writeError(w, http.StatusBadRequest, "pageIndex must be a non-negative integer within range")
			return
		}
		pageIndex = n
	}

	page, err := h.svc.ListAttendees(r.Context(), model.AttendeeFilter{
		EventID:   eventID,
		Query:     q.Get("query"),
		PageIndex: pageIndex,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// RegisterAttendee handles POST /events/{eventId}/attendees
func (h *EventHandler) RegisterAttendee(w http.ResponseWriter, r *http.Request) {
	eventID, ok := eventIDParam(w, r)
	if !ok {
		return
	}

	var req model.RegisterRequest
	if !h.bind(w, r, &req) {
		return
	}

	attendeeID, err := h.svc.RegisterAttendee(r.Context(), eventID, req)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{"attendeeId": attendeeID})
}

// GetAttendeeBadge handles GET /attendees/{attendeeId}/badge
func (h *EventHandler) GetAttendeeBadge(w http.ResponseWriter, r *http.Request) {
	attendeeID, ok := attendeeIDParam(w, r)
	if !ok {
		return
	}

	badge, err := h.svc.GetAttendeeBadge(r.Context(), attendeeID, requestBaseURL(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"attendee": badge})
}

// CheckIn handles GET /attendees/{attendeeId}/check-in
// Responds 201 with an empty body on the first check-in only.
func (h *EventHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	attendeeID, ok := attendeeIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.CheckIn(r.Context(), attendeeID); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
