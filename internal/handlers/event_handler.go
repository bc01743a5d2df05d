package handlers

import (
	"net/http"

	"github.com/anonto42/notifly/backend/internal/dispatch"
	"github.com/anonto42/notifly/backend/internal/models"
	"github.com/anonto42/notifly/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// EventHandler handles HTTP requests related to event intake
type EventHandler struct {
	eventRepository repositories.EventRepository
	queue           *dispatch.Queue
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventRepo repositories.EventRepository, queue *dispatch.Queue) *EventHandler {
	return &EventHandler{
		eventRepository: eventRepo,
		queue:           queue,
	}
}

// RegisterEventRoutes registers event-related routes
func (h *EventHandler) RegisterEventRoutes(g *echo.Group) {
	g.POST("/events", h.SubmitEvent)
}

// SubmitEvent persists a new event and enqueues it for dispatch. The
// response acknowledges creation only; whether the event produces a
// notification is decided later by the dispatcher.
func (h *EventHandler) SubmitEvent(c echo.Context) error {
	var req models.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event := &models.Event{
		Type:         req.Type,
		SourceUserID: req.SourceUserID,
		TargetUserID: req.TargetUserID,
		Data:         req.Data,
	}

	// Enqueue only after the event is durably recorded; an unsaved event
	// must never reach the dispatcher.
	if err := h.eventRepository.RecordEvent(c.Request().Context(), event); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	h.queue.Enqueue(event)

	return c.JSON(http.StatusCreated, echo.Map{
		"eventId": event.EventID,
		"message": "Event created",
	})
}
