package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/notifly/backend/internal/dispatch"
	"github.com/anonto42/notifly/backend/internal/models"
	"github.com/anonto42/notifly/backend/validators"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepository records events in memory
type fakeEventRepository struct {
	recorded []models.Event
	saveErr  error
}

func (f *fakeEventRepository) RecordEvent(_ context.Context, event *models.Event) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	event.EventID = uuid.New().String()
	event.Timestamp = time.Now().UTC()
	f.recorded = append(f.recorded, *event)
	return nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSubmitEventCreated(t *testing.T) {
	e := newTestEcho()
	events := &fakeEventRepository{}
	queue := dispatch.NewQueue()
	NewEventHandler(events, queue).RegisterEventRoutes(e.Group(""))

	rec := postJSON(e, "/events", `{
		"type": "like",
		"sourceUserId": "user1",
		"targetUserId": "user2",
		"data": {"sourceUsername": "Alice"}
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "eventId")

	require.Len(t, events.recorded, 1)
	stored := events.recorded[0]
	assert.Equal(t, "like", stored.Type)
	assert.Equal(t, "user1", stored.SourceUserID)
	assert.Equal(t, "user2", stored.TargetUserID)
	assert.Equal(t, "Alice", stored.Data["sourceUsername"])
	assert.NotEmpty(t, stored.EventID)

	// The persisted event is also enqueued for dispatch.
	queued, ok := queue.DequeueOne()
	require.True(t, ok)
	assert.Equal(t, stored.EventID, queued.EventID)
}

func TestSubmitEventMissingIdentifiers(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing type", body: `{"sourceUserId": "user1", "targetUserId": "user2"}`},
		{name: "missing sourceUserId", body: `{"type": "like", "targetUserId": "user2"}`},
		{name: "missing targetUserId", body: `{"type": "like", "sourceUserId": "user1"}`},
		{name: "empty body", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			events := &fakeEventRepository{}
			queue := dispatch.NewQueue()
			NewEventHandler(events, queue).RegisterEventRoutes(e.Group(""))

			rec := postJSON(e, "/events", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, events.recorded)
			assert.Equal(t, 0, queue.Len())
		})
	}
}

func TestSubmitEventPersistenceFailure(t *testing.T) {
	e := newTestEcho()
	events := &fakeEventRepository{saveErr: errors.New("mongo down")}
	queue := dispatch.NewQueue()
	NewEventHandler(events, queue).RegisterEventRoutes(e.Group(""))

	rec := postJSON(e, "/events", `{"type": "like", "sourceUserId": "user1", "targetUserId": "user2"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// An unsaved event must never be queued.
	assert.Equal(t, 0, queue.Len())
}
