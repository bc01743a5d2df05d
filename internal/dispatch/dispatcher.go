package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/anonto42/notifly/backend/internal/models"
	"github.com/anonto42/notifly/backend/internal/repositories"
	"gorm.io/gorm"
)

// DefaultContentTemplate renders the actor's display name followed by the
// event type with the original "…d your post" suffix ("like" -> "liked your
// post"). The suffix only conjugates verb-like types cleanly; deployments
// with other type vocabularies should override the template via config.
const DefaultContentTemplate = "%s %sd your post"

// placeholderActor is rendered when the event payload carries no usable
// sourceUsername.
const placeholderActor = "Someone"

// Dispatcher periodically drains the queue, one event per tick, and turns
// eligible events into notifications. An event is eligible when its target
// user exists in the directory and has the inApp preference enabled;
// anything else is discarded silently.
type Dispatcher struct {
	queue           *Queue
	users           repositories.UserRepository
	notifications   repositories.NotificationRepository
	interval        time.Duration
	contentTemplate string
}

// NewDispatcher creates a Dispatcher. An empty contentTemplate falls back
// to DefaultContentTemplate; a non-positive interval falls back to 2s.
func NewDispatcher(queue *Queue, users repositories.UserRepository, notifications repositories.NotificationRepository, interval time.Duration, contentTemplate string) *Dispatcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	if contentTemplate == "" {
		contentTemplate = DefaultContentTemplate
	}
	return &Dispatcher{
		queue:           queue,
		users:           users,
		notifications:   notifications,
		interval:        interval,
		contentTemplate: contentTemplate,
	}
}

// Start launches the dispatch loop in its own goroutine. The loop runs
// until ctx is cancelled. Ticks never overlap: the single goroutine runs
// each tick to completion before waiting for the next one.
func (d *Dispatcher) Start(ctx context.Context) {
	go d.run(ctx)
}

func (d *Dispatcher) run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	log.Printf("Dispatcher started (interval %s)", d.interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("Dispatcher stopped.")
			return
		case <-ticker.C:
			if err := d.dispatchOne(ctx); err != nil {
				// A failed tick never stops the loop; the event is not
				// re-enqueued (no retry policy).
				log.Printf("Dispatch error: %v", err)
			}
		}
	}
}

// dispatchOne processes at most one queued event. A missing target user or
// a disabled inApp preference discards the event without error; only
// store failures surface.
func (d *Dispatcher) dispatchOne(ctx context.Context) error {
	event, ok := d.queue.DequeueOne()
	if !ok {
		return nil
	}

	user, err := d.users.GetUserByUserID(event.TargetUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("looking up user %q for event %s: %w", event.TargetUserID, event.EventID, err)
	}
	if !user.Preferences.InApp {
		return nil
	}

	notification := &models.Notification{
		UserID:  event.TargetUserID,
		Type:    event.Type,
		Content: d.renderContent(event),
		Status:  models.NotificationStatusSent,
	}
	if err := d.notifications.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("saving notification for event %s: %w", event.EventID, err)
	}
	return nil
}

// renderContent combines the acting user's display name with the event
// type. A payload without a sourceUsername degrades to a placeholder and
// never fails the tick.
func (d *Dispatcher) renderContent(event *models.Event) string {
	actor := placeholderActor
	if event.Data != nil {
		if name, ok := event.Data["sourceUsername"].(string); ok && name != "" {
			actor = name
		}
	}
	return fmt.Sprintf(d.contentTemplate, actor, event.Type)
}
