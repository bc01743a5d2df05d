package handlers

import (
	"net/http"

	"github.com/anonto42/notifly/backend/internal/models"
	"github.com/anonto42/notifly/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notifRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notifRepo}
}

// RegisterNotificationRoutes registers notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications/:user_id", h.ListNotifications)
	g.POST("/notifications", h.CreateNotification)
}

// ListNotifications returns all notifications for a recipient, most recent
// first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "User ID is required")
	}

	notifications, err := h.notificationRepository.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, notifications)
}

// CreateNotification creates a notification directly, bypassing the
// dispatch queue and the recipient's preferences. Used for
// system-originated notifications.
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req models.CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	notification := &models.Notification{
		UserID:  req.UserID,
		Type:    req.Type,
		Content: req.Content,
		Status:  models.NotificationStatusSent,
	}
	if err := h.notificationRepository.CreateNotification(c.Request().Context(), notification); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"notificationId": notification.NotificationID,
		"message":        "Notification created",
	})
}
