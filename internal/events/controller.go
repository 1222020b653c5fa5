package events

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"turfbook/internal/shared/utils/response"
)

type Controller interface {
	CreateEvent(c *gin.Context)
	GetEvent(c *gin.Context)
	ListEvents(c *gin.Context)
	UpdateEvent(c *gin.Context)
	DeleteEvent(c *gin.Context)
}

type controller struct {
	service Service
}

// NewController creates a new events controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateEvent(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("turfId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, err.Error())
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	req.TurfID = turfID

	adminID, _ := uuid.Parse(c.GetString("user_id"))

	event, err := ctrl.service.Create(c.Request.Context(), adminID, &req)
	if err != nil {
		ctrl.respondEventError(c, err, "Failed to create event")
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Event created successfully", event, nil)
}

func (ctrl *controller) GetEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	event, err := ctrl.service.GetByID(c.Request.Context(), eventID)
	if err != nil {
		ctrl.respondEventError(c, err, "Failed to get event")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event retrieved successfully", event, nil)
}

func (ctrl *controller) ListEvents(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("turfId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, err.Error())
		return
	}

	events, err := ctrl.service.ListByTurf(c.Request.Context(), turfID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list events", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Events retrieved successfully", events, nil)
}

func (ctrl *controller) UpdateEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	event, err := ctrl.service.Update(c.Request.Context(), eventID, &req)
	if err != nil {
		ctrl.respondEventError(c, err, "Failed to update event")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event updated successfully", event, nil)
}

func (ctrl *controller) DeleteEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), eventID); err != nil {
		ctrl.respondEventError(c, err, "Failed to delete event")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Event deleted successfully", nil, nil)
}

func (ctrl *controller) respondEventError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrEventNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Event not found", nil, err.Error())
	case errors.Is(err, ErrInvalidEventSpan), errors.Is(err, ErrInvalidEventDates), errors.Is(err, ErrInvalidEventStatus):
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid event", nil, err.Error())
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, fallback, nil, err.Error())
	}
}
