package turfs

import (
	"errors"
	"net/http"

	"turfbook/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Create handles POST /api/v1/turfs (admin)
func (ctrl *Controller) Create(c *gin.Context) {
	adminID, err := currentUserID(c)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var req CreateTurfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resp, err := ctrl.service.Create(c.Request.Context(), adminID, &req)
	if err != nil {
		if isValidationErr(err) {
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create turf", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Turf created", resp, nil)
}

// Get handles GET /api/v1/turfs/:id
func (ctrl *Controller) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, nil)
		return
	}

	turf, err := ctrl.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTurfNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Turf not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get turf", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Turf retrieved", turf.ToResponse(), nil)
}

// List handles GET /api/v1/turfs
func (ctrl *Controller) List(c *gin.Context) {
	var query TurfListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	resp, err := ctrl.service.List(c.Request.Context(), query)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list turfs", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Turfs retrieved", resp, nil)
}

// Update handles PATCH /api/v1/turfs/:id (admin)
func (ctrl *Controller) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, nil)
		return
	}

	var req UpdateTurfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resp, err := ctrl.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTurfNotFound):
			response.RespondJSON(c, "error", http.StatusNotFound, "Turf not found", nil, nil)
		case isValidationErr(err):
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update turf", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Turf updated", resp, nil)
}

// SetStatus handles PUT /api/v1/turfs/:id/status (admin)
func (ctrl *Controller) SetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, nil)
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	resp, err := ctrl.service.SetStatus(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrTurfNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Turf not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to update turf status", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Turf status updated", resp, nil)
}

// Delete handles DELETE /api/v1/turfs/:id (admin)
func (ctrl *Controller) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, nil)
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTurfNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Turf not found", nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete turf", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Turf deleted", nil, nil)
}

func currentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, errors.New("user not authenticated")
	}
	str, ok := raw.(string)
	if !ok {
		return uuid.Nil, errors.New("invalid user id in context")
	}
	return uuid.Parse(str)
}

func isValidationErr(err error) bool {
	return errors.Is(err, ErrInvalidWindow) ||
		errors.Is(err, ErrWindowNotAligned) ||
		errors.Is(err, ErrInvalidSlotSpan)
}
