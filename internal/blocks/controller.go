package blocks

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"turfbook/internal/shared/utils/response"
)

type Controller interface {
	BlockTimes(c *gin.Context)
	UnblockTime(c *gin.Context)
	DeleteEntry(c *gin.Context)
	ListEntries(c *gin.Context)
}

type controller struct {
	service Service
}

// NewController creates a new blocks controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) BlockTimes(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("turfId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, err.Error())
		return
	}

	var req BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	req.TurfID = turfID

	adminID, _ := uuid.Parse(c.GetString("user_id"))

	entry, err := ctrl.service.Block(c.Request.Context(), adminID, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNothingToBlock):
			response.RespondJSON(c, "error", http.StatusBadRequest, "Nothing to block", nil, err.Error())
		default:
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to block times", nil, err.Error())
		}
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Times blocked successfully", entry, nil)
}

func (ctrl *controller) UnblockTime(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("turfId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, err.Error())
		return
	}

	var req UnblockTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.service.UnblockTime(c.Request.Context(), turfID, req.Date, req.Time); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "No blocked entry for that date", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to unblock time", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Time unblocked successfully", nil, nil)
}

func (ctrl *controller) DeleteEntry(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("entryId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid entry ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteEntry(c.Request.Context(), entryID); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			response.RespondJSON(c, "error", http.StatusNotFound, "Blocked entry not found", nil, err.Error())
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to delete blocked entry", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Blocked entry deleted successfully", nil, nil)
}

func (ctrl *controller) ListEntries(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("turfId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, err.Error())
		return
	}

	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	entries, err := ctrl.service.List(c.Request.Context(), turfID, query.From)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list blocked entries", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Blocked entries retrieved successfully", entries, nil)
}
