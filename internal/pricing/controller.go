package pricing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"turfbook/internal/shared/utils/response"
)

type Controller interface {
	CreateRule(c *gin.Context)
	GetRule(c *gin.Context)
	ListRules(c *gin.Context)
	UpdateRule(c *gin.Context)
	DeleteRule(c *gin.Context)
}

type controller struct {
	service Service
}

// NewController creates a new pricing controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateRule(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("turfId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, err.Error())
		return
	}

	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	req.TurfID = turfID

	adminID, _ := uuid.Parse(c.GetString("user_id"))

	rule, err := ctrl.service.CreateRule(c.Request.Context(), adminID, &req)
	if err != nil {
		ctrl.respondRuleError(c, err, "Failed to create peak rule")
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Peak rule created successfully", rule, nil)
}

func (ctrl *controller) GetRule(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("ruleId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid rule ID", nil, err.Error())
		return
	}

	rule, err := ctrl.service.GetRule(c.Request.Context(), ruleID)
	if err != nil {
		ctrl.respondRuleError(c, err, "Failed to get peak rule")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Peak rule retrieved successfully", rule, nil)
}

func (ctrl *controller) ListRules(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("turfId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, err.Error())
		return
	}

	rules, err := ctrl.service.ListRules(c.Request.Context(), turfID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list peak rules", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Peak rules retrieved successfully", rules, nil)
}

func (ctrl *controller) UpdateRule(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("ruleId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid rule ID", nil, err.Error())
		return
	}

	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	rule, err := ctrl.service.UpdateRule(c.Request.Context(), ruleID, &req)
	if err != nil {
		ctrl.respondRuleError(c, err, "Failed to update peak rule")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Peak rule updated successfully", rule, nil)
}

func (ctrl *controller) DeleteRule(c *gin.Context) {
	ruleID, err := uuid.Parse(c.Param("ruleId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid rule ID", nil, err.Error())
		return
	}

	if err := ctrl.service.DeleteRule(c.Request.Context(), ruleID); err != nil {
		ctrl.respondRuleError(c, err, "Failed to delete peak rule")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Peak rule deleted successfully", nil, nil)
}

func (ctrl *controller) respondRuleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrRuleNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Peak rule not found", nil, err.Error())
	case errors.Is(err, ErrRuleOverlap), errors.Is(err, ErrInvalidRuleSpan), errors.Is(err, ErrInvalidRuleKind):
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid peak rule", nil, err.Error())
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, fallback, nil, err.Error())
	}
}
