package bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"turfbook/internal/shared/utils/response"
	"turfbook/internal/users"
)

type Controller interface {
	GetAvailability(c *gin.Context)
	RequestBooking(c *gin.Context)
	PaymentSignal(c *gin.Context)
	GetBooking(c *gin.Context)
	GetMyBookings(c *gin.Context)
	CancelBooking(c *gin.Context)
	RefundBooking(c *gin.Context)
}

type controller struct {
	service Service
}

// NewController creates a new bookings controller instance
func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetAvailability(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("turfId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, err.Error())
		return
	}

	var query AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	slots, err := ctrl.service.Availability(c.Request.Context(), turfID, query.Date, time.Now())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to compute availability", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Availability computed", AvailabilityResponse{
		TurfID: turfID.String(),
		Date:   query.Date,
		Slots:  slots,
	}, nil)
}

func (ctrl *controller) RequestBooking(c *gin.Context) {
	turfID, err := uuid.Parse(c.Param("turfId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid turf ID", nil, err.Error())
		return
	}

	var req AdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondRejected(c, http.StatusBadRequest, err.Error(), string(ReasonValidation))
		return
	}
	req.TurfID = turfID

	// Authenticated callers book under their own identity; guests are
	// resolved by contact fields.
	userID, _ := uuid.Parse(c.GetString("user_id"))

	booking, err := ctrl.service.RequestBooking(c.Request.Context(), userID, &req)
	if err != nil {
		if re, ok := AsRejection(err); ok {
			status := http.StatusConflict
			if re.Reason == ReasonValidation || re.Reason == ReasonBoundary {
				status = http.StatusBadRequest
			}
			response.RespondRejected(c, status, re.Message, string(re.Reason))
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to create booking", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Slot held", booking.ToResponse(), nil)
}

func (ctrl *controller) PaymentSignal(c *gin.Context) {
	var req PaymentSignalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if req.Status == "FAILED" {
		if err := ctrl.service.RejectBooking(c.Request.Context(), req.BookingID); err != nil {
			ctrl.respondBookingError(c, err, "Failed to reject booking")
			return
		}
		response.RespondJSON(c, "success", http.StatusOK, "Booking rejected", nil, nil)
		return
	}

	booking, err := ctrl.service.ConfirmBooking(c.Request.Context(), req.BookingID, req.PaymentRef)
	if err != nil {
		ctrl.respondBookingError(c, err, "Failed to confirm booking")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking confirmed", booking.ToResponse(), nil)
}

func (ctrl *controller) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	booking, err := ctrl.service.GetBooking(c.Request.Context(), bookingID)
	if err != nil {
		ctrl.respondBookingError(c, err, "Failed to get booking")
		return
	}

	userID, _ := uuid.Parse(c.GetString("user_id"))
	if booking.UserID != userID && c.GetString("user_role") != string(users.RoleAdmin) {
		response.RespondJSON(c, "error", http.StatusForbidden, "Access denied", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking retrieved", booking.ToResponse(), nil)
}

func (ctrl *controller) GetMyBookings(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "User not authenticated", nil, nil)
		return
	}

	var query BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	bookings, total, err := ctrl.service.GetUserBookings(c.Request.Context(), userID, query.Limit, (query.Page-1)*query.Limit)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list bookings", nil, err.Error())
		return
	}

	items := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, bookings[i].ToResponse())
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings retrieved", PaginatedBookings{
		Bookings:   items,
		TotalCount: total,
		Page:       query.Page,
		Limit:      query.Limit,
	}, nil)
}

func (ctrl *controller) CancelBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	userID, _ := uuid.Parse(c.GetString("user_id"))
	isAdmin := c.GetString("user_role") == string(users.RoleAdmin)

	if err := ctrl.service.CancelBooking(c.Request.Context(), bookingID, userID, isAdmin); err != nil {
		ctrl.respondBookingError(c, err, "Failed to cancel booking")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking cancelled", nil, nil)
}

func (ctrl *controller) RefundBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	if err := ctrl.service.RefundBooking(c.Request.Context(), bookingID); err != nil {
		ctrl.respondBookingError(c, err, "Failed to refund booking")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking refunded", nil, nil)
}

func (ctrl *controller) respondBookingError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		response.RespondJSON(c, "error", http.StatusNotFound, "Booking not found", nil, err.Error())
	case errors.Is(err, ErrNotBookingOwner):
		response.RespondJSON(c, "error", http.StatusForbidden, "Booking does not belong to user", nil, err.Error())
	case errors.Is(err, ErrHoldExpired):
		response.RespondJSON(c, "error", http.StatusConflict, "Hold has expired", nil, err.Error())
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrBookingNotCancelable):
		response.RespondJSON(c, "error", http.StatusConflict, "Invalid booking state", nil, err.Error())
	default:
		response.RespondJSON(c, "error", http.StatusInternalServerError, fallback, nil, err.Error())
	}
}
