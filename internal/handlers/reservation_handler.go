package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-scheduler/internal/httperr"
	"github.com/glowdesk/salon-scheduler/internal/httpresp"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	ucbooking "github.com/glowdesk/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	request    *ucbooking.RequestBooking
	decide     *ucbooking.DecideReservation
	cancel     *ucbooking.CancelReservation
	listByDate *ucbooking.ListReservationsByDate
	listMonth  *ucbooking.ListReservationsByMonth
}

func NewReservationHandler(
	request *ucbooking.RequestBooking,
	decide *ucbooking.DecideReservation,
	cancel *ucbooking.CancelReservation,
	listByDate *ucbooking.ListReservationsByDate,
	listMonth *ucbooking.ListReservationsByMonth,
) *ReservationHandler {
	return &ReservationHandler{
		request:    request,
		decide:     decide,
		cancel:     cancel,
		listByDate: listByDate,
		listMonth:  listMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RequestBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`
	ServiceID   *uint  `json:"service_id"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

type CancelReservationRequest struct {
	ClientPhone string `json:"client_phone" binding:"required"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	stylistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid stylist id.")
		return
	}

	var req RequestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	res, err := h.request.Execute(c.Request.Context(), ucbooking.RequestBookingInput{
		StylistID:   uint(stylistID),
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(201, res)
}

func (h *ReservationHandler) CancelByClient(c *gin.Context) {
	reference := c.Param("reference")

	var req CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid payload.")
		return
	}

	res, err := h.cancel.Execute(c.Request.Context(), reference, req.ClientPhone)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, res)
}

// ======================================================
// STYLIST (PRIVATE)
// ======================================================

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date is required.")
		return
	}

	reservations, err := h.listByDate.Execute(c.Request.Context(), stylistID, dateStr)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, reservations)
}

func (h *ReservationHandler) ListByMonth(c *gin.Context) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	reservations, err := h.listMonth.Execute(c.Request.Context(), stylistID, year, month)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"year":         year,
		"month":        month,
		"reservations": reservations,
	})
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.decideAction(c, true)
}

func (h *ReservationHandler) Decline(c *gin.Context) {
	h.decideAction(c, false)
}

func (h *ReservationHandler) decideAction(c *gin.Context, confirm bool) {
	stylistID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid reservation id.")
		return
	}

	var result any
	if confirm {
		result, err = h.decide.Confirm(c.Request.Context(), stylistID, uint(id))
	} else {
		result, err = h.decide.Decline(c.Request.Context(), stylistID, uint(id))
	}
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(200, result)
}
