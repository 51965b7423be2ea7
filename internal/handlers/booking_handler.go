package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BarbeariaNavalha/booking-engine/internal/dto"
	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
	"github.com/BarbeariaNavalha/booking-engine/internal/httpresp"
	"github.com/BarbeariaNavalha/booking-engine/internal/models"
	"github.com/BarbeariaNavalha/booking-engine/internal/timezone"
	"github.com/BarbeariaNavalha/booking-engine/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	listByDate     *booking.ListBookingsByDate
	createWalkIn   *booking.CreateWalkIn
	complete       *booking.CompleteBooking
	confirmPayment *booking.ConfirmPayment
}

func NewBookingHandler(
	listByDate *booking.ListBookingsByDate,
	createWalkIn *booking.CreateWalkIn,
	complete *booking.CompleteBooking,
	confirmPayment *booking.ConfirmPayment,
) *BookingHandler {
	return &BookingHandler{
		listByDate:     listByDate,
		createWalkIn:   createWalkIn,
		complete:       complete,
		confirmPayment: confirmPayment,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type WalkInRequest struct {
	ServiceID  string  `json:"service_id" binding:"required"`
	BarberID   string  `json:"barber_id" binding:"required"`
	Price      float64 `json:"price"`
	ClientName string  `json:"client_name"`
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	day := timezone.Now()

	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseDate(dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		day = parsed
	}

	records, err := h.listByDate.Execute(c.Request.Context(), day)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, toBookingList(records))
}

// ======================================================
// WALK-IN
// ======================================================

func (h *BookingHandler) CreateWalkIn(c *gin.Context) {
	var req WalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.createWalkIn.Execute(c.Request.Context(), booking.CreateWalkInInput{
		ServiceID:  req.ServiceID,
		BarberID:   req.BarberID,
		Price:      req.Price,
		ClientName: req.ClientName,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *BookingHandler) Complete(c *gin.Context) {
	b, err := h.complete.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	b, err := h.confirmPayment.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// HELPERS
// ======================================================

func toBookingList(records []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(records))
	for _, b := range records {
		out = append(out, dto.BookingListDTO{
			ID:               b.ID,
			StartTime:        b.StartTime,
			EndTime:          b.EndTime,
			Status:           b.Status,
			PaymentConfirmed: b.PaymentConfirmed,
			AddedToDashboard: b.AddedToDashboard,
			ClientName:       b.ClientName,
			ServiceName:      b.ServiceName,
			BarberName:       b.BarberName,
			Price:            b.Price,
		})
	}
	return out
}
