package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
	"github.com/BarbeariaNavalha/booking-engine/internal/httpresp"
	"github.com/BarbeariaNavalha/booking-engine/internal/usecase/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	repo            domain.Repository
	getAvailability *booking.GetAvailability
	createBooking   *booking.CreateBooking
	myBookings      *booking.ListMyBookings
}

func NewPublicHandler(
	repo domain.Repository,
	getAvailability *booking.GetAvailability,
	createBooking *booking.CreateBooking,
	myBookings *booking.ListMyBookings,
) *PublicHandler {
	return &PublicHandler{
		repo:            repo,
		getAvailability: getAvailability,
		createBooking:   createBooking,
		myBookings:      myBookings,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ServiceID   string `json:"service_id" binding:"required"`
	BarberID    string `json:"barber_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	UserID      string `json:"user_id"`
}

type TimeSlotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

////////////////////////////////////////////////////////
// CATÁLOGO
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.repo.ListServices(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	barbers, err := h.repo.ListActiveBarbers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Erro ao listar barbeiros.")
		return
	}

	httpresp.List(c, barbers)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	barberID := c.Query("barber_id")
	serviceID := c.Query("service_id")
	dateStr := c.Query("date")

	if barberID == "" || serviceID == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Barbeiro, serviço e data são obrigatórios.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	service, err := h.repo.GetService(c.Request.Context(), serviceID)
	if err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), booking.AvailabilityInput{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	out := make([]TimeSlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, TimeSlotDTO{
			Start: s.Format("15:04"),
			End:   domain.SlotEnd(s, service.DurationMin).Format("15:04"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": out,
	})
}

////////////////////////////////////////////////////////
// CREATE
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsPhoneValid(req.ClientPhone) {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	start, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	day, _ := parseDate(req.Date)

	b, err := h.createBooking.Execute(c.Request.Context(), booking.CreateBookingInput{
		UserID:      req.UserID,
		ServiceID:   req.ServiceID,
		BarberID:    req.BarberID,
		Date:        day,
		StartTime:   start,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

////////////////////////////////////////////////////////
// MY BOOKINGS
////////////////////////////////////////////////////////

func (h *PublicHandler) MyBookings(c *gin.Context) {
	records, err := h.myBookings.Execute(c.Request.Context(), c.Query("phone"))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, records)
}
