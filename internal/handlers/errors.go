package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
)

// Mapeia os erros de negócio dos use cases para o status HTTP certo.
// Qualquer coisa fora da taxonomia vira 500 genérico.
func writeBusinessError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_client_info"):
		httperr.BadRequest(c, "missing_client_info", "Nome e telefone do cliente são obrigatórios.")
	case httperr.IsBusiness(err, "invalid_phone"):
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
	case httperr.IsBusiness(err, "missing_phone"):
		httperr.BadRequest(c, "missing_phone", "Informe o telefone.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "barber_not_found"):
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Reserva não encontrada.")
	case httperr.IsBusiness(err, "time_conflict"):
		httperr.Conflict(c, "time_conflict", "Horário não está mais disponível. Recarregue os horários.")
	case httperr.IsBusiness(err, "duplicate_booking_id"):
		httperr.Conflict(c, "duplicate_booking_id", "Reserva já registrada.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
