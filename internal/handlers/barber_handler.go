package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BarbeariaNavalha/booking-engine/internal/audit"
	domain "github.com/BarbeariaNavalha/booking-engine/internal/domain/booking"
	"github.com/BarbeariaNavalha/booking-engine/internal/httperr"
	"github.com/BarbeariaNavalha/booking-engine/internal/httpresp"
	"github.com/BarbeariaNavalha/booking-engine/internal/media"
)

type BarberHandler struct {
	repo    domain.Repository
	avatars *media.AvatarStore
	audit   *audit.Dispatcher
}

func NewBarberHandler(
	repo domain.Repository,
	avatars *media.AvatarStore,
	auditDispatcher *audit.Dispatcher,
) *BarberHandler {
	return &BarberHandler{
		repo:    repo,
		avatars: avatars,
		audit:   auditDispatcher,
	}
}

// UploadAvatar recebe multipart (campo "avatar"), normaliza a imagem
// e atualiza a URL do barbeiro.
func (h *BarberHandler) UploadAvatar(c *gin.Context) {
	if h.avatars == nil {
		httperr.Internal(c, "avatar_storage_disabled", "Armazenamento de avatar não configurado.")
		return
	}

	barber, err := h.repo.GetBarber(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar", "Envie o arquivo no campo 'avatar'.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_avatar", "Erro ao ler o arquivo.")
		return
	}
	defer src.Close()

	url, err := h.avatars.UploadAvatar(c.Request.Context(), barber.ID, src)
	if err != nil {
		httperr.BadRequest(c, "invalid_avatar", "Imagem inválida ou falha no upload.")
		return
	}

	barber.AvatarURL = url
	if err := h.repo.UpdateBarber(c.Request.Context(), barber); err != nil {
		httperr.Internal(c, "failed_to_update_barber", "Erro ao salvar avatar.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "barber_avatar_updated",
		Entity:   "barber",
		EntityID: barber.ID,
	})

	httpresp.OK(c, barber)
}
