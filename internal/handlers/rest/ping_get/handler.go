package ping_get

import (
	"net/http"

	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/render"
	"github.com/AlekSi/pointer"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	render.JSON(w, h.log, http.StatusOK, dto.PingResponse{Message: pointer.To("pong")})
}
