package couriers_get

import (
	"net/http"

	"fulfillment/internal/handlers/rest/render"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	render.JSON(w, h.log, http.StatusOK, render.Couriers(h.service.Providers()))
}
