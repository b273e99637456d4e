package payout_complete_post

import (
	"net/http"

	"fulfillment/internal/handlers/rest/render"
	"fulfillment/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "payout_complete_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathUUID(r)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	payout, err := h.service.Complete(r.Context(), id)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.Payout(payout))
}
