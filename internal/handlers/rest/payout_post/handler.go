package payout_post

import (
	"net/http"

	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/render"
	"fulfillment/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "payout_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.PayoutCreateRequest
	if err := render.DecodeJSON(r, &req); err != nil {
		render.Error(w, h.log, err)
		return
	}

	amount, err := render.Decimal("amount", req.Amount)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	payout, err := h.service.RequestPayout(r.Context(), req.StoreId, amount)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	render.JSON(w, h.log, http.StatusCreated, render.Payout(payout))
}
