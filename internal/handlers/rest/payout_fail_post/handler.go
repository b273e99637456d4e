package payout_fail_post

import (
	"net/http"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/render"
	"fulfillment/pkg/logger"
)

// Handler помечает выплату неуспешной, зарезервированная сумма
// возвращается в доступный баланс магазина.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "payout_fail_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathUUID(r)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	var req dto.ReasonRequest
	if err := render.DecodeJSON(r, &req); err != nil {
		render.Error(w, h.log, err)
		return
	}
	if strings.TrimSpace(req.Reason) == "" {
		render.Error(w, h.log, entities.NewValidationError("reason", "is required"))
		return
	}

	payout, err := h.service.Fail(r.Context(), id, req.Reason)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	h.log.Warn("payout failed",
		logger.NewField("payout_id", id.String()),
		logger.NewField("store_id", payout.StoreID),
		logger.NewField("reason", req.Reason),
	)

	render.JSON(w, h.log, http.StatusOK, render.Payout(payout))
}
