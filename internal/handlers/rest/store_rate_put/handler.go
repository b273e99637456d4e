package store_rate_put

import (
	"net/http"

	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/render"
	"fulfillment/pkg/logger"
)

// Handler задаёт ставку комиссии магазина. Уже записанные транзакции
// сохраняют ставку, действовавшую на момент записи.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "store_rate_put")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	storeID, err := render.PathString(r)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	var req dto.CommissionRateRequest
	if err := render.DecodeJSON(r, &req); err != nil {
		render.Error(w, h.log, err)
		return
	}

	rate, err := render.Decimal("rate", req.Rate)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	stored, err := h.service.SetStoreRate(r.Context(), storeID, rate)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	h.log.Info("commission rate updated",
		logger.NewField("store_id", storeID),
		logger.NewField("rate", stored.Rate.String()),
	)

	render.JSON(w, h.log, http.StatusOK, render.CommissionRate(stored))
}
