package transaction_reverse_post

import (
	"net/http"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
	"fulfillment/internal/handlers/rest/render"
	"fulfillment/pkg/logger"
)

// Handler сторнирует комиссионную транзакцию. Повторный вызов даёт 409.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "transaction_reverse_post")),
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

	transaction, err := h.service.ReverseTransaction(r.Context(), id, req.Reason)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	h.log.Info("transaction reversed",
		logger.NewField("transaction_id", id.String()),
		logger.NewField("store_id", transaction.StoreID),
	)

	render.JSON(w, h.log, http.StatusOK, render.Transaction(transaction))
}
