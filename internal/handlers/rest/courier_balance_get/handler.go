package courier_balance_get

import (
	"net/http"

	"fulfillment/internal/entities"
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
		log:     log.With(logger.NewField("handler", "courier_balance_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathString(r)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	balance, err := h.service.Balance(r.Context(), entities.ProviderID(id))
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	render.JSON(w, h.log, http.StatusOK, dto.CourierBalance{
		CourierId: id,
		Balance:   balance.StringFixed(2),
	})
}
