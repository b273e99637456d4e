package shipment_get

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathUUID(r)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	shipment, err := h.service.GetShipment(r.Context(), id)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.Shipment(shipment))
}
