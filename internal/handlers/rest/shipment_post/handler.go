package shipment_post

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
		log:     log.With(logger.NewField("handler", "shipment_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.ShipmentCreateRequest
	if err := render.DecodeJSON(r, &req); err != nil {
		render.Error(w, h.log, err)
		return
	}

	in, err := render.ShipmentCreate(req)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	shipment, err := h.service.CreateShipment(r.Context(), in)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	render.JSON(w, h.log, http.StatusCreated, render.Shipment(shipment))
}
