package shipment_cancel_post

import (
	"net/http"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
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

	var req dto.ReasonRequest
	if err := render.DecodeJSON(r, &req); err != nil {
		render.Error(w, h.log, err)
		return
	}
	if strings.TrimSpace(req.Reason) == "" {
		render.Error(w, h.log, entities.NewValidationError("reason", "is required"))
		return
	}

	shipment, err := h.service.CancelShipment(r.Context(), id, req.Reason)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.Shipment(shipment))
}
