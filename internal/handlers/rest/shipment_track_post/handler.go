package shipment_track_post

import (
	"net/http"

	"fulfillment/internal/handlers/rest/render"
	"fulfillment/pkg/logger"
)

// Handler запрашивает у курьера свежий трекинг вне расписания фонового опроса.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "shipment_track_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := render.PathUUID(r)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	result, err := h.service.TrackShipment(r.Context(), id)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	if result.Changed() {
		h.log.Info("shipment status changed on manual track",
			logger.NewField("shipment_id", id.String()),
			logger.NewField("from", result.Previous.String()),
			logger.NewField("to", result.Current.String()),
		)
	}

	render.JSON(w, h.log, http.StatusOK, render.TrackResult(result))
}
