package report_top_stores_get

import (
	"net/http"

	"fulfillment/internal/handlers/rest/render"
)

const defaultLimit = 10

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
	start, end, err := render.Period(r, h.service.LastDays)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	// лимит вне [1, 100] сервис приводит к границам сам
	limit, err := render.Limit(r, defaultLimit)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.TopStores(h.service.TopStores(r.Context(), start, end, limit)))
}
