package store_balance_get

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
	storeID, err := render.PathString(r)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	balance, err := h.service.StoreBalance(r.Context(), storeID)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.StoreBalance(balance))
}
