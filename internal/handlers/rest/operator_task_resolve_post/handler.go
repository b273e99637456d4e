package operator_task_resolve_post

import (
	"net/http"
	"strconv"

	"fulfillment/internal/entities"
	"fulfillment/internal/handlers/rest/render"
	"fulfillment/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "operator_task_resolve_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		render.Error(w, h.log, entities.NewValidationError("id", "must be a positive integer"))
		return
	}

	task, err := h.service.Resolve(r.Context(), id)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	h.log.Info("operator task resolved",
		logger.NewField("task_id", id),
		logger.NewField("shipment_id", task.ShipmentID.String()),
	)

	render.JSON(w, h.log, http.StatusOK, render.OperatorTask(task))
}
