package operator_tasks_get

import (
	"net/http"
	"strconv"

	"fulfillment/internal/entities"
	"fulfillment/internal/handlers/rest/render"
	"fulfillment/pkg/logger"
)

const defaultLimit = 50

// Handler отдаёт очередь ручного разбора. По умолчанию только открытые задачи.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "operator_tasks_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	openOnly := true
	if raw := r.URL.Query().Get("open"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			render.Error(w, h.log, entities.NewValidationError("open", "must be a boolean"))
			return
		}
		openOnly = parsed
	}

	limit, err := render.Limit(r, defaultLimit)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	tasks, err := h.service.List(r.Context(), openOnly, limit)
	if err != nil {
		render.Error(w, h.log, err)
		return
	}

	render.JSON(w, h.log, http.StatusOK, render.OperatorTasks(tasks))
}
