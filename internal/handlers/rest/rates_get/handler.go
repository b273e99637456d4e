package rates_get

import (
	"net/http"
	"strconv"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/handlers/rest/render"
	"fulfillment/pkg/logger"
)

// Handler отдаёт котировки всех курьеров, которые могут доставить посылку.
// Пустой список означает, что подходящих курьеров нет.
type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "rates_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	origin := strings.TrimSpace(query.Get("origin"))
	if origin == "" {
		render.Error(w, h.log, entities.NewValidationError("origin", "is required"))
		return
	}

	region := strings.TrimSpace(query.Get("region"))
	if region == "" {
		render.Error(w, h.log, entities.NewValidationError("region", "is required"))
		return
	}

	weight, err := strconv.ParseFloat(query.Get("weight_kg"), 64)
	if err != nil || weight <= 0 {
		render.Error(w, h.log, entities.NewValidationError("weight_kg", "must be a positive number"))
		return
	}

	serviceType := entities.DefaultServiceType
	if raw := query.Get("service_type"); raw != "" {
		serviceType = entities.ServiceType(raw)
		if !serviceType.IsValid() {
			render.Error(w, h.log, entities.NewValidationError("service_type", "unknown service type"))
			return
		}
	}

	destination := entities.Address{
		City:    query.Get("city"),
		Region:  region,
		Country: query.Get("country"),
	}

	quotes := h.service.GetRates(origin, destination, entities.Package{WeightKg: weight}, serviceType)

	render.JSON(w, h.log, http.StatusOK, render.RateQuotes(quotes))
}
