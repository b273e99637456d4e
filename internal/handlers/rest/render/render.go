package render

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
	"fulfillment/internal/service/courier"
	"fulfillment/internal/service/ledger"
	"fulfillment/internal/service/operator"
	"fulfillment/internal/service/payout"
	"fulfillment/internal/service/shipment"
	"fulfillment/pkg/logger"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

// JSON пишет тело ответа с заданным статусом.
func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err.Error()))
	}
}

// Error переводит доменную ошибку в HTTP-статус и тело dto.Error.
// Внутренние ошибки логируются, клиенту уходит только общий текст.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status := StatusFor(err)
	body := dto.Error{Message: err.Error()}

	var validationErr *entities.ValidationError
	if errors.As(err, &validationErr) {
		body.Field = &validationErr.Field
	}

	var providerErr *entities.ProviderError
	if status == http.StatusUnprocessableEntity && errors.As(err, &providerErr) {
		body.Message = fmt.Sprintf("courier %s rejected request: %s", providerErr.Provider, providerErr.Message)
	}

	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		log.Error("request failed",
			logger.NewField("status", status),
			logger.NewField("error", err.Error()),
		)
		if status == http.StatusInternalServerError {
			body.Message = http.StatusText(status)
		}
	}

	JSON(w, log, status, body)
}

func StatusFor(err error) int {
	var providerErr *entities.ProviderError

	switch {
	case errors.Is(err, entities.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, shipment.ErrShipmentNotFound),
		errors.Is(err, ledger.ErrTransactionNotFound),
		errors.Is(err, payout.ErrPayoutNotFound),
		errors.Is(err, operator.ErrTaskNotFound),
		errors.Is(err, courier.ErrUnknownProvider):
		return http.StatusNotFound

	case errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrIdempotencyConflict),
		errors.Is(err, shipment.ErrShipmentExists),
		errors.Is(err, shipment.ErrAlreadyBooked),
		errors.Is(err, shipment.ErrBookingInProgress),
		errors.Is(err, shipment.ErrNotBooked),
		errors.Is(err, shipment.ErrCancelRejected),
		errors.Is(err, ledger.ErrTransactionReversed),
		errors.Is(err, payout.ErrInvalidPayoutStatus),
		errors.Is(err, operator.ErrTaskResolved):
		return http.StatusConflict

	case errors.Is(err, courier.ErrCapabilityNotSupported):
		return http.StatusNotImplemented

	// исчерпанные ретраи проверяются раньше ProviderError: они его оборачивают
	case errors.Is(err, courier.ErrRetriesExhausted):
		return http.StatusBadGateway

	case errors.As(err, &providerErr):
		if providerErr.Retryable {
			return http.StatusBadGateway
		}
		return http.StatusUnprocessableEntity

	case errors.Is(err, shipment.ErrNoCourierAvailable),
		errors.Is(err, courier.ErrNoProviderAvailable),
		errors.Is(err, payout.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON читает тело запроса. Неизвестные поля считаются ошибкой клиента.
func DecodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return entities.NewValidationError("body", err.Error())
	}
	return nil
}

// PathUUID достаёт {id} из пути mux.
func PathUUID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, entities.NewValidationError("id", "must be a UUID")
	}
	return id, nil
}

// PathString достаёт непустой {id} из пути mux.
func PathString(r *http.Request) (string, error) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		return "", entities.NewValidationError("id", "is required")
	}
	return id, nil
}

func Decimal(field, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, entities.NewValidationError(field, "must be a decimal number")
	}
	return d, nil
}
