package shipment

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"fulfillment/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// в ошибках поля называются так же, как в JSON
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func validateShipmentCreate(in entities.ShipmentCreate) error {
	if err := validate.Struct(in); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			return toValidationError(validationErrors[0])
		}
		return fmt.Errorf("%w: %w", entities.ErrValidation, err)
	}

	if !in.OrderAmount.IsPositive() {
		return entities.NewValidationError("order_amount", "must be positive")
	}
	if !entities.FitsMoneyScale(in.OrderAmount) {
		return entities.NewValidationError("order_amount", "must have at most 2 decimal places")
	}
	if in.Package.DeclaredValue.IsNegative() {
		return entities.NewValidationError("package.declared_value", "must not be negative")
	}
	return nil
}

func toValidationError(fe validator.FieldError) *entities.ValidationError {
	// Namespace вида "ShipmentCreate.delivery_address.city", корень отбрасываем
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}

	reason := "failed " + fe.Tag()
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "oneof":
		reason = "must be one of: " + fe.Param()
	case "max", "lte":
		reason = "must be at most " + fe.Param()
	case "min", "gte":
		reason = "must be at least " + fe.Param()
	case "gt":
		reason = "must be greater than " + fe.Param()
	case "len":
		reason = "must be exactly " + fe.Param() + " characters"
	}

	return entities.NewValidationError(field, reason)
}

func isValidShipmentID(id uuid.UUID) bool {
	return id != uuid.Nil
}
