package ledger

import (
	"strings"

	"fulfillment/internal/entities"
	"github.com/shopspring/decimal"
)

var maxRate = decimal.NewFromInt(100)

func validateTransactionCreate(in entities.TransactionCreate) error {
	if strings.TrimSpace(in.OrderID) == "" {
		return entities.NewValidationError("order_id", "is required")
	}
	if strings.TrimSpace(in.StoreID) == "" {
		return entities.NewValidationError("store_id", "is required")
	}
	if !in.Amount.IsPositive() {
		return entities.NewValidationError("amount", "must be positive")
	}
	if !entities.FitsMoneyScale(in.Amount) {
		return entities.NewValidationError("amount", "must have at most 2 decimal places")
	}
	return validateRate(in.CommissionRate)
}

func validateRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(maxRate) {
		return entities.NewValidationError("commission_rate", "must be between 0 and 100")
	}
	if !entities.FitsMoneyScale(rate) {
		return entities.NewValidationError("commission_rate", "must have at most 2 decimal places")
	}
	return nil
}
