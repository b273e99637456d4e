package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MoneyScale: суммы и ставки хранятся с двумя знаками после запятой.
const MoneyScale = 2

// FitsMoneyScale сообщает, что значение не теряет точность при записи в NUMERIC(_, 2).
func FitsMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale))
}

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

func (s TransactionStatus) String() string {
	return string(s)
}

// CommissionTransaction неизменяема по суммам: после вставки меняются только статус и данные реверса.
type CommissionTransaction struct {
	ID             uuid.UUID
	Seq            int64
	OrderID        string
	StoreID        string
	Amount         decimal.Decimal
	PlatformFee    decimal.Decimal
	NetAmount      decimal.Decimal
	CommissionRate decimal.Decimal
	Status         TransactionStatus
	ReversalReason string
	ReversedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type TransactionCreate struct {
	OrderID        string
	StoreID        string
	Amount         decimal.Decimal
	CommissionRate decimal.Decimal
	Provisional    bool
}

type TransactionModify struct {
	ID             *uuid.UUID
	Status         *TransactionStatus
	ReversalReason *string
	ReversedAt     *time.Time
}

type StoreCommissionRate struct {
	StoreID   string
	Rate      decimal.Decimal
	UpdatedAt time.Time
}

// StoreBalance: сколько магазин заработал и сколько ему можно выплатить.
type StoreBalance struct {
	StoreID   string
	Earned    decimal.Decimal
	Paid      decimal.Decimal
	Reserved  decimal.Decimal
	Available decimal.Decimal
}
