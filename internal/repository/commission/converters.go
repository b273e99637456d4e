package commission

import "fulfillment/internal/entities"

func ToDomain(t *TransactionDB) *entities.CommissionTransaction {
	if t == nil {
		return nil
	}

	return &entities.CommissionTransaction{
		ID:             t.ID,
		Seq:            t.Seq,
		OrderID:        t.OrderID,
		StoreID:        t.StoreID,
		Amount:         t.Amount,
		PlatformFee:    t.PlatformFee,
		NetAmount:      t.NetAmount,
		CommissionRate: t.CommissionRate,
		Status:         entities.TransactionStatus(t.Status),
		ReversalReason: t.ReversalReason,
		ReversedAt:     t.ReversedAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func FromDomain(t *entities.CommissionTransaction) *TransactionDB {
	if t == nil {
		return nil
	}

	return &TransactionDB{
		ID:             t.ID,
		OrderID:        t.OrderID,
		StoreID:        t.StoreID,
		Amount:         t.Amount,
		PlatformFee:    t.PlatformFee,
		NetAmount:      t.NetAmount,
		CommissionRate: t.CommissionRate,
		Status:         t.Status.String(),
		ReversalReason: t.ReversalReason,
		ReversedAt:     t.ReversedAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func FromDomainModify(t *entities.TransactionModify) *TransactionModifyDB {
	if t == nil {
		return nil
	}

	transactionDB := &TransactionModifyDB{
		ID:             t.ID,
		ReversalReason: t.ReversalReason,
		ReversedAt:     t.ReversedAt,
	}
	if t.Status != nil {
		status := t.Status.String()
		transactionDB.Status = &status
	}

	return transactionDB
}

func RateToDomain(r *StoreRateDB) *entities.StoreCommissionRate {
	if r == nil {
		return nil
	}

	return &entities.StoreCommissionRate{
		StoreID:   r.StoreID,
		Rate:      r.Rate,
		UpdatedAt: r.UpdatedAt,
	}
}
