package payout

import "fulfillment/internal/entities"

func ToDomain(p *PayoutDB) *entities.PayoutRequest {
	if p == nil {
		return nil
	}

	return &entities.PayoutRequest{
		ID:             p.ID,
		StoreID:        p.StoreID,
		Amount:         p.Amount,
		ApprovedAmount: p.ApprovedAmount,
		Status:         entities.PayoutStatus(p.Status),
		FailureReason:  p.FailureReason,
		CreatedAt:      p.CreatedAt,
		ProcessedAt:    p.ProcessedAt,
	}
}

func FromDomainModify(p *entities.PayoutModify) *PayoutModifyDB {
	if p == nil {
		return nil
	}

	payoutDB := &PayoutModifyDB{
		ID:             p.ID,
		ApprovedAmount: p.ApprovedAmount,
		FailureReason:  p.FailureReason,
		ProcessedAt:    p.ProcessedAt,
	}
	if p.Status != nil {
		status := p.Status.String()
		payoutDB.Status = &status
	}

	return payoutDB
}

func ToDomainList(payoutsDB []PayoutDB) []entities.PayoutRequest {
	if len(payoutsDB) == 0 {
		return []entities.PayoutRequest{}
	}

	result := make([]entities.PayoutRequest, len(payoutsDB))
	for i := range payoutsDB {
		result[i] = *ToDomain(&payoutsDB[i])
	}
	return result
}
