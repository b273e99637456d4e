package operator_task

import "fulfillment/internal/entities"

func ToDomain(t *OperatorTaskDB) *entities.OperatorTask {
	if t == nil {
		return nil
	}

	return &entities.OperatorTask{
		ID:         t.ID,
		ShipmentID: t.ShipmentID,
		OrderID:    t.OrderID,
		Reason:     entities.OperatorReason(t.Reason),
		Details:    t.Details,
		CreatedAt:  t.CreatedAt,
		ResolvedAt: t.ResolvedAt,
	}
}

func ToDomainList(tasksDB []OperatorTaskDB) []entities.OperatorTask {
	if len(tasksDB) == 0 {
		return []entities.OperatorTask{}
	}

	result := make([]entities.OperatorTask, len(tasksDB))
	for i := range tasksDB {
		result[i] = *ToDomain(&tasksDB[i])
	}
	return result
}
