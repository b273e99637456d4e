package shipment

import (
	"fulfillment/internal/entities"
)

// graph: разрешённые одношаговые переходы. Терминальных статусов в ключах нет.
var graph = map[entities.ShipmentStatus][]entities.ShipmentStatus{
	entities.ShipmentPending:        {entities.ShipmentBooked, entities.ShipmentCancelled},
	entities.ShipmentBooked:         {entities.ShipmentPickedUp, entities.ShipmentCancelled},
	entities.ShipmentPickedUp:       {entities.ShipmentInTransit, entities.ShipmentCancelled},
	entities.ShipmentInTransit:      {entities.ShipmentOutForDelivery, entities.ShipmentReturned, entities.ShipmentCancelled},
	entities.ShipmentOutForDelivery: {entities.ShipmentDelivered, entities.ShipmentFailedAttempt, entities.ShipmentReturned, entities.ShipmentCancelled},
	entities.ShipmentFailedAttempt:  {entities.ShipmentOutForDelivery, entities.ShipmentReturned, entities.ShipmentCancelled},
}

// progressRank упорядочивает статусы с одинаковым временем события.
var progressRank = map[entities.ShipmentStatus]int{
	entities.ShipmentPending:        0,
	entities.ShipmentBooked:         1,
	entities.ShipmentPickedUp:       2,
	entities.ShipmentInTransit:      3,
	entities.ShipmentOutForDelivery: 4,
	entities.ShipmentFailedAttempt:  5,
	entities.ShipmentDelivered:      6,
	entities.ShipmentReturned:       7,
	entities.ShipmentCancelled:      8,
}

func CanTransition(from, to entities.ShipmentStatus) bool {
	for _, next := range graph[from] {
		if next == to {
			return true
		}
	}
	return false
}

func Transition(from, to entities.ShipmentStatus) error {
	if !CanTransition(from, to) {
		return &entities.StateTransitionError{From: from, To: to}
	}
	return nil
}

// Reachable сообщает, достижим ли to из from по графу хотя бы за один шаг.
// Провайдеры присылают разреженные ленты, поэтому промежуточные статусы можно пропускать.
func Reachable(from, to entities.ShipmentStatus) bool {
	if from == to {
		return false
	}

	visited := map[entities.ShipmentStatus]bool{from: true}
	queue := []entities.ShipmentStatus{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, next := range graph[current] {
			if next == to {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

// DeriveStatus возвращает статус события с максимальным временем.
// unknown пропускается, равные времена разрешаются рангом прогресса,
// так что результат не зависит от порядка событий.
func DeriveStatus(events []entities.TrackingEvent) (entities.ShipmentStatus, bool) {
	var (
		best  entities.TrackingEvent
		found bool
	)

	for _, event := range events {
		if !event.Status.IsCanonical() {
			continue
		}
		if !found || newer(event, best) {
			best = event
			found = true
		}
	}

	if !found {
		return entities.ShipmentUnknown, false
	}
	return best.Status, true
}

func newer(candidate, current entities.TrackingEvent) bool {
	if !candidate.Timestamp.Equal(current.Timestamp) {
		return candidate.Timestamp.After(current.Timestamp)
	}
	return progressRank[candidate.Status] > progressRank[current.Status]
}

func countFailedAttempts(events []entities.TrackingEvent) int {
	count := 0
	for _, event := range events {
		if event.Status == entities.ShipmentFailedAttempt {
			count++
		}
	}
	return count
}

// decision: итог применения производного статуса к текущему.
type decision struct {
	next   entities.ShipmentStatus
	reason entities.OperatorReason
}

func (d decision) changed(current entities.ShipmentStatus) bool {
	return d.next != current
}

// decide применяет производный статус к текущему с учётом лимита неудачных попыток.
// cancelled от провайдера никогда не применяется автоматически: такие случаи уходят оператору.
func decide(current, derived entities.ShipmentStatus, failedAttempts, ceiling int) decision {
	keep := decision{next: current}

	if current.IsTerminal() || derived == current || !derived.IsCanonical() {
		return keep
	}

	if derived == entities.ShipmentCancelled {
		keep.reason = entities.OperatorProviderCancelled
		return keep
	}

	if !Reachable(current, derived) {
		return keep
	}

	if current == entities.ShipmentFailedAttempt && failedAttempts >= ceiling &&
		(derived == entities.ShipmentOutForDelivery || derived == entities.ShipmentDelivered) {
		keep.reason = entities.OperatorAttemptsExhausted
		return keep
	}

	return decision{next: derived}
}
