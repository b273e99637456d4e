package courier

import (
	"strings"

	"fulfillment/internal/entities"
)

func normalizeRegion(region string) string {
	return strings.ToLower(strings.TrimSpace(region))
}

func supportsService(services []entities.ServiceType, service entities.ServiceType) bool {
	for _, s := range services {
		if s == service {
			return true
		}
	}
	return false
}
