package courier_provider

import (
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/gateway/courier/metroexpress"
	"fulfillment/internal/gateway/courier/parcelnet"
	"fulfillment/internal/gateway/courier/rapidpost"
	"fulfillment/internal/pkg/registry"
	"fulfillment/internal/service/courier"
	"fulfillment/pkg/retrier"
	"fulfillment/pkg/token_bucket"
)

const (
	retryRandomization = 0.5
	retryMultiplier    = 2
)

type BuildFn func(p registry.Provider) courier.Provider

// ProviderFactory собирает адаптеры курьеров по записям реестра.
// Новый курьер подключается добавлением конструктора в builders.
type ProviderFactory struct {
	builders map[entities.ProviderID]BuildFn
}

func New() *ProviderFactory {
	return &ProviderFactory{
		builders: map[entities.ProviderID]BuildFn{
			"rapidpost":    buildRapidPost,
			"parcelnet":    buildParcelNet,
			"metroexpress": buildMetroExpress,
		},
	}
}

// Registrations возвращает регистрации для Router по включённым провайдерам.
// Неизвестный id в реестре считается ошибкой конфигурации.
func (f *ProviderFactory) Registrations(reg *registry.Registry) ([]courier.Registration, error) {
	enabled := reg.Enabled()
	out := make([]courier.Registration, 0, len(enabled))

	for _, p := range enabled {
		build, ok := f.builders[p.ID]
		if !ok {
			return nil, fmt.Errorf("%w: no adapter for %s", courier.ErrUnknownProvider, p.ID)
		}

		out = append(out, courier.Registration{
			Provider:            build(p),
			Coverage:            p.Coverage,
			Services:            p.Services,
			MaxDeliveryAttempts: p.MaxDeliveryAttempts,
			MaxConcurrency:      p.MaxConcurrency,
			Limiter:             token_bucket.NewTokenBucket(p.RateLimit.Capacity, p.RateLimit.PerSecond),
			Retry: retrier.Config{
				InitialInterval: p.Retry.InitialInterval,
				MaxInterval:     p.Retry.MaxInterval,
				MaxElapsedTime:  p.Retry.MaxElapsedTime,
				MaxRetries:      p.Retry.MaxRetries,
				Randomization:   retryRandomization,
				Multiplier:      retryMultiplier,
			},
			CallTimeout: p.Timeout,
		})
	}

	return out, nil
}

func buildRapidPost(p registry.Provider) courier.Provider {
	return rapidpost.New(rapidpost.Config{
		BaseURL:   p.BaseURL,
		APIKey:    p.Credential("api_key"),
		SecretKey: p.Credential("secret_key"),
		Timeout:   p.Timeout,
		Tariff:    p.Tariff,
	})
}

func buildParcelNet(p registry.Provider) courier.Provider {
	return parcelnet.New(parcelnet.Config{
		BaseURL:   p.BaseURL,
		APIKey:    p.Credential("api_key"),
		APISecret: p.Credential("api_secret"),
		Timeout:   p.Timeout,
		Tariff:    p.Tariff,
	})
}

func buildMetroExpress(p registry.Provider) courier.Provider {
	return metroexpress.New(metroexpress.Config{
		BaseURL:      p.BaseURL,
		ClientID:     p.Credential("client_id"),
		ClientSecret: p.Credential("client_secret"),
		Timeout:      p.Timeout,
		Tariff:       p.Tariff,
	})
}
