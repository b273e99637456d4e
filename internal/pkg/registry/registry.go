package registry

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/gateway/courier"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	defaultTimeout        = 10 * time.Second
	defaultMaxConcurrency = 8
	defaultRateCapacity   = 10
	defaultRatePerSecond  = 5.0
	defaultMaxRetries     = 3
)

type RateLimit struct {
	Capacity  int
	PerSecond float64
}

type Retry struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
}

// Provider - настройки одного курьера из реестра.
type Provider struct {
	ID                  entities.ProviderID
	Enabled             bool
	BaseURL             string
	Timeout             time.Duration
	Credentials         map[string]string
	Coverage            []string
	Services            []entities.ServiceType
	MaxDeliveryAttempts int
	MaxConcurrency      int64
	RateLimit           RateLimit
	Retry               Retry
	Tariff              courier.Tariff
}

// Credential возвращает секрет по имени (ключи регистронезависимы).
func (p Provider) Credential(name string) string {
	return p.Credentials[strings.ToLower(name)]
}

type Registry struct {
	Distances DistanceTable
	Providers []Provider
}

// Enabled возвращает только включенных провайдеров в порядке файла.
func (r *Registry) Enabled() []Provider {
	out := make([]Provider, 0, len(r.Providers))
	for _, p := range r.Providers {
		if p.Enabled {
			out = append(out, p)
		}
	}
	return out
}

type rawRegistry struct {
	Distances struct {
		DefaultKm float64 `mapstructure:"default_km"`
		LocalKm   float64 `mapstructure:"local_km"`
		Routes    []struct {
			From string  `mapstructure:"from"`
			To   string  `mapstructure:"to"`
			Km   float64 `mapstructure:"km"`
		} `mapstructure:"routes"`
	} `mapstructure:"distances"`
	Providers []rawProvider `mapstructure:"providers"`
}

type rawProvider struct {
	ID                  string            `mapstructure:"id"`
	Enabled             *bool             `mapstructure:"enabled"`
	BaseURL             string            `mapstructure:"base_url"`
	Timeout             time.Duration     `mapstructure:"timeout"`
	Credentials         map[string]string `mapstructure:"credentials"`
	Coverage            []string          `mapstructure:"coverage"`
	Services            []string          `mapstructure:"services"`
	MaxDeliveryAttempts int               `mapstructure:"max_delivery_attempts"`
	MaxConcurrency      int64             `mapstructure:"max_concurrency"`
	RateLimit           struct {
		Capacity  int     `mapstructure:"capacity"`
		PerSecond float64 `mapstructure:"per_second"`
	} `mapstructure:"rate_limit"`
	Retry struct {
		MaxRetries      uint64        `mapstructure:"max_retries"`
		InitialInterval time.Duration `mapstructure:"initial_interval"`
		MaxInterval     time.Duration `mapstructure:"max_interval"`
		MaxElapsedTime  time.Duration `mapstructure:"max_elapsed_time"`
	} `mapstructure:"retry"`
	Tariff struct {
		Base        string            `mapstructure:"base"`
		PerKm       string            `mapstructure:"per_km"`
		PerKg       string            `mapstructure:"per_kg"`
		Multipliers map[string]string `mapstructure:"multipliers"`
	} `mapstructure:"tariff"`
}

// Load читает реестр курьеров из YAML файла. Значения вида ${ENV} в
// credentials и base_url подставляются из окружения.
func Load(path string, defaultAttempts int) (*Registry, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read courier registry %s: %w", path, err)
	}

	var raw rawRegistry
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("decode courier registry %s: %w", path, err)
	}

	return build(raw, defaultAttempts)
}

func build(raw rawRegistry, defaultAttempts int) (*Registry, error) {
	reg := &Registry{
		Distances: NewDistanceTable(raw.Distances.DefaultKm, raw.Distances.LocalKm),
	}
	for _, route := range raw.Distances.Routes {
		if route.Km < 0 {
			return nil, fmt.Errorf("distance %s-%s must not be negative", route.From, route.To)
		}
		reg.Distances.Set(route.From, route.To, route.Km)
	}

	seen := make(map[string]struct{}, len(raw.Providers))
	for i, rp := range raw.Providers {
		if rp.ID == "" {
			return nil, fmt.Errorf("provider #%d: id is required", i)
		}
		if _, ok := seen[rp.ID]; ok {
			return nil, fmt.Errorf("provider %s: duplicate id", rp.ID)
		}
		seen[rp.ID] = struct{}{}

		p, err := buildProvider(rp, defaultAttempts)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", rp.ID, err)
		}
		reg.Providers = append(reg.Providers, p)
	}

	if len(reg.Enabled()) == 0 {
		return nil, errors.New("courier registry has no enabled providers")
	}

	return reg, nil
}

func buildProvider(rp rawProvider, defaultAttempts int) (Provider, error) {
	p := Provider{
		ID:                  entities.ProviderID(rp.ID),
		Enabled:             rp.Enabled == nil || *rp.Enabled,
		BaseURL:             os.ExpandEnv(rp.BaseURL),
		Timeout:             rp.Timeout,
		Credentials:         make(map[string]string, len(rp.Credentials)),
		MaxDeliveryAttempts: rp.MaxDeliveryAttempts,
		MaxConcurrency:      rp.MaxConcurrency,
		RateLimit: RateLimit{
			Capacity:  rp.RateLimit.Capacity,
			PerSecond: rp.RateLimit.PerSecond,
		},
		Retry: Retry{
			MaxRetries:      rp.Retry.MaxRetries,
			InitialInterval: rp.Retry.InitialInterval,
			MaxInterval:     rp.Retry.MaxInterval,
			MaxElapsedTime:  rp.Retry.MaxElapsedTime,
		},
	}

	if p.BaseURL == "" {
		return Provider{}, errors.New("base_url is required")
	}
	for k, val := range rp.Credentials {
		p.Credentials[strings.ToLower(k)] = os.ExpandEnv(val)
	}

	for _, region := range rp.Coverage {
		p.Coverage = append(p.Coverage, normalize(region))
	}
	if len(p.Coverage) == 0 {
		return Provider{}, errors.New("coverage must list at least one region")
	}

	for _, s := range rp.Services {
		st := entities.ServiceType(strings.ToLower(s))
		if !st.IsValid() {
			return Provider{}, fmt.Errorf("unknown service type %q", s)
		}
		p.Services = append(p.Services, st)
	}
	if len(p.Services) == 0 {
		p.Services = []entities.ServiceType{entities.DefaultServiceType}
	}

	tariff, err := buildTariff(rp)
	if err != nil {
		return Provider{}, err
	}
	p.Tariff = tariff

	applyDefaults(&p, defaultAttempts)

	return p, nil
}

func buildTariff(rp rawProvider) (courier.Tariff, error) {
	parse := func(field, val string) (decimal.Decimal, error) {
		if val == "" {
			return decimal.Zero, nil
		}
		d, err := decimal.NewFromString(val)
		if err != nil {
			return decimal.Zero, fmt.Errorf("tariff %s: %w", field, err)
		}
		if d.IsNegative() {
			return decimal.Zero, fmt.Errorf("tariff %s must not be negative", field)
		}
		return d, nil
	}

	var (
		t   courier.Tariff
		err error
	)
	if t.Base, err = parse("base", rp.Tariff.Base); err != nil {
		return t, err
	}
	if t.PerKm, err = parse("per_km", rp.Tariff.PerKm); err != nil {
		return t, err
	}
	if t.PerKg, err = parse("per_kg", rp.Tariff.PerKg); err != nil {
		return t, err
	}

	t.Multipliers = make(map[entities.ServiceType]decimal.Decimal, len(rp.Tariff.Multipliers))
	for service, val := range rp.Tariff.Multipliers {
		st := entities.ServiceType(strings.ToLower(service))
		if !st.IsValid() {
			return t, fmt.Errorf("tariff multiplier for unknown service %q", service)
		}
		m, err := parse("multipliers."+service, val)
		if err != nil {
			return t, err
		}
		t.Multipliers[st] = m
	}

	return t, nil
}

func applyDefaults(p *Provider, defaultAttempts int) {
	if p.Timeout <= 0 {
		p.Timeout = defaultTimeout
	}
	if p.MaxDeliveryAttempts <= 0 {
		p.MaxDeliveryAttempts = defaultAttempts
	}
	if p.MaxConcurrency <= 0 {
		p.MaxConcurrency = defaultMaxConcurrency
	}
	if p.RateLimit.Capacity <= 0 {
		p.RateLimit.Capacity = defaultRateCapacity
	}
	if p.RateLimit.PerSecond <= 0 {
		p.RateLimit.PerSecond = defaultRatePerSecond
	}
	if p.Retry.MaxRetries == 0 {
		p.Retry.MaxRetries = defaultMaxRetries
	}
	if p.Retry.InitialInterval <= 0 {
		p.Retry.InitialInterval = 200 * time.Millisecond
	}
	if p.Retry.MaxInterval <= 0 {
		p.Retry.MaxInterval = 2 * time.Second
	}
	if p.Retry.MaxElapsedTime <= 0 {
		p.Retry.MaxElapsedTime = 15 * time.Second
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
