package rate_limiter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"fulfillment/internal/generated/dto"
	"fulfillment/internal/pkg/middlewares/metrics"
	"fulfillment/pkg/logger"
)

// Middleware отклоняет запрос с 429, если в ведре нет токена.
// burst попадает в заголовок X-RateLimit-Limit.
func Middleware(log handlerLogger, burst int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			route := metrics.RouteTemplate(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, route).Inc()

			log.Warn("rate limit exceeded",
				logger.NewField("method", r.Method),
				logger.NewField("route", route),
				logger.NewField("remote_addr", r.RemoteAddr),
			)

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(burst))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			body := dto.Error{Message: "rate limit exceeded, try again later"}
			if err := json.NewEncoder(w).Encode(body); err != nil {
				log.Error("failed to write rate limit response",
					logger.NewField("error", err.Error()),
					logger.NewField("route", route),
				)
			}
		})
	}
}
