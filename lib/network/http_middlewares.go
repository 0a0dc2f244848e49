package network

import (
	"fmt"
	"net"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	logging "github.com/inconshreveable/log15"
	"github.com/ulule/limiter"
	"github.com/ulule/limiter/drivers/store/memory"

	"github.com/anunayjoshi29/ethvault/lib/common"
	"github.com/anunayjoshi29/ethvault/lib/metrics"
	"github.com/anunayjoshi29/ethvault/lib/network/httputils"
)

func RecoverMiddleware(logger logging.Logger) mux.MiddlewareFunc {
	if logger == nil {
		logger = log
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("panic: %v", rec)
					}
					httputils.WriteJSONError(w, err)
					logger.Error("recover a panic", "err", err)
					debug.PrintStack()
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type statusResponseWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func MetricsMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}
			begin := time.Now()

			next.ServeHTTP(sw, r)

			labels := []string{
				"endpoint", r.URL.Path,
				"method", r.Method,
				"status", strconv.Itoa(sw.status),
			}
			metrics.API.RequestsTotal.With(labels...).Add(1)
			if sw.status >= http.StatusBadRequest {
				metrics.API.RequestErrorsTotal.With(labels...).Add(1)
			}
			metrics.API.RequestDurationSeconds.With(labels...).Observe(time.Since(begin).Seconds())
		})
	}
}

// RateLimitMiddleware throttles requests per client ip; the rule can
// carry per-ip overrides, and a rate of 0 disables the limit for that ip.
func RateLimitMiddleware(logger logging.Logger, rule common.RateLimitRule) mux.MiddlewareFunc {
	if logger == nil {
		logger = log
	}

	store := memory.NewStore()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !rule.IsLimitedForIPAddress(ip) {
				next.ServeHTTP(w, r)
				return
			}

			limiterCtx, err := limiter.New(store, rule.GetRate(ip)).Get(r.Context(), ip)
			if err != nil {
				httputils.WriteJSONError(w, err)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(limiterCtx.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(limiterCtx.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(limiterCtx.Reset, 10))

			if limiterCtx.Reached {
				logger.Warn("request rate limited", "ip", ip, "path", r.URL.Path)
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
