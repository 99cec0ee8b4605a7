package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"studioops/config"
	"studioops/infras/otel"
	"studioops/shared/cache"
	"studioops/shared/constant"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

// Tracing opens a span per request and records the route pattern once
// chi has resolved it.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r.WithContext(ctx))

		route := r.URL.Path
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		scope.SetAttributes(map[string]any{
			"app.name":         a.config.App.Name,
			"http.path":        r.URL.Path,
			"http.route":       route,
			"http.method":      r.Method,
			"http.user_agent":  r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":        r.Host,
			"http.source":      a.getClientIP(r),
			"http.status_code": recorder.status,
		})
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}
