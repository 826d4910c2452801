package middleware

import (
	"connectrpc.com/connect"

	"github.com/mmynk/recipelist/internal/auth"
	"github.com/mmynk/recipelist/internal/metrics"
)

// Interceptors returns the interceptor chain for the data services, outermost first.
// Metrics wrap RequireAuth so rejected calls are still counted; logging runs inside
// it to see the device ID. A nil jwtManager leaves the services open.
func Interceptors(m *metrics.Metrics, jwtManager *auth.JWTManager) []connect.Interceptor {
	interceptors := []connect.Interceptor{MetricsInterceptor(m)}
	if jwtManager != nil {
		interceptors = append(interceptors, RequireAuth(jwtManager))
	}
	return append(interceptors, LoggingInterceptor())
}
