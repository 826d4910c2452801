package middleware

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/recipelist/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// DeviceIDKey is the context key for storing the unlocked device ID.
const DeviceIDKey contextKey = "device_id"

// GetDeviceID extracts the device ID from the context.
// Returns empty string if not found.
func GetDeviceID(ctx context.Context) string {
	deviceID, _ := ctx.Value(DeviceIDKey).(string)
	return deviceID
}

// RequireAuth returns a middleware that validates JWT tokens and requires authentication.
// It extracts the token from the Authorization header, validates it, and adds
// the device ID to the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			claims, err := authenticate(jwtManager, req.Header().Get("Authorization"))
			if err != nil {
				slog.Warn("Unauthenticated request", "procedure", req.Spec().Procedure, "error", err)
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			ctx = context.WithValue(ctx, DeviceIDKey, claims.DeviceID)
			return next(ctx, req)
		}
	}
}

func authenticate(jwtManager *auth.JWTManager, header string) (*auth.Claims, error) {
	tokenString, err := bearerToken(header)
	if err != nil {
		return nil, err
	}
	return jwtManager.Validate(tokenString)
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", auth.ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", auth.ErrInvalidToken
	}
	return parts[1], nil
}
