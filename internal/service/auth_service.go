package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/recipelist/internal/api"
	"github.com/mmynk/recipelist/internal/auth"
	"github.com/mmynk/recipelist/internal/validation"
)

// DeviceIDHeader lets a client name itself in the issued token.
const DeviceIDHeader = "X-Device-Id"

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

var _ api.AuthServiceHandler = (*AuthService)(nil)

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Unlock exchanges the shared passcode for a bearer token.
func (s *AuthService) Unlock(ctx context.Context, req *connect.Request[api.UnlockRequest]) (*connect.Response[api.UnlockResponse], error) {
	deviceID := req.Header().Get(DeviceIDHeader)
	if deviceID == "" {
		deviceID = uuid.NewString()
	}
	s.logger.Info("Unlock request", "device_id", deviceID)

	if err := validation.Struct(req.Msg); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.authenticator.Authenticate(ctx, req.Msg.Passcode); err != nil {
		s.logger.Warn("Unlock failed", "device_id", deviceID, "error", err)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, connect.NewError(connect.CodeUnauthenticated, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	token, expiresAt, err := s.jwtManager.Generate(deviceID)
	if err != nil {
		s.logger.Error("Failed to generate token", "device_id", deviceID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Device unlocked", "device_id", deviceID)
	return connect.NewResponse(&api.UnlockResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}), nil
}
