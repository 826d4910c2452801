package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/recipelist/internal/repository"
	"github.com/mmynk/recipelist/internal/storage"
	"github.com/mmynk/recipelist/internal/validation"
)

var errAlreadyOnList = errors.New("recipe is already on the shopping list")

// toConnectError maps domain failures to Connect codes the client can act on.
// Storage failures become retryable notifications rather than internal errors.
func toConnectError(err error) *connect.Error {
	var (
		validationErr *validation.Error
		readErr       *storage.ReadError
		writeErr      *storage.WriteError
	)

	switch {
	case errors.As(err, &validationErr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, repository.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, errAlreadyOnList):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case errors.As(err, &readErr) && errors.Is(err, storage.ErrMalformed):
		return connect.NewError(connect.CodeDataLoss, err)
	case errors.As(err, &readErr), errors.As(err, &writeErr), errors.Is(err, repository.ErrClosed):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
