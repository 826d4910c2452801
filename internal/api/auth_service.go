package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// AuthServiceName is the fully-qualified name of the AuthService.
const AuthServiceName = "recipelist.v1.AuthService"

const (
	AuthServiceUnlockProcedure = "/recipelist.v1.AuthService/Unlock"
)

// AuthServiceHandler is implemented by the server side of the AuthService.
type AuthServiceHandler interface {
	Unlock(context.Context, *connect.Request[UnlockRequest]) (*connect.Response[UnlockResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(HandlerOptions(), opts...)
	unlock := connect.NewUnaryHandler(AuthServiceUnlockProcedure, svc.Unlock, opts...)
	return "/" + AuthServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceUnlockProcedure:
			unlock.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// AuthServiceClient calls a remote AuthService.
type AuthServiceClient struct {
	unlock *connect.Client[UnlockRequest, UnlockResponse]
}

// NewAuthServiceClient returns a client for the AuthService at baseURL (e.g. http://localhost:8080).
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	opts = append(ClientOptions(), opts...)
	return &AuthServiceClient{
		unlock: connect.NewClient[UnlockRequest, UnlockResponse](httpClient, baseURL+AuthServiceUnlockProcedure, opts...),
	}
}

func (c *AuthServiceClient) Unlock(ctx context.Context, req *connect.Request[UnlockRequest]) (*connect.Response[UnlockResponse], error) {
	return c.unlock.CallUnary(ctx, req)
}
