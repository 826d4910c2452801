package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// IngredientServiceName is the fully-qualified name of the IngredientService.
const IngredientServiceName = "recipelist.v1.IngredientService"

const (
	IngredientServiceListIngredientsProcedure  = "/recipelist.v1.IngredientService/ListIngredients"
	IngredientServiceCreateIngredientProcedure = "/recipelist.v1.IngredientService/CreateIngredient"
	IngredientServiceDeleteIngredientProcedure = "/recipelist.v1.IngredientService/DeleteIngredient"
)

// IngredientServiceHandler is implemented by the server side of the IngredientService.
type IngredientServiceHandler interface {
	ListIngredients(context.Context, *connect.Request[ListIngredientsRequest]) (*connect.Response[ListIngredientsResponse], error)
	CreateIngredient(context.Context, *connect.Request[CreateIngredientRequest]) (*connect.Response[CreateIngredientResponse], error)
	DeleteIngredient(context.Context, *connect.Request[DeleteIngredientRequest]) (*connect.Response[DeleteIngredientResponse], error)
}

// NewIngredientServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewIngredientServiceHandler(svc IngredientServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(HandlerOptions(), opts...)
	listIngredients := connect.NewUnaryHandler(IngredientServiceListIngredientsProcedure, svc.ListIngredients, opts...)
	createIngredient := connect.NewUnaryHandler(IngredientServiceCreateIngredientProcedure, svc.CreateIngredient, opts...)
	deleteIngredient := connect.NewUnaryHandler(IngredientServiceDeleteIngredientProcedure, svc.DeleteIngredient, opts...)
	return "/" + IngredientServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case IngredientServiceListIngredientsProcedure:
			listIngredients.ServeHTTP(w, r)
		case IngredientServiceCreateIngredientProcedure:
			createIngredient.ServeHTTP(w, r)
		case IngredientServiceDeleteIngredientProcedure:
			deleteIngredient.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// IngredientServiceClient calls a remote IngredientService.
type IngredientServiceClient struct {
	listIngredients  *connect.Client[ListIngredientsRequest, ListIngredientsResponse]
	createIngredient *connect.Client[CreateIngredientRequest, CreateIngredientResponse]
	deleteIngredient *connect.Client[DeleteIngredientRequest, DeleteIngredientResponse]
}

// NewIngredientServiceClient returns a client for the IngredientService at baseURL (e.g. http://localhost:8080).
func NewIngredientServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *IngredientServiceClient {
	opts = append(ClientOptions(), opts...)
	return &IngredientServiceClient{
		listIngredients:  connect.NewClient[ListIngredientsRequest, ListIngredientsResponse](httpClient, baseURL+IngredientServiceListIngredientsProcedure, opts...),
		createIngredient: connect.NewClient[CreateIngredientRequest, CreateIngredientResponse](httpClient, baseURL+IngredientServiceCreateIngredientProcedure, opts...),
		deleteIngredient: connect.NewClient[DeleteIngredientRequest, DeleteIngredientResponse](httpClient, baseURL+IngredientServiceDeleteIngredientProcedure, opts...),
	}
}

func (c *IngredientServiceClient) ListIngredients(ctx context.Context, req *connect.Request[ListIngredientsRequest]) (*connect.Response[ListIngredientsResponse], error) {
	return c.listIngredients.CallUnary(ctx, req)
}

func (c *IngredientServiceClient) CreateIngredient(ctx context.Context, req *connect.Request[CreateIngredientRequest]) (*connect.Response[CreateIngredientResponse], error) {
	return c.createIngredient.CallUnary(ctx, req)
}

func (c *IngredientServiceClient) DeleteIngredient(ctx context.Context, req *connect.Request[DeleteIngredientRequest]) (*connect.Response[DeleteIngredientResponse], error) {
	return c.deleteIngredient.CallUnary(ctx, req)
}
