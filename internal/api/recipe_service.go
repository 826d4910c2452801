package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// RecipeServiceName is the fully-qualified name of the RecipeService.
const RecipeServiceName = "recipelist.v1.RecipeService"

const (
	RecipeServiceListRecipesProcedure           = "/recipelist.v1.RecipeService/ListRecipes"
	RecipeServiceGetRecipeProcedure             = "/recipelist.v1.RecipeService/GetRecipe"
	RecipeServiceCreateRecipeProcedure          = "/recipelist.v1.RecipeService/CreateRecipe"
	RecipeServiceUpdateRecipeProcedure          = "/recipelist.v1.RecipeService/UpdateRecipe"
	RecipeServiceDeleteRecipeProcedure          = "/recipelist.v1.RecipeService/DeleteRecipe"
	RecipeServiceSetServingProcedure            = "/recipelist.v1.RecipeService/SetServing"
	RecipeServicePutIngredientProcedure         = "/recipelist.v1.RecipeService/PutIngredient"
	RecipeServiceSetIngredientQuantityProcedure = "/recipelist.v1.RecipeService/SetIngredientQuantity"
	RecipeServiceRemoveIngredientProcedure      = "/recipelist.v1.RecipeService/RemoveIngredient"
	RecipeServiceSuggestIngredientsProcedure    = "/recipelist.v1.RecipeService/SuggestIngredients"
)

// RecipeServiceHandler is implemented by the server side of the RecipeService.
type RecipeServiceHandler interface {
	ListRecipes(context.Context, *connect.Request[ListRecipesRequest]) (*connect.Response[ListRecipesResponse], error)
	GetRecipe(context.Context, *connect.Request[GetRecipeRequest]) (*connect.Response[GetRecipeResponse], error)
	CreateRecipe(context.Context, *connect.Request[CreateRecipeRequest]) (*connect.Response[CreateRecipeResponse], error)
	UpdateRecipe(context.Context, *connect.Request[UpdateRecipeRequest]) (*connect.Response[UpdateRecipeResponse], error)
	DeleteRecipe(context.Context, *connect.Request[DeleteRecipeRequest]) (*connect.Response[DeleteRecipeResponse], error)
	SetServing(context.Context, *connect.Request[SetServingRequest]) (*connect.Response[SetServingResponse], error)
	PutIngredient(context.Context, *connect.Request[PutIngredientRequest]) (*connect.Response[PutIngredientResponse], error)
	SetIngredientQuantity(context.Context, *connect.Request[SetIngredientQuantityRequest]) (*connect.Response[SetIngredientQuantityResponse], error)
	RemoveIngredient(context.Context, *connect.Request[RemoveIngredientRequest]) (*connect.Response[RemoveIngredientResponse], error)
	SuggestIngredients(context.Context, *connect.Request[SuggestIngredientsRequest]) (*connect.Response[SuggestIngredientsResponse], error)
}

// NewRecipeServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewRecipeServiceHandler(svc RecipeServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(HandlerOptions(), opts...)
	listRecipes := connect.NewUnaryHandler(RecipeServiceListRecipesProcedure, svc.ListRecipes, opts...)
	getRecipe := connect.NewUnaryHandler(RecipeServiceGetRecipeProcedure, svc.GetRecipe, opts...)
	createRecipe := connect.NewUnaryHandler(RecipeServiceCreateRecipeProcedure, svc.CreateRecipe, opts...)
	updateRecipe := connect.NewUnaryHandler(RecipeServiceUpdateRecipeProcedure, svc.UpdateRecipe, opts...)
	deleteRecipe := connect.NewUnaryHandler(RecipeServiceDeleteRecipeProcedure, svc.DeleteRecipe, opts...)
	setServing := connect.NewUnaryHandler(RecipeServiceSetServingProcedure, svc.SetServing, opts...)
	putIngredient := connect.NewUnaryHandler(RecipeServicePutIngredientProcedure, svc.PutIngredient, opts...)
	setIngredientQuantity := connect.NewUnaryHandler(RecipeServiceSetIngredientQuantityProcedure, svc.SetIngredientQuantity, opts...)
	removeIngredient := connect.NewUnaryHandler(RecipeServiceRemoveIngredientProcedure, svc.RemoveIngredient, opts...)
	suggestIngredients := connect.NewUnaryHandler(RecipeServiceSuggestIngredientsProcedure, svc.SuggestIngredients, opts...)
	return "/" + RecipeServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case RecipeServiceListRecipesProcedure:
			listRecipes.ServeHTTP(w, r)
		case RecipeServiceGetRecipeProcedure:
			getRecipe.ServeHTTP(w, r)
		case RecipeServiceCreateRecipeProcedure:
			createRecipe.ServeHTTP(w, r)
		case RecipeServiceUpdateRecipeProcedure:
			updateRecipe.ServeHTTP(w, r)
		case RecipeServiceDeleteRecipeProcedure:
			deleteRecipe.ServeHTTP(w, r)
		case RecipeServiceSetServingProcedure:
			setServing.ServeHTTP(w, r)
		case RecipeServicePutIngredientProcedure:
			putIngredient.ServeHTTP(w, r)
		case RecipeServiceSetIngredientQuantityProcedure:
			setIngredientQuantity.ServeHTTP(w, r)
		case RecipeServiceRemoveIngredientProcedure:
			removeIngredient.ServeHTTP(w, r)
		case RecipeServiceSuggestIngredientsProcedure:
			suggestIngredients.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// RecipeServiceClient calls a remote RecipeService.
type RecipeServiceClient struct {
	listRecipes           *connect.Client[ListRecipesRequest, ListRecipesResponse]
	getRecipe             *connect.Client[GetRecipeRequest, GetRecipeResponse]
	createRecipe          *connect.Client[CreateRecipeRequest, CreateRecipeResponse]
	updateRecipe          *connect.Client[UpdateRecipeRequest, UpdateRecipeResponse]
	deleteRecipe          *connect.Client[DeleteRecipeRequest, DeleteRecipeResponse]
	setServing            *connect.Client[SetServingRequest, SetServingResponse]
	putIngredient         *connect.Client[PutIngredientRequest, PutIngredientResponse]
	setIngredientQuantity *connect.Client[SetIngredientQuantityRequest, SetIngredientQuantityResponse]
	removeIngredient      *connect.Client[RemoveIngredientRequest, RemoveIngredientResponse]
	suggestIngredients    *connect.Client[SuggestIngredientsRequest, SuggestIngredientsResponse]
}

// NewRecipeServiceClient returns a client for the RecipeService at baseURL (e.g. http://localhost:8080).
func NewRecipeServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *RecipeServiceClient {
	opts = append(ClientOptions(), opts...)
	return &RecipeServiceClient{
		listRecipes:           connect.NewClient[ListRecipesRequest, ListRecipesResponse](httpClient, baseURL+RecipeServiceListRecipesProcedure, opts...),
		getRecipe:             connect.NewClient[GetRecipeRequest, GetRecipeResponse](httpClient, baseURL+RecipeServiceGetRecipeProcedure, opts...),
		createRecipe:          connect.NewClient[CreateRecipeRequest, CreateRecipeResponse](httpClient, baseURL+RecipeServiceCreateRecipeProcedure, opts...),
		updateRecipe:          connect.NewClient[UpdateRecipeRequest, UpdateRecipeResponse](httpClient, baseURL+RecipeServiceUpdateRecipeProcedure, opts...),
		deleteRecipe:          connect.NewClient[DeleteRecipeRequest, DeleteRecipeResponse](httpClient, baseURL+RecipeServiceDeleteRecipeProcedure, opts...),
		setServing:            connect.NewClient[SetServingRequest, SetServingResponse](httpClient, baseURL+RecipeServiceSetServingProcedure, opts...),
		putIngredient:         connect.NewClient[PutIngredientRequest, PutIngredientResponse](httpClient, baseURL+RecipeServicePutIngredientProcedure, opts...),
		setIngredientQuantity: connect.NewClient[SetIngredientQuantityRequest, SetIngredientQuantityResponse](httpClient, baseURL+RecipeServiceSetIngredientQuantityProcedure, opts...),
		removeIngredient:      connect.NewClient[RemoveIngredientRequest, RemoveIngredientResponse](httpClient, baseURL+RecipeServiceRemoveIngredientProcedure, opts...),
		suggestIngredients:    connect.NewClient[SuggestIngredientsRequest, SuggestIngredientsResponse](httpClient, baseURL+RecipeServiceSuggestIngredientsProcedure, opts...),
	}
}

func (c *RecipeServiceClient) ListRecipes(ctx context.Context, req *connect.Request[ListRecipesRequest]) (*connect.Response[ListRecipesResponse], error) {
	return c.listRecipes.CallUnary(ctx, req)
}

func (c *RecipeServiceClient) GetRecipe(ctx context.Context, req *connect.Request[GetRecipeRequest]) (*connect.Response[GetRecipeResponse], error) {
	return c.getRecipe.CallUnary(ctx, req)
}

func (c *RecipeServiceClient) CreateRecipe(ctx context.Context, req *connect.Request[CreateRecipeRequest]) (*connect.Response[CreateRecipeResponse], error) {
	return c.createRecipe.CallUnary(ctx, req)
}

func (c *RecipeServiceClient) UpdateRecipe(ctx context.Context, req *connect.Request[UpdateRecipeRequest]) (*connect.Response[UpdateRecipeResponse], error) {
	return c.updateRecipe.CallUnary(ctx, req)
}

func (c *RecipeServiceClient) DeleteRecipe(ctx context.Context, req *connect.Request[DeleteRecipeRequest]) (*connect.Response[DeleteRecipeResponse], error) {
	return c.deleteRecipe.CallUnary(ctx, req)
}

func (c *RecipeServiceClient) SetServing(ctx context.Context, req *connect.Request[SetServingRequest]) (*connect.Response[SetServingResponse], error) {
	return c.setServing.CallUnary(ctx, req)
}

func (c *RecipeServiceClient) PutIngredient(ctx context.Context, req *connect.Request[PutIngredientRequest]) (*connect.Response[PutIngredientResponse], error) {
	return c.putIngredient.CallUnary(ctx, req)
}

func (c *RecipeServiceClient) SetIngredientQuantity(ctx context.Context, req *connect.Request[SetIngredientQuantityRequest]) (*connect.Response[SetIngredientQuantityResponse], error) {
	return c.setIngredientQuantity.CallUnary(ctx, req)
}

func (c *RecipeServiceClient) RemoveIngredient(ctx context.Context, req *connect.Request[RemoveIngredientRequest]) (*connect.Response[RemoveIngredientResponse], error) {
	return c.removeIngredient.CallUnary(ctx, req)
}

func (c *RecipeServiceClient) SuggestIngredients(ctx context.Context, req *connect.Request[SuggestIngredientsRequest]) (*connect.Response[SuggestIngredientsResponse], error) {
	return c.suggestIngredients.CallUnary(ctx, req)
}
