package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// ShoppingListServiceName is the fully-qualified name of the ShoppingListService.
const ShoppingListServiceName = "recipelist.v1.ShoppingListService"

const (
	ShoppingListServiceListShoppingListsProcedure      = "/recipelist.v1.ShoppingListService/ListShoppingLists"
	ShoppingListServiceGetShoppingListProcedure        = "/recipelist.v1.ShoppingListService/GetShoppingList"
	ShoppingListServiceCreateShoppingListProcedure     = "/recipelist.v1.ShoppingListService/CreateShoppingList"
	ShoppingListServiceDeleteShoppingListProcedure     = "/recipelist.v1.ShoppingListService/DeleteShoppingList"
	ShoppingListServiceAddRecipeProcedure              = "/recipelist.v1.ShoppingListService/AddRecipe"
	ShoppingListServiceSetRequestedServingProcedure    = "/recipelist.v1.ShoppingListService/SetRequestedServing"
	ShoppingListServiceRemoveRecipeProcedure           = "/recipelist.v1.ShoppingListService/RemoveRecipe"
	ShoppingListServiceSuggestRecipesProcedure         = "/recipelist.v1.ShoppingListService/SuggestRecipes"
	ShoppingListServiceGenerateIngredientListProcedure = "/recipelist.v1.ShoppingListService/GenerateIngredientList"
)

// ShoppingListServiceHandler is implemented by the server side of the ShoppingListService.
type ShoppingListServiceHandler interface {
	ListShoppingLists(context.Context, *connect.Request[ListShoppingListsRequest]) (*connect.Response[ListShoppingListsResponse], error)
	GetShoppingList(context.Context, *connect.Request[GetShoppingListRequest]) (*connect.Response[GetShoppingListResponse], error)
	CreateShoppingList(context.Context, *connect.Request[CreateShoppingListRequest]) (*connect.Response[CreateShoppingListResponse], error)
	DeleteShoppingList(context.Context, *connect.Request[DeleteShoppingListRequest]) (*connect.Response[DeleteShoppingListResponse], error)
	AddRecipe(context.Context, *connect.Request[AddRecipeRequest]) (*connect.Response[AddRecipeResponse], error)
	SetRequestedServing(context.Context, *connect.Request[SetRequestedServingRequest]) (*connect.Response[SetRequestedServingResponse], error)
	RemoveRecipe(context.Context, *connect.Request[RemoveRecipeRequest]) (*connect.Response[RemoveRecipeResponse], error)
	SuggestRecipes(context.Context, *connect.Request[SuggestRecipesRequest]) (*connect.Response[SuggestRecipesResponse], error)
	GenerateIngredientList(context.Context, *connect.Request[GenerateIngredientListRequest]) (*connect.Response[GenerateIngredientListResponse], error)
}

// NewShoppingListServiceHandler builds an HTTP handler for svc and returns the path to mount it on.
func NewShoppingListServiceHandler(svc ShoppingListServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append(HandlerOptions(), opts...)
	listShoppingLists := connect.NewUnaryHandler(ShoppingListServiceListShoppingListsProcedure, svc.ListShoppingLists, opts...)
	getShoppingList := connect.NewUnaryHandler(ShoppingListServiceGetShoppingListProcedure, svc.GetShoppingList, opts...)
	createShoppingList := connect.NewUnaryHandler(ShoppingListServiceCreateShoppingListProcedure, svc.CreateShoppingList, opts...)
	deleteShoppingList := connect.NewUnaryHandler(ShoppingListServiceDeleteShoppingListProcedure, svc.DeleteShoppingList, opts...)
	addRecipe := connect.NewUnaryHandler(ShoppingListServiceAddRecipeProcedure, svc.AddRecipe, opts...)
	setRequestedServing := connect.NewUnaryHandler(ShoppingListServiceSetRequestedServingProcedure, svc.SetRequestedServing, opts...)
	removeRecipe := connect.NewUnaryHandler(ShoppingListServiceRemoveRecipeProcedure, svc.RemoveRecipe, opts...)
	suggestRecipes := connect.NewUnaryHandler(ShoppingListServiceSuggestRecipesProcedure, svc.SuggestRecipes, opts...)
	generateIngredientList := connect.NewUnaryHandler(ShoppingListServiceGenerateIngredientListProcedure, svc.GenerateIngredientList, opts...)
	return "/" + ShoppingListServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ShoppingListServiceListShoppingListsProcedure:
			listShoppingLists.ServeHTTP(w, r)
		case ShoppingListServiceGetShoppingListProcedure:
			getShoppingList.ServeHTTP(w, r)
		case ShoppingListServiceCreateShoppingListProcedure:
			createShoppingList.ServeHTTP(w, r)
		case ShoppingListServiceDeleteShoppingListProcedure:
			deleteShoppingList.ServeHTTP(w, r)
		case ShoppingListServiceAddRecipeProcedure:
			addRecipe.ServeHTTP(w, r)
		case ShoppingListServiceSetRequestedServingProcedure:
			setRequestedServing.ServeHTTP(w, r)
		case ShoppingListServiceRemoveRecipeProcedure:
			removeRecipe.ServeHTTP(w, r)
		case ShoppingListServiceSuggestRecipesProcedure:
			suggestRecipes.ServeHTTP(w, r)
		case ShoppingListServiceGenerateIngredientListProcedure:
			generateIngredientList.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ShoppingListServiceClient calls a remote ShoppingListService.
type ShoppingListServiceClient struct {
	listShoppingLists      *connect.Client[ListShoppingListsRequest, ListShoppingListsResponse]
	getShoppingList        *connect.Client[GetShoppingListRequest, GetShoppingListResponse]
	createShoppingList     *connect.Client[CreateShoppingListRequest, CreateShoppingListResponse]
	deleteShoppingList     *connect.Client[DeleteShoppingListRequest, DeleteShoppingListResponse]
	addRecipe              *connect.Client[AddRecipeRequest, AddRecipeResponse]
	setRequestedServing    *connect.Client[SetRequestedServingRequest, SetRequestedServingResponse]
	removeRecipe           *connect.Client[RemoveRecipeRequest, RemoveRecipeResponse]
	suggestRecipes         *connect.Client[SuggestRecipesRequest, SuggestRecipesResponse]
	generateIngredientList *connect.Client[GenerateIngredientListRequest, GenerateIngredientListResponse]
}

// NewShoppingListServiceClient returns a client for the ShoppingListService at baseURL (e.g. http://localhost:8080).
func NewShoppingListServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ShoppingListServiceClient {
	opts = append(ClientOptions(), opts...)
	return &ShoppingListServiceClient{
		listShoppingLists:      connect.NewClient[ListShoppingListsRequest, ListShoppingListsResponse](httpClient, baseURL+ShoppingListServiceListShoppingListsProcedure, opts...),
		getShoppingList:        connect.NewClient[GetShoppingListRequest, GetShoppingListResponse](httpClient, baseURL+ShoppingListServiceGetShoppingListProcedure, opts...),
		createShoppingList:     connect.NewClient[CreateShoppingListRequest, CreateShoppingListResponse](httpClient, baseURL+ShoppingListServiceCreateShoppingListProcedure, opts...),
		deleteShoppingList:     connect.NewClient[DeleteShoppingListRequest, DeleteShoppingListResponse](httpClient, baseURL+ShoppingListServiceDeleteShoppingListProcedure, opts...),
		addRecipe:              connect.NewClient[AddRecipeRequest, AddRecipeResponse](httpClient, baseURL+ShoppingListServiceAddRecipeProcedure, opts...),
		setRequestedServing:    connect.NewClient[SetRequestedServingRequest, SetRequestedServingResponse](httpClient, baseURL+ShoppingListServiceSetRequestedServingProcedure, opts...),
		removeRecipe:           connect.NewClient[RemoveRecipeRequest, RemoveRecipeResponse](httpClient, baseURL+ShoppingListServiceRemoveRecipeProcedure, opts...),
		suggestRecipes:         connect.NewClient[SuggestRecipesRequest, SuggestRecipesResponse](httpClient, baseURL+ShoppingListServiceSuggestRecipesProcedure, opts...),
		generateIngredientList: connect.NewClient[GenerateIngredientListRequest, GenerateIngredientListResponse](httpClient, baseURL+ShoppingListServiceGenerateIngredientListProcedure, opts...),
	}
}

func (c *ShoppingListServiceClient) ListShoppingLists(ctx context.Context, req *connect.Request[ListShoppingListsRequest]) (*connect.Response[ListShoppingListsResponse], error) {
	return c.listShoppingLists.CallUnary(ctx, req)
}

func (c *ShoppingListServiceClient) GetShoppingList(ctx context.Context, req *connect.Request[GetShoppingListRequest]) (*connect.Response[GetShoppingListResponse], error) {
	return c.getShoppingList.CallUnary(ctx, req)
}

func (c *ShoppingListServiceClient) CreateShoppingList(ctx context.Context, req *connect.Request[CreateShoppingListRequest]) (*connect.Response[CreateShoppingListResponse], error) {
	return c.createShoppingList.CallUnary(ctx, req)
}

func (c *ShoppingListServiceClient) DeleteShoppingList(ctx context.Context, req *connect.Request[DeleteShoppingListRequest]) (*connect.Response[DeleteShoppingListResponse], error) {
	return c.deleteShoppingList.CallUnary(ctx, req)
}

func (c *ShoppingListServiceClient) AddRecipe(ctx context.Context, req *connect.Request[AddRecipeRequest]) (*connect.Response[AddRecipeResponse], error) {
	return c.addRecipe.CallUnary(ctx, req)
}

func (c *ShoppingListServiceClient) SetRequestedServing(ctx context.Context, req *connect.Request[SetRequestedServingRequest]) (*connect.Response[SetRequestedServingResponse], error) {
	return c.setRequestedServing.CallUnary(ctx, req)
}

func (c *ShoppingListServiceClient) RemoveRecipe(ctx context.Context, req *connect.Request[RemoveRecipeRequest]) (*connect.Response[RemoveRecipeResponse], error) {
	return c.removeRecipe.CallUnary(ctx, req)
}

func (c *ShoppingListServiceClient) SuggestRecipes(ctx context.Context, req *connect.Request[SuggestRecipesRequest]) (*connect.Response[SuggestRecipesResponse], error) {
	return c.suggestRecipes.CallUnary(ctx, req)
}

func (c *ShoppingListServiceClient) GenerateIngredientList(ctx context.Context, req *connect.Request[GenerateIngredientListRequest]) (*connect.Response[GenerateIngredientListResponse], error) {
	return c.generateIngredientList.CallUnary(ctx, req)
}
