package service

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/recipelist/internal/api"
	"github.com/mmynk/recipelist/internal/auth"
	"github.com/mmynk/recipelist/internal/metrics"
	"github.com/mmynk/recipelist/internal/middleware"
	"github.com/mmynk/recipelist/internal/repository"
	"github.com/mmynk/recipelist/internal/storage"
	"github.com/mmynk/recipelist/internal/storage/sqlite"
)

type testClients struct {
	recipes       *api.RecipeServiceClient
	shoppingLists *api.ShoppingListServiceClient
	ingredients   *api.IngredientServiceClient
	auth          *api.AuthServiceClient

	store   storage.Store
	repos   *repository.Repositories
	metrics *metrics.Metrics
}

// setupTestServer creates a test server with every service backed by a temp sqlite database.
// When passcode is not empty the data services require a token from AuthService.Unlock.
func setupTestServer(t *testing.T, passcode string) (*testClients, func()) {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	m := metrics.New()
	repos := repository.New(m.InstrumentStore(store))

	var jwtManager *auth.JWTManager
	mux := http.NewServeMux()

	if passcode != "" {
		hash, err := auth.HashPasscode(passcode)
		if err != nil {
			t.Fatalf("failed to hash passcode: %v", err)
		}
		authenticator, err := auth.NewPasscodeAuthenticator(hash)
		if err != nil {
			t.Fatalf("failed to create authenticator: %v", err)
		}
		jwtManager = auth.NewJWTManager("test-secret", time.Hour)

		authPath, authHandler := api.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, slog.Default()))
		mux.Handle(authPath, authHandler)
	}
	opts := connect.WithInterceptors(middleware.Interceptors(m, jwtManager)...)

	recipePath, recipeHandler := api.NewRecipeServiceHandler(NewRecipeService(repos), opts)
	mux.Handle(recipePath, recipeHandler)

	listPath, listHandler := api.NewShoppingListServiceHandler(NewShoppingListService(repos, m), opts)
	mux.Handle(listPath, listHandler)

	ingredientPath, ingredientHandler := api.NewIngredientServiceHandler(NewIngredientService(repos), opts)
	mux.Handle(ingredientPath, ingredientHandler)

	server := httptest.NewServer(mux)

	clients := &testClients{
		recipes:       api.NewRecipeServiceClient(http.DefaultClient, server.URL),
		shoppingLists: api.NewShoppingListServiceClient(http.DefaultClient, server.URL),
		ingredients:   api.NewIngredientServiceClient(http.DefaultClient, server.URL),
		auth:          api.NewAuthServiceClient(http.DefaultClient, server.URL),
		store:         store,
		repos:         repos,
		metrics:       m,
	}

	cleanup := func() {
		server.Close()
		repos.Close()
		store.Close()
	}

	return clients, cleanup
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}
