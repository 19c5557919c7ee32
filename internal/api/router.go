package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jhooc77/gringotts/internal/api/handler"
	apimiddleware "github.com/jhooc77/gringotts/internal/api/middleware"
	"github.com/jhooc77/gringotts/internal/middleware"
	"github.com/jhooc77/gringotts/internal/sched"
	"github.com/jhooc77/gringotts/internal/services/account"
	"github.com/jhooc77/gringotts/internal/services/vault"
	"github.com/jhooc77/gringotts/internal/world"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	Engine       *account.Engine
	Vaults       *vault.Directory
	World        *world.World
	Executor     *sched.Executor
	WorldTimeout time.Duration
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	accountHandler := handler.NewAccountHandler(cfg.Engine)
	vaultHandler := handler.NewVaultHandler(cfg.Vaults)
	worldHandler := handler.NewWorldHandler(cfg.World, cfg.Executor, cfg.WorldTimeout)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Account routes
	accounts := api.PathPrefix("/accounts/{type}/{id}").Subrouter()
	accounts.HandleFunc("", accountHandler.Get).Methods(http.MethodGet)
	accounts.HandleFunc("/balance", accountHandler.Balance).Methods(http.MethodGet)
	accounts.HandleFunc("/deposit", accountHandler.Deposit).Methods(http.MethodPost)
	accounts.HandleFunc("/withdraw", accountHandler.Withdraw).Methods(http.MethodPost)
	accounts.HandleFunc("/transfer", accountHandler.Transfer).Methods(http.MethodPost)

	// Vault routes
	accounts.HandleFunc("/vaults", vaultHandler.List).Methods(http.MethodGet)
	accounts.HandleFunc("/vaults", vaultHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/vaults/{vault_id}", vaultHandler.Unregister).Methods(http.MethodDelete)

	// World administration routes
	api.HandleFunc("/world/players/{player_id}/join", worldHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/world/players/{player_id}/leave", worldHandler.Leave).Methods(http.MethodPost)
	api.HandleFunc("/world/containers", worldHandler.PlaceContainer).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
