package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhooc77/gringotts/internal/api"
	"github.com/jhooc77/gringotts/internal/api/response"
	"github.com/jhooc77/gringotts/internal/factory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app := factory.NewTestApp()
	t.Cleanup(app.Close)

	router := api.NewRouter(api.RouterConfig{
		Logger:       logger,
		Engine:       app.Engine,
		Vaults:       app.Vaults,
		World:        app.World,
		Executor:     app.Executor,
		WorldTimeout: time.Second,
	})

	return &testServer{
		handler: router,
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func location(x int) map[string]any {
	return map[string]any{"world": "world", "x": x, "y": 64, "z": 0}
}

// placeVault places a container and registers it as the holder's vault
func (ts *testServer) placeVault(t *testing.T, holderPath string, x int) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/world/containers", map[string]any{"location": location(x)})
	require.Equal(t, http.StatusCreated, rr.Code)

	ts.app.MockRandom.QueueString(fmt.Sprintf("vault-%d", x))
	rr = ts.request(http.MethodPost, holderPath+"/vaults", map[string]any{"location": location(x)})
	require.Equal(t, http.StatusCreated, rr.Code)

	var vault response.VaultResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &vault))
	return vault.ID
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestBalanceEmptyAccount(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/accounts/player/alice/balance", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.BalanceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "player:alice", resp.Holder)
	assert.Equal(t, int64(0), resp.Balance)
}

func TestInvalidHolderType(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/accounts/guild/alice/balance", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_HOLDER")
}

func TestDepositAndWithdrawFlow(t *testing.T) {
	ts := newTestServer(t)
	ts.placeVault(t, "/api/v1/accounts/player/alice", 1)

	// Deposit
	rr := ts.request(http.MethodPost, "/api/v1/accounts/player/alice/deposit", map[string]int64{"amount": 150})
	assert.Equal(t, http.StatusOK, rr.Code)

	var txResp response.TransactionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &txResp))
	assert.Equal(t, "SUCCESS", txResp.Result)

	// Balance reflects the deposit
	rr = ts.request(http.MethodGet, "/api/v1/accounts/player/alice/balance", nil)
	var balResp response.BalanceResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balResp))
	assert.Equal(t, int64(150), balResp.Balance)

	// Withdraw it all
	rr = ts.request(http.MethodPost, "/api/v1/accounts/player/alice/withdraw", map[string]int64{"amount": 150})
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/accounts/player/alice/balance", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balResp))
	assert.Equal(t, int64(0), balResp.Balance)
}

func TestDepositWithoutBackendsIsConflict(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/accounts/player/alice/deposit", map[string]int64{"amount": 100})
	assert.Equal(t, http.StatusConflict, rr.Code)

	var txResp response.TransactionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &txResp))
	assert.Equal(t, "INSUFFICIENT_SPACE", txResp.Result)
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	ts := newTestServer(t)
	ts.placeVault(t, "/api/v1/accounts/player/alice", 1)

	rr := ts.request(http.MethodPost, "/api/v1/accounts/player/alice/withdraw", map[string]int64{"amount": 100})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "INSUFFICIENT_FUNDS")
}

func TestNegativeAmountIsBadRequest(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/accounts/player/alice/deposit", map[string]int64{"amount": -5})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "ERROR")
}

func TestTransfer(t *testing.T) {
	ts := newTestServer(t)
	ts.placeVault(t, "/api/v1/accounts/player/alice", 1)
	ts.placeVault(t, "/api/v1/accounts/player/bob", 2)

	rr := ts.request(http.MethodPost, "/api/v1/accounts/player/alice/deposit", map[string]int64{"amount": 200})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/accounts/player/alice/transfer", map[string]any{
		"to_type": "player",
		"to_id":   "bob",
		"amount":  150,
	})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "SUCCESS")

	var balResp response.BalanceResponse
	rr = ts.request(http.MethodGet, "/api/v1/accounts/player/alice/balance", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balResp))
	assert.Equal(t, int64(50), balResp.Balance)

	rr = ts.request(http.MethodGet, "/api/v1/accounts/player/bob/balance", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balResp))
	assert.Equal(t, int64(150), balResp.Balance)
}

func TestVaultLifecycle(t *testing.T) {
	ts := newTestServer(t)
	vaultID := ts.placeVault(t, "/api/v1/accounts/player/alice", 1)

	// List
	rr := ts.request(http.MethodGet, "/api/v1/accounts/player/alice/vaults", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var vaults []response.VaultResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &vaults))
	require.Len(t, vaults, 1)
	assert.Equal(t, vaultID, vaults[0].ID)

	// Registering the same location again conflicts
	ts.app.MockRandom.QueueString("vault-dup")
	rr = ts.request(http.MethodPost, "/api/v1/accounts/player/alice/vaults", map[string]any{"location": location(1)})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "VAULT_EXISTS")

	// Unregister
	rr = ts.request(http.MethodDelete, "/api/v1/vaults/"+vaultID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/accounts/player/alice/vaults", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &vaults))
	assert.Empty(t, vaults)
}

func TestRegisterVaultWithoutContainer(t *testing.T) {
	ts := newTestServer(t)

	ts.app.MockRandom.QueueString("vault-1")
	rr := ts.request(http.MethodPost, "/api/v1/accounts/player/alice/vaults", map[string]any{"location": location(9)})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "CONTAINER_NOT_FOUND")
}

func TestPlayerSessionFlow(t *testing.T) {
	ts := newTestServer(t)

	// Bring alice online; her inventory becomes a backend
	rr := ts.request(http.MethodPost, "/api/v1/world/players/alice/join", map[string]any{"location": location(0)})
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/accounts/player/alice/deposit", map[string]int64{"amount": 100})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "SUCCESS")

	// Leaving discards the session inventory
	rr = ts.request(http.MethodPost, "/api/v1/world/players/alice/leave", nil)
	require.Equal(t, http.StatusNoContent, rr.Code)

	var balResp response.BalanceResponse
	rr = ts.request(http.MethodGet, "/api/v1/accounts/player/alice/balance", nil)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &balResp))
	assert.Equal(t, int64(0), balResp.Balance)
}

func TestAccountDetail(t *testing.T) {
	ts := newTestServer(t)
	ts.placeVault(t, "/api/v1/accounts/player/alice", 1)

	rr := ts.request(http.MethodPost, "/api/v1/accounts/player/alice/deposit", map[string]int64{"amount": 64})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/accounts/player/alice", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.AccountResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(64), resp.Balance)
	assert.Equal(t, int64(64), resp.VaultBalance)
	assert.Equal(t, int64(0), resp.InvBalance)
}
