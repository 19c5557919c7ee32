package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jhooc77/gringotts/internal/api/request"
	"github.com/jhooc77/gringotts/internal/api/response"
	"github.com/jhooc77/gringotts/internal/model"
	"github.com/jhooc77/gringotts/internal/services/account"
)

// AccountHandler handles account balance and transaction endpoints
type AccountHandler struct {
	engine *account.Engine
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(engine *account.Engine) *AccountHandler {
	return &AccountHandler{
		engine: engine,
	}
}

// Get handles GET /api/v1/accounts/{type}/{id}
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	holder, err := holderFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.engine.EnsureAccount(r.Context(), holder); err != nil {
		WriteError(w, err)
		return
	}

	balance, err := h.engine.Balance(r.Context(), holder)
	if err != nil {
		WriteError(w, err)
		return
	}
	vaultBalance, err := h.engine.VaultBalance(r.Context(), holder)
	if err != nil {
		WriteError(w, err)
		return
	}
	invBalance, err := h.engine.InvBalance(r.Context(), holder)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AccountResponse{
		Holder:       holder.String(),
		Balance:      balance,
		VaultBalance: vaultBalance,
		InvBalance:   invBalance,
	})
}

// Balance handles GET /api/v1/accounts/{type}/{id}/balance
func (h *AccountHandler) Balance(w http.ResponseWriter, r *http.Request) {
	holder, err := holderFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	balance, err := h.engine.Balance(r.Context(), holder)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BalanceResponse{
		Holder:  holder.String(),
		Balance: balance,
	})
}

// Deposit handles POST /api/v1/accounts/{type}/{id}/deposit
func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	holder, err := holderFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.engine.EnsureAccount(r.Context(), holder); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.engine.Add(r.Context(), holder, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeResult(w, result)
}

// Withdraw handles POST /api/v1/accounts/{type}/{id}/withdraw
func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	holder, err := holderFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if err := h.engine.EnsureAccount(r.Context(), holder); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.engine.Remove(r.Context(), holder, req.Amount)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeResult(w, result)
}

// Transfer handles POST /api/v1/accounts/{type}/{id}/transfer
func (h *AccountHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	from, err := holderFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	toType := model.HolderType(req.ToType)
	if !model.ValidHolderType(toType) || req.ToID == "" {
		WriteError(w, model.ErrInvalidHolder)
		return
	}
	to := model.AccountHolder{Type: toType, ID: req.ToID}

	if err := h.engine.EnsureAccount(r.Context(), from); err != nil {
		WriteError(w, err)
		return
	}
	if err := h.engine.EnsureAccount(r.Context(), to); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.engine.Transfer(r.Context(), from, to, req.Amount, nil)
	if err != nil {
		WriteError(w, err)
		return
	}

	writeResult(w, result)
}

// writeResult maps a transaction result onto an HTTP status
func writeResult(w http.ResponseWriter, result model.TransactionResult) {
	status := http.StatusOK
	switch result {
	case model.ResultInsufficientFunds, model.ResultInsufficientSpace:
		status = http.StatusConflict
	case model.ResultError:
		status = http.StatusBadRequest
	}
	response.JSON(w, status, response.TransactionFromResult(result))
}
