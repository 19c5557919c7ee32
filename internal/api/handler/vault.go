package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jhooc77/gringotts/internal/api/request"
	"github.com/jhooc77/gringotts/internal/api/response"
	"github.com/jhooc77/gringotts/internal/model"
	"github.com/jhooc77/gringotts/internal/services/vault"
)

// VaultHandler handles container vault registration endpoints
type VaultHandler struct {
	vaults *vault.Directory
}

// NewVaultHandler creates a new vault handler
func NewVaultHandler(vaults *vault.Directory) *VaultHandler {
	return &VaultHandler{
		vaults: vaults,
	}
}

// List handles GET /api/v1/accounts/{type}/{id}/vaults
func (h *VaultHandler) List(w http.ResponseWriter, r *http.Request) {
	holder, err := holderFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	records, err := h.vaults.List(r.Context(), holder)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.VaultsFromModel(records))
}

// Register handles POST /api/v1/accounts/{type}/{id}/vaults
func (h *VaultHandler) Register(w http.ResponseWriter, r *http.Request) {
	holder, err := holderFromPath(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.RegisterVaultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Location.World == "" {
		WriteError(w, NewInvalidRequestError("location.world is required"))
		return
	}

	record, err := h.vaults.Register(r.Context(), holder, model.Location{
		World: req.Location.World,
		X:     req.Location.X,
		Y:     req.Location.Y,
		Z:     req.Location.Z,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.VaultFromModel(record))
}

// Unregister handles DELETE /api/v1/vaults/{vault_id}
func (h *VaultHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	id := model.VaultID(mux.Vars(r)["vault_id"])
	if id == "" {
		WriteError(w, NewInvalidRequestError("vault_id is required"))
		return
	}

	if err := h.vaults.Unregister(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
