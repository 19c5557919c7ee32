package response

import (
	"time"

	"github.com/jhooc77/gringotts/internal/model"
)

// BalanceResponse is the response body for balance queries
type BalanceResponse struct {
	Holder  string `json:"holder"`
	Balance int64  `json:"balance"`
}

// AccountResponse is the response body for account detail queries
type AccountResponse struct {
	Holder       string `json:"holder"`
	Balance      int64  `json:"balance"`
	VaultBalance int64  `json:"vault_balance"`
	InvBalance   int64  `json:"inv_balance"`
}

// TransactionResponse is the response body for deposits, withdrawals and
// transfers
type TransactionResponse struct {
	Result string `json:"result"`
}

// LocationResponse identifies a block location in a world
type LocationResponse struct {
	World string `json:"world"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
}

// VaultResponse is the response body for a vault registration
type VaultResponse struct {
	ID        string           `json:"id"`
	Holder    string           `json:"holder"`
	Location  LocationResponse `json:"location"`
	CreatedAt time.Time        `json:"created_at"`
}

// VaultFromModel converts a vault record to its response form
func VaultFromModel(record *model.VaultRecord) VaultResponse {
	return VaultResponse{
		ID:     string(record.ID),
		Holder: record.Holder.String(),
		Location: LocationResponse{
			World: record.Location.World,
			X:     record.Location.X,
			Y:     record.Location.Y,
			Z:     record.Location.Z,
		},
		CreatedAt: record.CreatedAt,
	}
}

// VaultsFromModel converts a list of vault records to their response form
func VaultsFromModel(records []*model.VaultRecord) []VaultResponse {
	out := make([]VaultResponse, 0, len(records))
	for _, record := range records {
		out = append(out, VaultFromModel(record))
	}
	return out
}

// TransactionFromResult converts an engine result to its response form
func TransactionFromResult(result model.TransactionResult) TransactionResponse {
	return TransactionResponse{Result: result.String()}
}
