package request

// AmountRequest is the request body for deposits and withdrawals
type AmountRequest struct {
	Amount int64 `json:"amount"`
}

// TransferRequest is the request body for transferring between accounts
type TransferRequest struct {
	ToType string `json:"to_type"`
	ToID   string `json:"to_id"`
	Amount int64  `json:"amount"`
}

// LocationRequest identifies a block location in a world
type LocationRequest struct {
	World string `json:"world"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
}

// RegisterVaultRequest is the request body for registering a container vault
type RegisterVaultRequest struct {
	Location LocationRequest `json:"location"`
}

// JoinRequest is the request body for bringing a player online
type JoinRequest struct {
	Location LocationRequest `json:"location"`
}

// PlaceContainerRequest is the request body for placing a container block
type PlaceContainerRequest struct {
	Location LocationRequest `json:"location"`
}
