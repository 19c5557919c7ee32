package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case BalanceResult:
		o.printBalanceResult(v)
	case AccountResult:
		o.printAccountResult(v)
	case TransactionResult:
		o.printTransactionResult(v)
	case Vault:
		o.printVault(v)
	case []Vault:
		o.printVaults(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// BalanceResult response type
type BalanceResult struct {
	Holder  string `json:"holder"`
	Balance int64  `json:"balance"`
}

// AccountResult response type
type AccountResult struct {
	Holder       string `json:"holder"`
	Balance      int64  `json:"balance"`
	VaultBalance int64  `json:"vault_balance"`
	InvBalance   int64  `json:"inv_balance"`
}

// TransactionResult response type
type TransactionResult struct {
	Result string `json:"result"`
}

// VaultLocation response type
type VaultLocation struct {
	World string `json:"world"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Z     int    `json:"z"`
}

// Vault response type
type Vault struct {
	ID        string        `json:"id"`
	Holder    string        `json:"holder"`
	Location  VaultLocation `json:"location"`
	CreatedAt string        `json:"created_at"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printBalanceResult(b BalanceResult) {
	fmt.Printf("Account: %s\n", b.Holder)
	fmt.Printf("Balance: %d\n", b.Balance)
}

func (o *Output) printAccountResult(a AccountResult) {
	fmt.Printf("Account: %s\n", a.Holder)
	fmt.Printf("Balance: %d\n", a.Balance)
	fmt.Printf("  Vaults: %d\n", a.VaultBalance)
	fmt.Printf("  Inventory + ledger: %d\n", a.InvBalance)
}

func (o *Output) printTransactionResult(t TransactionResult) {
	fmt.Printf("Result: %s\n", t.Result)
}

func (o *Output) printVault(v Vault) {
	fmt.Printf("Vault: %s\n", v.ID)
	fmt.Printf("Holder: %s\n", v.Holder)
	fmt.Printf("Location: %s(%d,%d,%d)\n", v.Location.World, v.Location.X, v.Location.Y, v.Location.Z)
	if v.CreatedAt != "" {
		fmt.Printf("Created: %s\n", v.CreatedAt)
	}
}

func (o *Output) printVaults(vaults []Vault) {
	fmt.Printf("Vaults (%d):\n", len(vaults))
	for _, v := range vaults {
		fmt.Printf("  - %s at %s(%d,%d,%d)\n", v.ID, v.Location.World, v.Location.X, v.Location.Y, v.Location.Z)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
