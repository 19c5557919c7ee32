package model

// TransactionResult is the closed outcome set of a mutating account
// operation. Infrastructure failures are reported separately as errors,
// never as a TransactionResult.
type TransactionResult int

const (
	ResultSuccess TransactionResult = iota
	ResultInsufficientFunds
	ResultInsufficientSpace
	ResultError
)

func (r TransactionResult) String() string {
	switch r {
	case ResultSuccess:
		return "SUCCESS"
	case ResultInsufficientFunds:
		return "INSUFFICIENT_FUNDS"
	case ResultInsufficientSpace:
		return "INSUFFICIENT_SPACE"
	case ResultError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
