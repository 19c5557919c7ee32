package account

import (
	"context"
	"log/slog"

	"github.com/jhooc77/gringotts/internal/model"
)

// TaxFunc computes the tax, in cents, charged to the sender on top of a
// transfer amount
type TaxFunc func(amount int64) int64

// Transfer moves an amount from one account to another. The sender is
// debited amount plus tax; the receiver is credited amount. If the credit
// fails as a business outcome the debit is paid back; the two mutations are
// separately scheduled, so the pair is not atomic against other writers.
func (e *Engine) Transfer(ctx context.Context, from, to model.AccountHolder, amount int64, tax TaxFunc) (model.TransactionResult, error) {
	if amount < 0 {
		return model.ResultError, nil
	}

	total := amount
	if tax != nil {
		total += tax(amount)
	}

	res, err := e.Remove(ctx, from, total)
	if err != nil || res != model.ResultSuccess {
		return res, err
	}

	res, err = e.Add(ctx, to, amount)
	if err != nil {
		return model.ResultError, err
	}
	if res != model.ResultSuccess {
		// Receiver could not take the credit; return the debit to the
		// sender. A failure here leaves the sender short and is fatal.
		if _, rerr := e.Add(ctx, from, total); rerr != nil {
			return model.ResultError, rerr
		}
		return res, nil
	}

	e.logger.Info("transfer completed",
		slog.String("from", from.String()),
		slog.String("to", to.String()),
		slog.Int64("amount", amount),
		slog.Int64("charged", total),
	)
	return model.ResultSuccess, nil
}
