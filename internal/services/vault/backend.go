// Package vault provides the physical storage backends an account's balance
// lives in: registered world containers, the owner's inventory and their
// ender chest. All backends speak smallest-unit integers.
package vault

// Backend is a bounded-capacity store of denomination items bound to one
// account. Implementations are views over world inventories and must only
// be used on the designated goroutine.
type Backend interface {
	// Add stores up to amount, constrained by available space, and returns
	// the value actually absorbed.
	Add(amount int64) int64

	// Remove takes up to amount out of the backend and returns the value
	// actually removed. When exact change is not representable in the
	// backend's denominations, the removed value may exceed amount; the
	// caller is expected to refund the difference.
	Remove(amount int64) int64

	// Balance returns the backend's current value
	Balance() int64
}
