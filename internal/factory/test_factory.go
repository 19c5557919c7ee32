package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/jhooc77/gringotts/internal/config"
	"github.com/jhooc77/gringotts/internal/dependencies/mocks"
	"github.com/jhooc77/gringotts/internal/model"
	"github.com/jhooc77/gringotts/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing: memory storage, mocked
// clock and random, and the two-denomination test currency
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(config.DefaultConfig())
}

// NewTestAppWithConfig creates a test App with a specific configuration
func NewTestAppWithConfig(cfg config.Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(cfg, TestCurrency(), store, mockClock, mockRandom, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestCurrency returns a currency with denominations of value 64 and 1,
// matching the classic emerald economy
func TestCurrency() *model.Currency {
	currency, err := model.NewCurrency("emerald", "emeralds", 2, []model.Denomination{
		{Key: "emerald_block", Value: 64, UnitName: "block", StackSize: 64},
		{Key: "emerald", Value: 1, UnitName: "emerald", StackSize: 64},
	})
	if err != nil {
		panic(err)
	}
	return currency
}
