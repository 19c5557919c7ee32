package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/jhooc77/gringotts/internal/model"
	"github.com/jhooc77/gringotts/internal/sched"
	"github.com/jhooc77/gringotts/internal/world"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) TearDownTest() {
	s.app.Close()
}

func (s *IntegrationSuite) onLoop(fn func()) {
	f := sched.Run(s.app.Executor, s.ctx, func(_ context.Context) (struct{}, error) {
		fn()
		return struct{}{}, nil
	})
	_, err := f.Wait(time.Second)
	s.Require().NoError(err)
}

// Test: Full economy flow through the wired application
func (s *IntegrationSuite) TestEconomyFlow() {
	alice := model.PlayerHolder("alice")
	bob := model.PlayerHolder("bob")

	// Step 1: Place containers and register them as vaults
	aliceLoc := model.Location{World: "world", X: 1}
	bobLoc := model.Location{World: "world", X: 2}
	s.onLoop(func() {
		s.app.World.PlaceContainer(aliceLoc, world.ContainerSize)
		s.app.World.PlaceContainer(bobLoc, world.ContainerSize)
	})

	s.app.MockRandom.QueueString("vault-alice", "vault-bob")
	_, err := s.app.Vaults.Register(s.ctx, alice, aliceLoc)
	s.Require().NoError(err)
	_, err = s.app.Vaults.Register(s.ctx, bob, bobLoc)
	s.Require().NoError(err)

	// Step 2: Fund alice
	res, err := s.app.Engine.Add(s.ctx, alice, 200)
	s.Require().NoError(err)
	s.Equal(model.ResultSuccess, res)

	// Step 3: Pay bob
	res, err = s.app.Engine.Transfer(s.ctx, alice, bob, 150, nil)
	s.Require().NoError(err)
	s.Equal(model.ResultSuccess, res)

	// Step 4: Balances line up
	aliceBalance, err := s.app.Engine.Balance(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(int64(50), aliceBalance)

	bobBalance, err := s.app.Engine.Balance(s.ctx, bob)
	s.Require().NoError(err)
	s.Equal(int64(150), bobBalance)
}

func (s *IntegrationSuite) TestTransferRollsBackWhenReceiverHasNoSpace() {
	alice := model.PlayerHolder("alice")
	bob := model.PlayerHolder("bob")

	aliceLoc := model.Location{World: "world", X: 1}
	s.onLoop(func() {
		s.app.World.PlaceContainer(aliceLoc, world.ContainerSize)
	})
	s.app.MockRandom.QueueString("vault-alice")
	_, err := s.app.Vaults.Register(s.ctx, alice, aliceLoc)
	s.Require().NoError(err)

	res, err := s.app.Engine.Add(s.ctx, alice, 200)
	s.Require().NoError(err)
	s.Equal(model.ResultSuccess, res)

	// Bob has no backends at all; the credit fails and the debit is
	// returned
	res, err = s.app.Engine.Transfer(s.ctx, alice, bob, 100, nil)
	s.Require().NoError(err)
	s.Equal(model.ResultInsufficientSpace, res)

	aliceBalance, err := s.app.Engine.Balance(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(int64(200), aliceBalance)
}

func (s *IntegrationSuite) TestTransferWithTax() {
	alice := model.PlayerHolder("alice")
	bob := model.PlayerHolder("bob")

	aliceLoc := model.Location{World: "world", X: 1}
	bobLoc := model.Location{World: "world", X: 2}
	s.onLoop(func() {
		s.app.World.PlaceContainer(aliceLoc, world.ContainerSize)
		s.app.World.PlaceContainer(bobLoc, world.ContainerSize)
	})
	s.app.MockRandom.QueueString("vault-alice", "vault-bob")
	_, err := s.app.Vaults.Register(s.ctx, alice, aliceLoc)
	s.Require().NoError(err)
	_, err = s.app.Vaults.Register(s.ctx, bob, bobLoc)
	s.Require().NoError(err)

	res, err := s.app.Engine.Add(s.ctx, alice, 200)
	s.Require().NoError(err)
	s.Equal(model.ResultSuccess, res)

	tenPercent := func(amount int64) int64 { return amount / 10 }
	res, err = s.app.Engine.Transfer(s.ctx, alice, bob, 100, tenPercent)
	s.Require().NoError(err)
	s.Equal(model.ResultSuccess, res)

	// Alice paid 100 plus 10 tax; bob received 100
	aliceBalance, err := s.app.Engine.Balance(s.ctx, alice)
	s.Require().NoError(err)
	s.Equal(int64(90), aliceBalance)

	bobBalance, err := s.app.Engine.Balance(s.ctx, bob)
	s.Require().NoError(err)
	s.Equal(int64(100), bobBalance)
}
