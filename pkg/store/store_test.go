package store

import (
	"context"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/models"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/seed"
)

func testStore() *Store {
	logger := ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {})
	return New(seed.State(), logger)
}

func TestNewStartsAtInitialState(t *testing.T) {
	s := testStore()
	assert.True(t, s.IsAtInitialState())
	assert.Empty(t, s.ClosedBridges())
}

func TestApplyStockout(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	nodeName, err := s.ApplyStockout(ctx, "r2", "skuA")
	require.NoError(t, err)
	assert.Equal(t, "Retail Paris", nodeName)
	assert.False(t, s.IsAtInitialState())

	snap := s.Snapshot()
	for _, r := range snap.Retails {
		if r.ID != "r2" {
			continue
		}
		for _, item := range r.Inventory {
			if item.SKUID == "skuA" {
				assert.Equal(t, 0, item.Quantity)
			}
		}
	}
}

func TestApplyStockoutAtDistributionCenter(t *testing.T) {
	s := testStore()

	nodeName, err := s.ApplyStockout(context.Background(), "dc1", "skuB")
	require.NoError(t, err)
	assert.Equal(t, "DC Rotterdam", nodeName)
}

func TestApplyStockoutUnknownNode(t *testing.T) {
	s := testStore()

	_, err := s.ApplyStockout(context.Background(), "nope", "skuA")
	require.Error(t, err)
	assert.True(t, httperror.IsHTTPError(err))
	assert.Equal(t, 404, httperror.GetStatusCode(err))
	assert.Contains(t, err.Error(), "node 'nope' not found")
	assert.True(t, s.IsAtInitialState())
}

func TestApplyStockoutUnknownSKU(t *testing.T) {
	s := testStore()

	_, err := s.ApplyStockout(context.Background(), "r2", "skuZ")
	require.Error(t, err)
	assert.Equal(t, 404, httperror.GetStatusCode(err))
	assert.Contains(t, err.Error(), "SKU 'skuZ' not found at node 'r2'")
	assert.True(t, s.IsAtInitialState())
}

func TestApplyRouteClosure(t *testing.T) {
	s := testStore()

	route, err := s.ApplyRouteClosure(context.Background(), "r-dc1-r1")
	require.NoError(t, err)
	assert.Equal(t, models.RouteStatusClosed, route.Status)
	assert.Equal(t, "dc1", route.From)
	assert.Equal(t, "r1", route.To)
	assert.False(t, s.IsAtInitialState())

	// Closing an already-closed route succeeds.
	_, err = s.ApplyRouteClosure(context.Background(), "r-dc1-r1")
	require.NoError(t, err)
}

func TestApplyRouteClosureUnknownRoute(t *testing.T) {
	s := testStore()

	_, err := s.ApplyRouteClosure(context.Background(), "r-x-y")
	require.Error(t, err)
	assert.Equal(t, 404, httperror.GetStatusCode(err))
	assert.True(t, s.IsAtInitialState())
}

func TestApplyBridgeClosureIsIdempotent(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	s.ApplyBridgeClosure(ctx, "bridge-1")
	s.ApplyBridgeClosure(ctx, "bridge-2")
	s.ApplyBridgeClosure(ctx, "bridge-1")

	assert.Equal(t, []string{"bridge-1", "bridge-2"}, s.ClosedBridges())

	// Bridges live outside the state aggregate, so the state itself is
	// still pristine.
	assert.True(t, s.IsAtInitialState())
}

func TestReset(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	_, err := s.ApplyStockout(ctx, "r2", "skuA")
	require.NoError(t, err)
	_, err = s.ApplyRouteClosure(ctx, "r-f1-dc1")
	require.NoError(t, err)
	s.ApplyBridgeClosure(ctx, "bridge-1")
	require.False(t, s.IsAtInitialState())

	s.Reset(ctx)

	assert.True(t, s.IsAtInitialState())
	assert.Empty(t, s.ClosedBridges())

	snap := s.Snapshot()
	for _, r := range snap.Routes {
		assert.Equal(t, models.RouteStatusOpen, r.Status)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	s := testStore()
	ctx := context.Background()

	s.Reset(ctx)
	s.Reset(ctx)

	assert.True(t, s.IsAtInitialState())
}

func TestSnapshotIsACopy(t *testing.T) {
	s := testStore()

	snap := s.Snapshot()
	snap.Retails[0].Inventory[1].Quantity = 99999
	snap.Routes[0].Status = models.RouteStatusClosed

	assert.True(t, s.IsAtInitialState())
}

func TestClosedBridgesIsACopy(t *testing.T) {
	s := testStore()
	s.ApplyBridgeClosure(context.Background(), "bridge-1")

	bridges := s.ClosedBridges()
	bridges[0] = "tampered"

	assert.Equal(t, []string{"bridge-1"}, s.ClosedBridges())
}
