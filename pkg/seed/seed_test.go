package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/models"
)

func TestStateShape(t *testing.T) {
	state := State()

	assert.Len(t, state.SKUs, 3)
	assert.Len(t, state.Factories, 2)
	assert.Len(t, state.DistributionCenters, 3)
	assert.Len(t, state.Retails, 4)
	assert.Len(t, state.Routes, 17)
	require.NotEmpty(t, state.Orders)
	require.NotEmpty(t, state.Events)
}

func TestStateNodeIDsAreUnique(t *testing.T) {
	state := State()

	seen := map[string]bool{}
	record := func(id string) {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	for _, f := range state.Factories {
		record(f.ID)
	}
	for _, dc := range state.DistributionCenters {
		record(dc.ID)
	}
	for _, r := range state.Retails {
		record(r.ID)
	}
	for _, r := range state.Routes {
		record(r.ID)
	}
}

func TestStateRoutesStartOpen(t *testing.T) {
	for _, r := range State().Routes {
		assert.Equal(t, models.RouteStatusOpen, r.Status)
	}
}

func TestStateRouteEndpointsExist(t *testing.T) {
	state := State()

	nodes := map[string]bool{}
	for _, f := range state.Factories {
		nodes[f.ID] = true
	}
	for _, dc := range state.DistributionCenters {
		nodes[dc.ID] = true
	}
	for _, r := range state.Retails {
		nodes[r.ID] = true
	}

	for _, r := range state.Routes {
		assert.True(t, nodes[r.From], "route %s references unknown node %s", r.ID, r.From)
		assert.True(t, nodes[r.To], "route %s references unknown node %s", r.ID, r.To)
	}
}

func TestStateReferencedSKUsExist(t *testing.T) {
	state := State()

	skus := map[string]bool{}
	for _, s := range state.SKUs {
		skus[s.ID] = true
	}

	for _, f := range state.Factories {
		for _, item := range f.Inventory {
			assert.True(t, skus[item.SKUID])
		}
		for id := range f.ProductionRates {
			assert.True(t, skus[id])
		}
	}
	for _, r := range state.Retails {
		for id := range r.Demand {
			assert.True(t, skus[id])
		}
	}
}
