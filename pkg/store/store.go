// Package store owns the single mutable supply chain state, the
// closed-bridges set, and the immutable snapshot captured at startup for
// reset semantics. All access is serialized behind one mutex; reads hand
// out deep copies so detection and the reasoning call never race a
// mutation.
package store

import (
	"context"
	"encoding/json"
	"net/http"
	"reflect"
	"sync"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/models"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/tracing"
)

// Store holds the live supply chain state and its initial snapshot
type Store struct {
	mu            sync.RWMutex
	live          *models.SupplyChainState
	initial       *models.SupplyChainState
	closedBridges []string
	logger        ectologger.Logger
}

// New creates a store seeded with the given state. The seed is deep-copied
// twice: once for the live state and once for the immutable initial
// snapshot, so later mutations can never reach the snapshot through shared
// slices or maps.
func New(seed *models.SupplyChainState, logger ectologger.Logger) *Store {
	return &Store{
		live:          cloneState(seed),
		initial:       cloneState(seed),
		closedBridges: []string{},
		logger:        logger,
	}
}

// Snapshot returns a deep copy of the live state. Callers may hold it
// across blocking work (detection, the upstream reasoning call) without
// holding any lock.
func (s *Store) Snapshot() *models.SupplyChainState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneState(s.live)
}

// ClosedBridges returns the closed bridge ids in insertion order
func (s *Store) ClosedBridges() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bridges := make([]string, len(s.closedBridges))
	copy(bridges, s.closedBridges)
	return bridges
}

// ApplyStockout zeroes the inventory record for the given SKU at the given
// node and returns the node's display name. The node is looked up across
// factories, then distribution centers, then retails; node ids are globally
// unique so the ordering only matters for determinism.
func (s *Store) ApplyStockout(ctx context.Context, nodeID, skuID string) (string, error) {
	_, span := tracing.StartSpan(ctx, "store.ApplyStockout")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	inventory, nodeName, found := s.findNodeInventory(nodeID)
	if !found {
		return "", httperror.NewHTTPErrorf(http.StatusNotFound, "node '%s' not found", nodeID)
	}

	for i := range inventory {
		if inventory[i].SKUID == skuID {
			inventory[i].Quantity = 0
			return nodeName, nil
		}
	}

	return "", httperror.NewHTTPErrorf(http.StatusNotFound, "SKU '%s' not found at node '%s'", skuID, nodeID)
}

// ApplyRouteClosure marks the route closed and returns a copy of it.
// Closing an already-closed route succeeds silently.
func (s *Store) ApplyRouteClosure(ctx context.Context, routeID string) (models.Route, error) {
	_, span := tracing.StartSpan(ctx, "store.ApplyRouteClosure")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.live.Routes {
		if s.live.Routes[i].ID == routeID {
			s.live.Routes[i].Status = models.RouteStatusClosed
			return s.live.Routes[i], nil
		}
	}

	return models.Route{}, httperror.NewHTTPErrorf(http.StatusNotFound, "route '%s' not found", routeID)
}

// ApplyBridgeClosure adds the bridge to the closed set. Set semantics:
// closing the same bridge twice is a no-op.
func (s *Store) ApplyBridgeClosure(ctx context.Context, bridgeID string) {
	_, span := tracing.StartSpan(ctx, "store.ApplyBridgeClosure")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.closedBridges {
		if id == bridgeID {
			return
		}
	}
	s.closedBridges = append(s.closedBridges, bridgeID)
}

// Reset replaces the live state with a deep copy of the initial snapshot
// and clears the closed-bridges set. Repeated calls always converge to the
// same state.
func (s *Store) Reset(ctx context.Context) {
	_, span := tracing.StartSpan(ctx, "store.Reset")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.live = cloneState(s.initial)
	s.closedBridges = []string{}

	s.logger.WithContext(ctx).Info("Supply chain state reset to initial snapshot")
}

// IsAtInitialState reports whether the live state deep-equals the initial
// snapshot. The closed-bridges set is tracked outside the state aggregate
// and does not participate in the comparison.
func (s *Store) IsAtInitialState() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return reflect.DeepEqual(s.live, s.initial)
}

// findNodeInventory locates a node's inventory slice and display name by
// node id. Must be called with the lock held.
func (s *Store) findNodeInventory(nodeID string) ([]models.InventoryRecord, string, bool) {
	for i := range s.live.Factories {
		if s.live.Factories[i].ID == nodeID {
			return s.live.Factories[i].Inventory, s.live.Factories[i].Name, true
		}
	}
	for i := range s.live.DistributionCenters {
		if s.live.DistributionCenters[i].ID == nodeID {
			return s.live.DistributionCenters[i].Inventory, s.live.DistributionCenters[i].Name, true
		}
	}
	for i := range s.live.Retails {
		if s.live.Retails[i].ID == nodeID {
			return s.live.Retails[i].Inventory, s.live.Retails[i].Name, true
		}
	}
	return nil, "", false
}

// cloneState deep-copies a state via a JSON round trip. The model is plain
// data so the round trip is lossless.
func cloneState(state *models.SupplyChainState) *models.SupplyChainState {
	b, _ := json.Marshal(state)
	var out models.SupplyChainState
	_ = json.Unmarshal(b, &out)
	return &out
}
