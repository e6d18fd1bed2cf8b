// Package detector derives the disruption list from a supply chain state.
// Detect is a pure function: it never mutates its inputs and always returns
// the same list in the same order for the same inputs.
package detector

import (
	"sort"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/models"
)

// ProductionTimeThreshold is the per-unit production time above which a
// factory/SKU pair is flagged as too slow.
const ProductionTimeThreshold = 5.0

// Detect runs the six disruption scans in fixed order: stockouts,
// demand-exceeds-inventory, production-rate-insufficient,
// production-time-too-high, closed routes, closed bridges. Within each scan
// slice-backed collections iterate in stored order; map-backed collections
// (demand, production rates and times) iterate in ascending SKU id order so
// the output is deterministic.
func Detect(state *models.SupplyChainState, closedBridges []string) []models.Disruption {
	disruptions := []models.Disruption{}

	// Stockouts across every node type, factories first.
	for _, f := range state.Factories {
		disruptions = append(disruptions, stockouts(f.ID, f.Name, f.Inventory)...)
	}
	for _, dc := range state.DistributionCenters {
		disruptions = append(disruptions, stockouts(dc.ID, dc.Name, dc.Inventory)...)
	}
	for _, r := range state.Retails {
		disruptions = append(disruptions, stockouts(r.ID, r.Name, r.Inventory)...)
	}

	// Retail demand exceeding on-hand inventory. A demanded SKU with no
	// inventory record is skipped, not reported.
	for _, r := range state.Retails {
		for _, skuID := range sortedKeys(r.Demand) {
			demand := r.Demand[skuID]
			inv, ok := findInventory(r.Inventory, skuID)
			if !ok {
				continue
			}
			if demand > float64(inv.Quantity) {
				d := demand
				q := inv.Quantity
				disruptions = append(disruptions, models.Disruption{
					Type:      models.DisruptionDemandExceedsInventory,
					NodeID:    r.ID,
					NodeName:  r.Name,
					SKU:       skuID,
					Demand:    &d,
					Inventory: &q,
				})
			}
		}
	}

	// Factory production rate below total retail demand. Deliberately
	// per-factory: a factory is flagged even when a sibling factory's output
	// would cover the gap.
	for _, f := range state.Factories {
		for _, skuID := range sortedKeys(f.ProductionRates) {
			rate := f.ProductionRates[skuID]
			totalDemand := 0.0
			for _, r := range state.Retails {
				totalDemand += r.Demand[skuID]
			}
			if rate < totalDemand {
				pr := rate
				td := totalDemand
				disruptions = append(disruptions, models.Disruption{
					Type:           models.DisruptionProductionRateInsufficient,
					NodeID:         f.ID,
					NodeName:       f.Name,
					SKU:            skuID,
					ProductionRate: &pr,
					TotalDemand:    &td,
				})
			}
		}
	}

	// Factory production time over the fixed threshold.
	for _, f := range state.Factories {
		for _, skuID := range sortedKeys(f.ProductionTimes) {
			prodTime := f.ProductionTimes[skuID]
			if prodTime > ProductionTimeThreshold {
				pt := prodTime
				threshold := ProductionTimeThreshold
				disruptions = append(disruptions, models.Disruption{
					Type:           models.DisruptionProductionTimeTooHigh,
					NodeID:         f.ID,
					NodeName:       f.Name,
					SKU:            skuID,
					ProductionTime: &pt,
					Threshold:      &threshold,
				})
			}
		}
	}

	// Closed routes in stored order.
	for _, route := range state.Routes {
		if route.Status == models.RouteStatusClosed {
			disruptions = append(disruptions, models.Disruption{
				Type:    models.DisruptionRouteClosed,
				RouteID: route.ID,
				From:    route.From,
				To:      route.To,
			})
		}
	}

	// Closed bridges in insertion order.
	for _, bridgeID := range closedBridges {
		disruptions = append(disruptions, models.Disruption{
			Type:     models.DisruptionBridgeClosed,
			BridgeID: bridgeID,
		})
	}

	return disruptions
}

// stockouts reports every inventory record at exactly zero. It does not
// distinguish "always was zero" from "just disrupted".
func stockouts(nodeID, nodeName string, inventory []models.InventoryRecord) []models.Disruption {
	var out []models.Disruption
	for _, item := range inventory {
		if item.Quantity == 0 {
			out = append(out, models.Disruption{
				Type:     models.DisruptionStockout,
				NodeID:   nodeID,
				NodeName: nodeName,
				SKU:      item.SKUID,
			})
		}
	}
	return out
}

func findInventory(inventory []models.InventoryRecord, skuID string) (models.InventoryRecord, bool) {
	for _, item := range inventory {
		if item.SKUID == skuID {
			return item, true
		}
	}
	return models.InventoryRecord{}, false
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
