package models

// DisruptionType tags the disruption variants emitted by the detector
type DisruptionType string

const (
	DisruptionStockout                   DisruptionType = "stockout"
	DisruptionDemandExceedsInventory     DisruptionType = "demand_exceeds_inventory"
	DisruptionProductionRateInsufficient DisruptionType = "production_rate_insufficient"
	DisruptionProductionTimeTooHigh      DisruptionType = "production_time_too_high"
	DisruptionRouteClosed                DisruptionType = "route_closed"
	DisruptionBridgeClosed               DisruptionType = "bridge_closed"
)

// Disruption is a derived finding about the current state. It is never
// persisted; the detector recomputes the full list on every read. Variant
// fields are populated per type and omitted otherwise, matching the wire
// shape consumed by the frontend.
type Disruption struct {
	Type DisruptionType `json:"type"`

	// stockout, demand_exceeds_inventory, production_* variants
	NodeID   string `json:"nodeId,omitempty"`
	NodeName string `json:"nodeName,omitempty"`
	SKU      string `json:"sku,omitempty"`

	// demand_exceeds_inventory
	Demand    *float64 `json:"demand,omitempty"`
	Inventory *int     `json:"inventory,omitempty"`

	// production_rate_insufficient
	ProductionRate *float64 `json:"productionRate,omitempty"`
	TotalDemand    *float64 `json:"totalDemand,omitempty"`

	// production_time_too_high
	ProductionTime *float64 `json:"productionTime,omitempty"`
	Threshold      *float64 `json:"threshold,omitempty"`

	// route_closed
	RouteID string `json:"routeId,omitempty"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`

	// bridge_closed
	BridgeID string `json:"bridgeId,omitempty"`
}
