// Package models defines the supply chain domain model. Types only; the
// seed dataset lives in pkg/seed and all behavior lives in pkg/store and
// pkg/detector.
package models

// NodeType discriminates the node variants
type NodeType string

const (
	NodeTypeFactory            NodeType = "factory"
	NodeTypeDistributionCenter NodeType = "distribution_center"
	NodeTypeRetail             NodeType = "retail"
)

// RouteStatus is the operational status of a route
type RouteStatus string

const (
	RouteStatusOpen    RouteStatus = "open"
	RouteStatusClosed  RouteStatus = "closed"
	RouteStatusDelayed RouteStatus = "delayed"
)

// TransportMode is the mode of transport for a route
type TransportMode string

const (
	TransportModeTruck TransportMode = "truck"
	TransportModeShip  TransportMode = "ship"
	TransportModeAir   TransportMode = "air"
)

// VehicleStatus is the operational status of a transport asset
type VehicleStatus string

const (
	VehicleStatusIdle      VehicleStatus = "idle"
	VehicleStatusEnroute   VehicleStatus = "enroute"
	VehicleStatusLoading   VehicleStatus = "loading"
	VehicleStatusUnloading VehicleStatus = "unloading"
)

// Location is a geographic coordinate
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SKU is immutable product reference data
type SKU struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	CostToProduce float64 `json:"costToProduce"`
}

// InventoryRecord is the quantity of one SKU held at one owning node.
// Min/Max are soft bounds used by disruption heuristics, never enforced.
type InventoryRecord struct {
	SKUID        string `json:"skuId"`
	Quantity     int    `json:"quantity"`
	MinInventory *int   `json:"minInventory,omitempty"`
	MaxInventory *int   `json:"maxInventory,omitempty"`
}

// Factory is a production node. ProductionRates and ProductionTimes are
// keyed by SKU id.
type Factory struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Location        Location           `json:"location"`
	ProductionRates map[string]float64 `json:"productionRates"`
	ProductionTimes map[string]float64 `json:"productionTimes"`
	Inventory       []InventoryRecord  `json:"inventory"`
}

// DistributionCenter is an intermediate storage node
type DistributionCenter struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Location  Location          `json:"location"`
	Inventory []InventoryRecord `json:"inventory"`
}

// Retail is a demand-facing node. Demand is keyed by SKU id in units per
// time unit.
type Retail struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Location  Location           `json:"location"`
	Inventory []InventoryRecord  `json:"inventory"`
	Demand    map[string]float64 `json:"demand"`
}

// Vehicle is a transport asset (truck, ship or airplane; the variant is
// implied by which list of the aggregate root holds it). Total cargo
// quantity must not exceed MaxLoad.
type Vehicle struct {
	ID                 string            `json:"id"`
	Location           Location          `json:"location"`
	MaxLoad            int               `json:"maxLoad"`
	Cargo              []InventoryRecord `json:"cargo"`
	CurrentDestination string            `json:"currentDestination,omitempty"`
	Status             VehicleStatus     `json:"status"`
}

// Route is a directed link between two nodes. Parallel routes between the
// same pair with different modes are expected.
type Route struct {
	ID                 string        `json:"id"`
	From               string        `json:"from"`
	To                 string        `json:"to"`
	Distance           float64       `json:"distance"`
	ExpectedTravelTime float64       `json:"expectedTravelTime"`
	Cost               float64       `json:"cost"`
	Status             RouteStatus   `json:"status"`
	Risk               *float64      `json:"risk,omitempty"`
	Mode               TransportMode `json:"mode,omitempty"`
}

// Order is a descriptive request to move quantity of a SKU between nodes
type Order struct {
	ID       string `json:"id"`
	From     string `json:"from"`
	To       string `json:"to"`
	SKUID    string `json:"skuId"`
	Quantity int    `json:"quantity"`
	DueTime  int64  `json:"dueTime"`
}

// EventType classifies supply chain audit events
type EventType string

const (
	EventTypeStockout     EventType = "stockout"
	EventTypeRouteClosed  EventType = "route_closed"
	EventTypeBridgeClosed EventType = "bridge_closed"
	EventTypeOrder        EventType = "order"
	EventTypeProduction   EventType = "production"
	EventTypeShipment     EventType = "shipment"
	EventTypeCustom       EventType = "custom"
)

// SupplyChainEvent is an append-only audit record
type SupplyChainEvent struct {
	ID        string         `json:"id"`
	Type      EventType      `json:"type"`
	Timestamp int64          `json:"timestamp"`
	Details   map[string]any `json:"details"`
}

// SupplyChainState is the aggregate root. It is owned by the store;
// everything else receives read-only snapshots.
type SupplyChainState struct {
	ID                  string               `json:"id"`
	Timestamp           int64                `json:"timestamp"`
	SKUs                []SKU                `json:"skus"`
	Factories           []Factory            `json:"factories"`
	DistributionCenters []DistributionCenter `json:"distributionCenters"`
	Retails             []Retail             `json:"retails"`
	Trucks              []Vehicle            `json:"trucks"`
	Ships               []Vehicle            `json:"ships"`
	Airplanes           []Vehicle            `json:"airplanes"`
	Routes              []Route              `json:"routes"`
	Orders              []Order              `json:"orders"`
	Events              []SupplyChainEvent   `json:"events"`
}

// NodeSummary is the flattened node view returned alongside the full state
// for map and table rendering. Type-specific fields are omitted when empty.
type NodeSummary struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Type            NodeType           `json:"type"`
	Location        Location           `json:"location"`
	Inventory       []InventoryRecord  `json:"inventory"`
	ProductionRates map[string]float64 `json:"productionRates,omitempty"`
	ProductionTimes map[string]float64 `json:"productionTimes,omitempty"`
	Demand          map[string]float64 `json:"demand,omitempty"`
}
