package handlers

import (
	"fmt"
	"net/http"

	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/detector"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/events"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/metrics"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/models"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/store"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/tracing"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/utils"
)

// Disruption type tags accepted by the disrupt endpoint
const (
	disruptStockout     = "stockout"
	disruptRouteClosed  = "route_closed"
	disruptBridgeClosed = "bridge_closed"
)

// SupplyChainHandler handles the state read and mutation endpoints
type SupplyChainHandler struct {
	store   *store.Store
	emitter *events.Emitter
	logger  ectologger.Logger
}

// NewSupplyChainHandler creates a new supply chain handler
func NewSupplyChainHandler(st *store.Store, emitter *events.Emitter, logger ectologger.Logger) *SupplyChainHandler {
	return &SupplyChainHandler{
		store:   st,
		emitter: emitter,
		logger:  logger,
	}
}

// Register registers supply chain routes
func (h *SupplyChainHandler) Register(g *echo.Group) {
	g.GET("/supplychain", h.Get)
	g.POST("/supplychain/disrupt", h.Disrupt)
	g.POST("/supplychain/reset", h.Reset)
}

// SupplyChainResponse is the full state payload: the state itself at the
// top level, plus the derived views the frontend renders from.
type SupplyChainResponse struct {
	*models.SupplyChainState
	ClosedBridges  []string             `json:"closedBridges"`
	Disruptions    []models.Disruption  `json:"disruptions"`
	Nodes          []models.NodeSummary `json:"nodes"`
	IsInitialState bool                 `json:"isInitialState"`
}

// Get returns the current state with disruptions recomputed on every read
func (h *SupplyChainHandler) Get(c echo.Context) error {
	_, span := tracing.StartSpan(c.Request().Context(), "SupplyChainHandler.Get")
	defer span.End()

	state := h.store.Snapshot()
	bridges := h.store.ClosedBridges()
	disruptions := detector.Detect(state, bridges)
	recordDisruptionCounts(disruptions)

	return c.JSON(http.StatusOK, SupplyChainResponse{
		SupplyChainState: state,
		ClosedBridges:    bridges,
		Disruptions:      disruptions,
		Nodes:            flattenNodes(state),
		IsInitialState:   h.store.IsAtInitialState(),
	})
}

// DisruptRequest is the tagged disruption trigger. Type-specific fields
// are validated per type, not up front.
type DisruptRequest struct {
	Type     string `json:"type" validate:"required"`
	NodeID   string `json:"nodeId"`
	SKU      string `json:"sku"`
	RouteID  string `json:"routeId"`
	BridgeID string `json:"bridgeId"`
}

// Disrupt applies an operator-triggered disruption to the live state
func (h *SupplyChainHandler) Disrupt(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "SupplyChainHandler.Disrupt")
	defer span.End()

	req, err := utils.BindRequest[DisruptRequest](c)
	if err != nil {
		return err
	}

	switch req.Type {
	case disruptStockout:
		if req.NodeID == "" || req.SKU == "" {
			return BadRequest("stockout requires 'nodeId' and 'sku'")
		}
		nodeName, err := h.store.ApplyStockout(ctx, req.NodeID, req.SKU)
		if err != nil {
			metrics.MutationsTotal.WithLabelValues(disruptStockout, "not_found").Inc()
			return err
		}
		metrics.MutationsTotal.WithLabelValues(disruptStockout, "ok").Inc()
		h.emitter.EmitStockout(ctx, req.NodeID, nodeName, req.SKU)
		return OkResponse(c, fmt.Sprintf("Stockout triggered for %s at %s", req.SKU, nodeName))

	case disruptRouteClosed:
		if req.RouteID == "" {
			return BadRequest("route_closed requires 'routeId'")
		}
		route, err := h.store.ApplyRouteClosure(ctx, req.RouteID)
		if err != nil {
			metrics.MutationsTotal.WithLabelValues(disruptRouteClosed, "not_found").Inc()
			return err
		}
		metrics.MutationsTotal.WithLabelValues(disruptRouteClosed, "ok").Inc()
		h.emitter.EmitRouteClosed(ctx, route.ID, route.From, route.To)
		return OkResponse(c, fmt.Sprintf("Route %s closed", route.ID))

	case disruptBridgeClosed:
		if req.BridgeID == "" {
			return BadRequest("bridge_closed requires 'bridgeId'")
		}
		h.store.ApplyBridgeClosure(ctx, req.BridgeID)
		metrics.MutationsTotal.WithLabelValues(disruptBridgeClosed, "ok").Inc()
		h.emitter.EmitBridgeClosed(ctx, req.BridgeID)
		return OkResponse(c, fmt.Sprintf("Bridge %s closed", req.BridgeID))

	default:
		return BadRequest(fmt.Sprintf("invalid disruption type '%s'", req.Type))
	}
}

// Reset restores the initial snapshot
func (h *SupplyChainHandler) Reset(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "SupplyChainHandler.Reset")
	defer span.End()

	h.store.Reset(ctx)
	metrics.ResetsTotal.Inc()
	h.emitter.EmitReset(ctx)

	return OkResponse(c, "Supply chain state reset to initial demo data.")
}

// flattenNodes builds the mixed node list for map and table rendering
func flattenNodes(state *models.SupplyChainState) []models.NodeSummary {
	nodes := make([]models.NodeSummary, 0, len(state.Factories)+len(state.DistributionCenters)+len(state.Retails))

	for _, f := range state.Factories {
		nodes = append(nodes, models.NodeSummary{
			ID:              f.ID,
			Name:            f.Name,
			Type:            models.NodeTypeFactory,
			Location:        f.Location,
			Inventory:       f.Inventory,
			ProductionRates: f.ProductionRates,
			ProductionTimes: f.ProductionTimes,
		})
	}
	for _, dc := range state.DistributionCenters {
		nodes = append(nodes, models.NodeSummary{
			ID:        dc.ID,
			Name:      dc.Name,
			Type:      models.NodeTypeDistributionCenter,
			Location:  dc.Location,
			Inventory: dc.Inventory,
		})
	}
	for _, r := range state.Retails {
		nodes = append(nodes, models.NodeSummary{
			ID:        r.ID,
			Name:      r.Name,
			Type:      models.NodeTypeRetail,
			Location:  r.Location,
			Inventory: r.Inventory,
			Demand:    r.Demand,
		})
	}

	return nodes
}

// recordDisruptionCounts publishes per-type counts from the latest
// detection run, including zeroes so cleared disruptions drop the gauge.
func recordDisruptionCounts(disruptions []models.Disruption) {
	counts := map[models.DisruptionType]int{
		models.DisruptionStockout:                   0,
		models.DisruptionDemandExceedsInventory:     0,
		models.DisruptionProductionRateInsufficient: 0,
		models.DisruptionProductionTimeTooHigh:      0,
		models.DisruptionRouteClosed:                0,
		models.DisruptionBridgeClosed:               0,
	}
	for _, d := range disruptions {
		counts[d.Type]++
	}
	for disruptionType, count := range counts {
		metrics.DisruptionsDetected.WithLabelValues(string(disruptionType)).Set(float64(count))
	}
}
