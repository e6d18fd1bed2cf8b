package handlers

import (
	"net/http"

	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/detector"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/reasoning"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/store"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/tracing"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/utils"
)

// ReasoningHandler handles the reasoning endpoint
type ReasoningHandler struct {
	store   *store.Store
	service *reasoning.Service
	logger  ectologger.Logger
}

// NewReasoningHandler creates a new reasoning handler
func NewReasoningHandler(st *store.Store, service *reasoning.Service, logger ectologger.Logger) *ReasoningHandler {
	return &ReasoningHandler{
		store:   st,
		service: service,
		logger:  logger,
	}
}

// Register registers reasoning routes
func (h *ReasoningHandler) Register(g *echo.Group) {
	g.POST("/reason", h.Reason)
}

// ReasonRequest carries the optional free-text optimization priority.
// Disruptions are read from live server-side state, never from the
// request.
type ReasonRequest struct {
	OptimizationPriority string `json:"optimizationPriority"`
}

// ReasonResponse wraps the advice payload
type ReasonResponse struct {
	Status string            `json:"status"`
	Data   *reasoning.Advice `json:"data"`
}

// Reason snapshots the state, recomputes disruptions and asks the
// reasoning service for advice. The snapshot is taken before the upstream
// call so no lock is held across it.
func (h *ReasoningHandler) Reason(c echo.Context) error {
	ctx, span := tracing.StartSpan(c.Request().Context(), "ReasoningHandler.Reason")
	defer span.End()

	req, err := utils.BindRequest[ReasonRequest](c)
	if err != nil {
		return err
	}

	state := h.store.Snapshot()
	bridges := h.store.ClosedBridges()
	disruptions := detector.Detect(state, bridges)

	advice, err := h.service.ReasonAboutDisruptions(ctx, state, disruptions, req.OptimizationPriority)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ReasonResponse{Status: "ok", Data: advice})
}
