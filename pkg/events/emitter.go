package events

import (
	"context"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/models"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/tracing"
)

// Emitter builds and publishes audit events for operator actions. Emission
// is best-effort: a publish failure is logged and never fails the mutation
// that triggered it. A nil producer disables emission entirely.
type Emitter struct {
	producer *Producer
	logger   ectologger.Logger
}

// NewEmitter creates a new event emitter
func NewEmitter(producer *Producer, logger ectologger.Logger) *Emitter {
	return &Emitter{
		producer: producer,
		logger:   logger,
	}
}

// EmitStockout emits a stockout event for a node/SKU pair
func (e *Emitter) EmitStockout(ctx context.Context, nodeID, nodeName, skuID string) {
	e.emit(ctx, models.EventTypeStockout, map[string]any{
		"nodeId":   nodeID,
		"nodeName": nodeName,
		"skuId":    skuID,
	})
}

// EmitRouteClosed emits a route closure event
func (e *Emitter) EmitRouteClosed(ctx context.Context, routeID, from, to string) {
	e.emit(ctx, models.EventTypeRouteClosed, map[string]any{
		"routeId": routeID,
		"from":    from,
		"to":      to,
	})
}

// EmitBridgeClosed emits a bridge closure event
func (e *Emitter) EmitBridgeClosed(ctx context.Context, bridgeID string) {
	e.emit(ctx, models.EventTypeBridgeClosed, map[string]any{
		"bridgeId": bridgeID,
	})
}

// EmitReset emits a custom event recording a reset to the initial snapshot
func (e *Emitter) EmitReset(ctx context.Context) {
	e.emit(ctx, models.EventTypeCustom, map[string]any{
		"action": "reset",
	})
}

func (e *Emitter) emit(ctx context.Context, eventType models.EventType, details map[string]any) {
	if e == nil || e.producer == nil {
		return
	}

	ctx, span := tracing.StartSpan(ctx, "events.Emitter.emit")
	defer span.End()

	event := &models.SupplyChainEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UnixMilli(),
		Details:   details,
	}

	if err := e.producer.PublishEvent(ctx, event); err != nil {
		e.logger.WithContext(ctx).WithError(err).WithFields(map[string]any{
			"event_type": eventType,
		}).Error("Failed to emit supply chain event")
	}
}
