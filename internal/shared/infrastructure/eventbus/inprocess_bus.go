package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/receitaslab/receitario/internal/shared/domain"
)

// InProcessEventBus delivers events synchronously to consumers registered
// in the same process. It backs local mode, where recipes are validated on
// the command line and no broker is running.
type InProcessEventBus struct {
	mu        sync.RWMutex
	consumers map[string][]EventConsumer
	logger    *slog.Logger
}

// NewInProcessEventBus creates an empty bus.
func NewInProcessEventBus(logger *slog.Logger) *InProcessEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &InProcessEventBus{
		consumers: make(map[string][]EventConsumer),
		logger:    logger,
	}
}

// RegisterConsumer subscribes a consumer under every routing key it declares.
func (b *InProcessEventBus) RegisterConsumer(consumer EventConsumer) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, routingKey := range consumer.EventTypes() {
		b.consumers[routingKey] = append(b.consumers[routingKey], consumer)
		b.logger.Debug("registered consumer", "routing_key", routingKey)
	}
}

// Publish decodes the envelope and hands it to every consumer subscribed
// to the routing key. Implements the Publisher interface. A payload that
// is not a valid envelope is logged and dropped; publishing never fails.
func (b *InProcessEventBus) Publish(ctx context.Context, routingKey string, payload []byte) error {
	event := &ConsumedEvent{}
	if err := json.Unmarshal(payload, event); err != nil {
		b.logger.Error("dropping malformed event payload",
			"routing_key", routingKey,
			"error", err,
		)
		return nil
	}
	if event.RoutingKey == "" {
		event.RoutingKey = routingKey
	}

	b.dispatch(ctx, event)
	return nil
}

// PublishDomainEvent wraps a domain event in its envelope and dispatches
// it, skipping the wire round trip.
func (b *InProcessEventBus) PublishDomainEvent(ctx context.Context, event domain.DomainEvent) error {
	env, err := Envelope(event)
	if err != nil {
		return err
	}
	b.dispatch(ctx, env)
	return nil
}

// dispatch delivers the event to all consumers for its routing key. A
// failing consumer is logged and does not block delivery to the rest.
func (b *InProcessEventBus) dispatch(ctx context.Context, event *ConsumedEvent) {
	b.mu.RLock()
	consumers := b.consumers[event.RoutingKey]
	b.mu.RUnlock()

	if len(consumers) == 0 {
		b.logger.Debug("no consumers for event", "routing_key", event.RoutingKey)
		return
	}

	for _, consumer := range consumers {
		if err := consumer.Handle(ctx, event); err != nil {
			b.logger.Error("consumer failed to handle event",
				"routing_key", event.RoutingKey,
				"event_id", event.EventID,
				"error", err,
			)
		}
	}
}

// Close is a no-op; there is no connection behind the bus.
func (b *InProcessEventBus) Close() error {
	return nil
}
