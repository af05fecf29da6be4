package subscribers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/receitaslab/receitario/internal/recipes/domain/recipe"
	"github.com/receitaslab/receitario/internal/shared/infrastructure/eventbus"
)

// CatalogActivitySubscriber logs every recipe that enters the catalog. It
// is the default consumer on the in-process bus, so a local run shows what
// was published without a broker.
type CatalogActivitySubscriber struct {
	logger *slog.Logger
}

// NewCatalogActivitySubscriber creates a new catalog activity subscriber.
func NewCatalogActivitySubscriber(logger *slog.Logger) *CatalogActivitySubscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogActivitySubscriber{logger: logger}
}

// EventTypes returns the routing keys this subscriber handles.
func (s *CatalogActivitySubscriber) EventTypes() []string {
	return []string{recipe.RoutingKeyCreated}
}

// Handle logs the published recipe.
func (s *CatalogActivitySubscriber) Handle(ctx context.Context, event *eventbus.ConsumedEvent) error {
	var payload struct {
		Name             string `json:"name"`
		TagCount         int    `json:"tag_count"`
		IngredientCount  int    `json:"ingredient_count"`
		InstructionCount int    `json:"instruction_count"`
	}
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return fmt.Errorf("decode recipe payload: %w", err)
	}

	s.logger.InfoContext(ctx, "recipe entered the catalog",
		"recipe_id", event.AggregateID,
		"name", payload.Name,
		"tags", payload.TagCount,
		"ingredients", payload.IngredientCount,
		"instructions", payload.InstructionCount,
		"occurred_at", event.OccurredAt,
	)
	return nil
}
