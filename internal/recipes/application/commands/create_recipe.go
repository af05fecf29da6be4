package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/receitaslab/receitario/internal/recipes/domain/recipe"
	"github.com/receitaslab/receitario/internal/shared/domain"
	"github.com/receitaslab/receitario/internal/shared/infrastructure/eventbus"
)

// CreateRecipeCommand carries the raw field values of a recipe as decoded
// by the inbound adapter. An empty ID means the recipe has no assigned
// identity yet.
type CreateRecipeCommand struct {
	ID           string
	Name         string
	Tags         []string
	Ingredients  []string
	Instructions []string
}

// CreateRecipeResult contains the result of creating a recipe.
type CreateRecipeResult struct {
	Recipe *recipe.Recipe
}

// CreateRecipeHandler handles the CreateRecipeCommand.
type CreateRecipeHandler struct {
	publisher eventbus.Publisher
	clock     domain.Clock
	logger    *slog.Logger
}

// NewCreateRecipeHandler creates a new CreateRecipeHandler. A nil clock
// falls back to the system clock; a nil publisher disables event publishing.
func NewCreateRecipeHandler(publisher eventbus.Publisher, clock domain.Clock, logger *slog.Logger) *CreateRecipeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CreateRecipeHandler{
		publisher: publisher,
		clock:     clock,
		logger:    logger,
	}
}

// Handle executes the CreateRecipeCommand. A domain validation failure is
// returned unchanged so adapters can surface the message as-is.
func (h *CreateRecipeHandler) Handle(ctx context.Context, cmd CreateRecipeCommand) (*CreateRecipeResult, error) {
	r, err := recipe.NewRecipe(cmd.ID, cmd.Name, cmd.Tags, cmd.Ingredients, cmd.Instructions, h.clock)
	if err != nil {
		return nil, err
	}

	if h.publisher != nil {
		h.publishCreated(ctx, r)
	}

	return &CreateRecipeResult{Recipe: r}, nil
}

// publishCreated announces the new recipe on the event bus. Delivery is
// best-effort: the recipe was validly constructed, so a publish failure is
// logged rather than surfaced.
func (h *CreateRecipeHandler) publishCreated(ctx context.Context, r *recipe.Recipe) {
	event := recipe.NewRecipeCreated(r)

	env, err := eventbus.Envelope(event)
	if err != nil {
		h.logger.Error("failed to envelope recipe created event",
			"recipe_id", r.ID().String(),
			"error", err,
		)
		return
	}

	payload, err := json.Marshal(env)
	if err != nil {
		h.logger.Error("failed to marshal recipe created event",
			"recipe_id", r.ID().String(),
			"error", err,
		)
		return
	}

	if err := h.publisher.Publish(ctx, event.RoutingKey(), payload); err != nil {
		h.logger.Error("failed to publish recipe created event",
			"recipe_id", r.ID().String(),
			"error", err,
		)
	}
}
