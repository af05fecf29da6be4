package recipe

import (
	"github.com/receitaslab/receitario/internal/shared/domain"
)

const (
	AggregateType = "Recipe"

	RoutingKeyCreated = "recipes.recipe.created"
)

// RecipeCreated is emitted when a recipe passes validation and is assembled.
type RecipeCreated struct {
	domain.BaseEvent
	Name             string `json:"name"`
	TagCount         int    `json:"tag_count"`
	IngredientCount  int    `json:"ingredient_count"`
	InstructionCount int    `json:"instruction_count"`
}

// NewRecipeCreated creates a RecipeCreated event for the given recipe. The
// aggregate ID is empty when the recipe has no assigned identity yet, and
// the event occurs at the recipe's publication instant.
func NewRecipeCreated(r *Recipe) RecipeCreated {
	return RecipeCreated{
		BaseEvent:        domain.NewBaseEvent(r.ID().String(), AggregateType, RoutingKeyCreated, r.PublishedAt()),
		Name:             r.Name().Value(),
		TagCount:         r.Tags().Len(),
		IngredientCount:  r.Ingredients().Len(),
		InstructionCount: r.Instructions().Len(),
	}
}
