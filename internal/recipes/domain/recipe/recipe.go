package recipe

import (
	"time"

	"github.com/receitaslab/receitario/internal/shared/domain"
)

// Recipe is the aggregate root of the catalog. It can only be obtained
// through NewRecipe, so a Recipe in hand is always valid.
type Recipe struct {
	id           RecipeID
	name         Name
	tags         Tags
	ingredients  Ingredients
	instructions Instructions
	publishedAt  time.Time
}

// NewRecipe builds a Recipe from raw input. Fields are validated in a fixed
// order (id, name, tags, ingredients, instructions) and the first violated
// invariant aborts construction; nothing is assembled on failure. On success
// the clock is read exactly once and the recipe is stamped as published at
// that instant. A nil clock falls back to the system clock.
func NewRecipe(id, name string, tags, ingredients, instructions []string, clock domain.Clock) (*Recipe, error) {
	if clock == nil {
		clock = domain.SystemClock()
	}

	recipeID := NewRecipeID(id)

	recipeName, err := NewName(name)
	if err != nil {
		return nil, err
	}

	recipeTags, err := NewTags(tags)
	if err != nil {
		return nil, err
	}

	recipeIngredients, err := NewIngredients(ingredients)
	if err != nil {
		return nil, err
	}

	recipeInstructions, err := NewInstructions(instructions)
	if err != nil {
		return nil, err
	}

	return &Recipe{
		id:           recipeID,
		name:         recipeName,
		tags:         recipeTags,
		ingredients:  recipeIngredients,
		instructions: recipeInstructions,
		publishedAt:  clock.Now(),
	}, nil
}

// Getters

func (r *Recipe) ID() RecipeID               { return r.id }
func (r *Recipe) Name() Name                 { return r.name }
func (r *Recipe) Tags() Tags                 { return r.tags }
func (r *Recipe) Ingredients() Ingredients   { return r.ingredients }
func (r *Recipe) Instructions() Instructions { return r.instructions }
func (r *Recipe) PublishedAt() time.Time     { return r.publishedAt }

// IsPublished reports whether the publication timestamp has been set.
func (r *Recipe) IsPublished() bool {
	return !r.publishedAt.IsZero()
}
