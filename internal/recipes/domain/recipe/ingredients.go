package recipe

import (
	"errors"
	"slices"

	"github.com/receitaslab/receitario/internal/shared/domain"
)

// ErrMissingIngredients is returned when a recipe has no ingredient lines.
// The text is the user-facing validation message.
var ErrMissingIngredients = errors.New("A receita precisa pelo menos de um ingrediente")

// Ingredients is the ordered list of ingredient lines of a recipe.
type Ingredients struct {
	values []string
}

// NewIngredients creates Ingredients from a raw slice. The input is copied,
// so later mutation of the argument cannot reach the value object.
func NewIngredients(raw []string) (Ingredients, error) {
	if len(raw) == 0 {
		return Ingredients{}, ErrMissingIngredients
	}
	return Ingredients{values: slices.Clone(raw)}, nil
}

// Values returns a copy of the ingredient lines.
func (i Ingredients) Values() []string {
	return slices.Clone(i.values)
}

// Len returns the number of ingredient lines.
func (i Ingredients) Len() int {
	return len(i.values)
}

// Equals checks if two Ingredients hold the same lines in the same order.
func (i Ingredients) Equals(other domain.ValueObject) bool {
	if o, ok := other.(Ingredients); ok {
		return slices.Equal(i.values, o.values)
	}
	return false
}
