package recipe

import (
	"errors"
	"slices"

	"github.com/receitaslab/receitario/internal/shared/domain"
)

// ErrMissingInstructions is returned when a recipe has no step lines. The
// text is the user-facing validation message.
var ErrMissingInstructions = errors.New("A receita precisa pelo menos de uma instrução")

// Instructions is the ordered list of preparation steps of a recipe.
type Instructions struct {
	values []string
}

// NewInstructions creates Instructions from a raw slice. The input is
// copied, so later mutation of the argument cannot reach the value object.
func NewInstructions(raw []string) (Instructions, error) {
	if len(raw) == 0 {
		return Instructions{}, ErrMissingInstructions
	}
	return Instructions{values: slices.Clone(raw)}, nil
}

// Values returns a copy of the step lines.
func (i Instructions) Values() []string {
	return slices.Clone(i.values)
}

// Len returns the number of steps.
func (i Instructions) Len() int {
	return len(i.values)
}

// Equals checks if two Instructions hold the same steps in the same order.
func (i Instructions) Equals(other domain.ValueObject) bool {
	if o, ok := other.(Instructions); ok {
		return slices.Equal(i.values, o.values)
	}
	return false
}
