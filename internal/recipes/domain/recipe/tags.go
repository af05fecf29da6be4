package recipe

import (
	"errors"
	"slices"

	"github.com/receitaslab/receitario/internal/shared/domain"
)

// ErrMissingTags is returned when a recipe has no tags. The text is the
// user-facing validation message.
var ErrMissingTags = errors.New("A receita precisa pelo menos de uma tag")

// Tags is the ordered list of classification labels on a recipe.
type Tags struct {
	values []string
}

// NewTags creates Tags from a raw slice. The input is copied, so later
// mutation of the argument cannot reach the value object.
func NewTags(raw []string) (Tags, error) {
	if len(raw) == 0 {
		return Tags{}, ErrMissingTags
	}
	return Tags{values: slices.Clone(raw)}, nil
}

// Values returns a copy of the tag list.
func (t Tags) Values() []string {
	return slices.Clone(t.values)
}

// Len returns the number of tags.
func (t Tags) Len() int {
	return len(t.values)
}

// Equals checks if two Tags hold the same labels in the same order.
func (t Tags) Equals(other domain.ValueObject) bool {
	if o, ok := other.(Tags); ok {
		return slices.Equal(t.values, o.values)
	}
	return false
}
