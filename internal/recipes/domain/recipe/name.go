package recipe

import (
	"errors"

	"github.com/receitaslab/receitario/internal/shared/domain"
)

// ErrMissingName is returned when a recipe name is empty. The text is the
// user-facing validation message.
var ErrMissingName = errors.New("A receita precisa ter um nome")

// Name is the human-readable title of a recipe.
type Name struct {
	value string
}

// NewName creates a Name from a raw string.
func NewName(raw string) (Name, error) {
	if raw == "" {
		return Name{}, ErrMissingName
	}
	return Name{value: raw}, nil
}

// Value returns the underlying string.
func (n Name) Value() string {
	return n.value
}

// String returns the underlying string.
func (n Name) String() string {
	return n.value
}

// Equals checks if two Names hold the same title.
func (n Name) Equals(other domain.ValueObject) bool {
	if o, ok := other.(Name); ok {
		return n.value == o.value
	}
	return false
}
