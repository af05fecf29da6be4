package recipe

// RecipeID is the external identity of a recipe. A recipe built from raw
// input may not have been assigned one yet, so the absent state is a
// first-class variant rather than an empty-string sentinel.
type RecipeID struct {
	value    string
	assigned bool
}

// NewRecipeID creates a RecipeID from a raw string. An empty string yields
// the absent identity; construction never fails.
func NewRecipeID(raw string) RecipeID {
	if raw == "" {
		return RecipeID{}
	}
	return RecipeID{value: raw, assigned: true}
}

// Value returns the assigned identifier and whether one is present.
func (id RecipeID) Value() (string, bool) {
	return id.value, id.assigned
}

// IsAbsent reports whether the recipe has no assigned identity yet.
func (id RecipeID) IsAbsent() bool {
	return !id.assigned
}

// String returns the assigned identifier, or the empty string when absent.
func (id RecipeID) String() string {
	return id.value
}
