package recipe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/receitaslab/receitario/internal/recipes/domain/recipe"
)

func TestNewRecipeID(t *testing.T) {
	t.Run("empty string is the absent identity", func(t *testing.T) {
		id := recipe.NewRecipeID("")

		assert.True(t, id.IsAbsent())
		assert.Equal(t, "", id.String())
	})

	t.Run("non-empty string is assigned", func(t *testing.T) {
		id := recipe.NewRecipeID("abc")

		assert.False(t, id.IsAbsent())

		value, assigned := id.Value()
		assert.True(t, assigned)
		assert.Equal(t, "abc", value)
	})
}

func TestNewName(t *testing.T) {
	t.Run("creates Name from non-empty string", func(t *testing.T) {
		name, err := recipe.NewName("Feijoada")

		require.NoError(t, err)
		assert.Equal(t, "Feijoada", name.Value())
	})

	t.Run("fails on empty string", func(t *testing.T) {
		_, err := recipe.NewName("")

		require.Error(t, err)
		assert.ErrorIs(t, err, recipe.ErrMissingName)
	})

	t.Run("does not trim whitespace", func(t *testing.T) {
		name, err := recipe.NewName("  Feijoada  ")

		require.NoError(t, err)
		assert.Equal(t, "  Feijoada  ", name.Value())
	})
}

func TestName_Equals(t *testing.T) {
	a, err := recipe.NewName("Feijoada")
	require.NoError(t, err)
	b, err := recipe.NewName("Feijoada")
	require.NoError(t, err)
	c, err := recipe.NewName("Moqueca")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestNewTags(t *testing.T) {
	t.Run("creates Tags from non-empty slice", func(t *testing.T) {
		tags, err := recipe.NewTags([]string{"main", "chicken"})

		require.NoError(t, err)
		assert.Equal(t, []string{"main", "chicken"}, tags.Values())
		assert.Equal(t, 2, tags.Len())
	})

	t.Run("fails on empty slice", func(t *testing.T) {
		_, err := recipe.NewTags([]string{})

		require.Error(t, err)
		assert.ErrorIs(t, err, recipe.ErrMissingTags)
	})

	t.Run("fails on nil slice", func(t *testing.T) {
		_, err := recipe.NewTags(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, recipe.ErrMissingTags)
	})
}

func TestTags_Equals(t *testing.T) {
	a, err := recipe.NewTags([]string{"main", "chicken"})
	require.NoError(t, err)
	b, err := recipe.NewTags([]string{"main", "chicken"})
	require.NoError(t, err)
	reordered, err := recipe.NewTags([]string{"chicken", "main"})
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(reordered)) // Order matters

	// A different value object type with the same content is not equal.
	ingredients, err := recipe.NewIngredients([]string{"main", "chicken"})
	require.NoError(t, err)
	assert.False(t, a.Equals(ingredients))
}

func TestNewIngredients(t *testing.T) {
	t.Run("creates Ingredients from non-empty slice", func(t *testing.T) {
		ingredients, err := recipe.NewIngredients([]string{"2 eggs", "flour"})

		require.NoError(t, err)
		assert.Equal(t, []string{"2 eggs", "flour"}, ingredients.Values())
		assert.Equal(t, 2, ingredients.Len())
	})

	t.Run("fails on empty slice", func(t *testing.T) {
		_, err := recipe.NewIngredients(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, recipe.ErrMissingIngredients)
	})
}

func TestNewInstructions(t *testing.T) {
	t.Run("creates Instructions from non-empty slice", func(t *testing.T) {
		instructions, err := recipe.NewInstructions([]string{"Mix", "Bake"})

		require.NoError(t, err)
		assert.Equal(t, []string{"Mix", "Bake"}, instructions.Values())
		assert.Equal(t, 2, instructions.Len())
	})

	t.Run("fails on empty slice", func(t *testing.T) {
		_, err := recipe.NewInstructions(nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, recipe.ErrMissingInstructions)
	})
}
