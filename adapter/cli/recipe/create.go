package recipe

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/receitaslab/receitario/adapter/cli"
	"github.com/receitaslab/receitario/internal/recipes/application/commands"
)

var (
	recipeID     string
	tags         []string
	ingredients  []string
	instructions []string
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new recipe",
	Long: `Create a recipe from its raw fields. The recipe is only assembled
when every field passes validation.

Examples:
  receitario recipe create "Oregano Marinated Chicken" \
    -t main -t chicken \
    -i "4 (6 to 7-ounce) boneless skinless chicken breasts" \
    -s "To marinate the chicken: combine lemon juice, olive oil and oregano"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateRecipeHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		createCmd := commands.CreateRecipeCommand{
			ID:           recipeID,
			Name:         args[0],
			Tags:         tags,
			Ingredients:  ingredients,
			Instructions: instructions,
		}

		result, err := app.CreateRecipeHandler.Handle(cmd.Context(), createCmd)
		if err != nil {
			// Domain messages are user-facing; print them verbatim.
			return err
		}

		r := result.Recipe
		out := cmd.OutOrStdout()
		if id, ok := r.ID().Value(); ok {
			fmt.Fprintf(out, "Recipe created: %s\n", id)
		} else {
			fmt.Fprintln(out, "Recipe created (no identity assigned yet)")
		}
		fmt.Fprintf(out, "  name: %s\n", r.Name())
		fmt.Fprintf(out, "  tags: %d\n", r.Tags().Len())
		fmt.Fprintf(out, "  ingredients: %d\n", r.Ingredients().Len())
		fmt.Fprintf(out, "  instructions: %d\n", r.Instructions().Len())
		fmt.Fprintf(out, "  published at: %s\n", r.PublishedAt().Format("2006-01-02 15:04:05"))

		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&recipeID, "id", "", "external identifier (empty for a new recipe)")
	createCmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "classification tag (repeatable)")
	createCmd.Flags().StringArrayVarP(&ingredients, "ingredient", "i", nil, "ingredient line (repeatable)")
	createCmd.Flags().StringArrayVarP(&instructions, "step", "s", nil, "instruction step (repeatable)")
}
