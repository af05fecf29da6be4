package recipe

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/receitaslab/receitario/adapter/cli"
	"github.com/receitaslab/receitario/internal/recipes/application/commands"
)

// recipeRecord is the file shape of a recipe. Decoding is the adapter's
// job; the domain only ever sees plain strings and string slices.
type recipeRecord struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Tags         []string `json:"tags"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import recipes from a JSON file",
	Long: `Import recipes from a JSON file holding an array of records with
id, name, tags, ingredients and instructions fields. Records that fail
validation are reported and skipped; the rest are published.

Examples:
  receitario recipe import recipes.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateRecipeHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		var records []recipeRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("failed to decode %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		imported := 0
		skipped := 0
		for i, rec := range records {
			createCmd := commands.CreateRecipeCommand{
				ID:           rec.ID,
				Name:         rec.Name,
				Tags:         rec.Tags,
				Ingredients:  rec.Ingredients,
				Instructions: rec.Instructions,
			}

			result, err := app.CreateRecipeHandler.Handle(cmd.Context(), createCmd)
			if err != nil {
				fmt.Fprintf(out, "record %d: skipped: %s\n", i+1, err)
				skipped++
				continue
			}

			fmt.Fprintf(out, "record %d: imported %q\n", i+1, result.Recipe.Name())
			imported++
		}

		fmt.Fprintf(out, "%d imported, %d skipped\n", imported, skipped)
		return nil
	},
}
