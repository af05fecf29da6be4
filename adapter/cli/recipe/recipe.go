package recipe

import (
	"github.com/spf13/cobra"
)

// Cmd is the recipe command group
var Cmd = &cobra.Command{
	Use:   "recipe",
	Short: "Validate and publish recipes",
	Long:  `Create recipes from raw fields or import them from a file.`,
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(importCmd)
}
