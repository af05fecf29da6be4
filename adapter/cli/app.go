package cli

import (
	"github.com/receitaslab/receitario/internal/recipes/application/commands"
)

// App holds the CLI application dependencies.
type App struct {
	// Recipe Command Handlers
	CreateRecipeHandler *commands.CreateRecipeHandler
}

// NewApp creates a new CLI App with the given handlers.
func NewApp(createRecipe *commands.CreateRecipeHandler) *App {
	return &App{
		CreateRecipeHandler: createRecipe,
	}
}

// app is the global application instance used by commands.
var app *App

// SetApp sets the global application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global application instance.
func GetApp() *App {
	return app
}
