package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/receitaslab/receitario/adapter/cli"
	cliRecipe "github.com/receitaslab/receitario/adapter/cli/recipe"
	"github.com/receitaslab/receitario/internal/recipes/application/commands"
	"github.com/receitaslab/receitario/internal/recipes/application/subscribers"
	"github.com/receitaslab/receitario/internal/shared/infrastructure/eventbus"
	"github.com/receitaslab/receitario/pkg/config"
	"github.com/receitaslab/receitario/pkg/observability"
)

func main() {
	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development", LogLevel: "info"}
	}

	logger := newLogger(cfg)
	cli.SetLogger(logger)

	publisher := newPublisher(cfg, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("error closing publisher", "error", err)
		}
	}()

	createRecipe := commands.NewCreateRecipeHandler(publisher, nil, logger)
	cli.SetApp(cli.NewApp(createRecipe))

	cli.AddCommand(cliRecipe.Cmd)
	cli.ExecuteContext(ctx)
}

// newLogger builds the process logger: JSON in production, text otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	logCfg := observability.DefaultLogConfig()
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	if cfg.IsProduction() {
		logCfg.Format = observability.LogFormatJSON
	}
	return observability.NewLogger(logCfg)
}

// newPublisher selects the event publisher: RabbitMQ when a broker URL is
// configured, the in-process bus with the local subscribers when events
// are enabled without a broker, and a no-op publisher when events are off.
func newPublisher(cfg *config.Config, logger *slog.Logger) eventbus.Publisher {
	if !cfg.EventsEnabled {
		return eventbus.NewNoopPublisher(logger)
	}

	if cfg.RabbitMQURL == "" {
		bus := eventbus.NewInProcessEventBus(logger)
		bus.RegisterConsumer(subscribers.NewCatalogActivitySubscriber(logger))
		return bus
	}

	publisher, err := eventbus.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange, logger)
	if err != nil {
		logger.Warn("falling back to noop publisher", "error", err)
		return eventbus.NewNoopPublisher(logger)
	}
	return publisher
}
