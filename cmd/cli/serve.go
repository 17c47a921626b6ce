package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/flowbaker/workflow-importer/internal/controllers"
	"github.com/flowbaker/workflow-importer/internal/server"
	"github.com/flowbaker/workflow-importer/pkg/blocks"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the import HTTP service",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	return cmd
}

func runServe() error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	if config.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	registry := blocks.NewRegistry()

	importController := controllers.NewImportController(controllers.ImportControllerDependencies{
		BlockRegistry:    registry,
		BlockTypeChecker: registry,
	})

	app := server.NewHTTPServer(server.HTTPServerDependencies{
		ImportController: importController,
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()

		log.Info().Msg("Shutting down import service")

		if err := app.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Failed to shut down HTTP server")
		}
	}()

	log.Info().Str("address", config.HTTPAddress).Msg("Starting import service")

	if err := app.Listen(config.HTTPAddress); err != nil {
		return err
	}

	return nil
}
