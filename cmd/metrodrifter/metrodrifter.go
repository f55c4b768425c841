package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/mirinda123/MetroDrifter/pkg/api"
	"github.com/mirinda123/MetroDrifter/pkg/citymatch"
	"github.com/mirinda123/MetroDrifter/pkg/dataimporter"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")

	if os.Getenv("METRODRIFTER_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("METRODRIFTER_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	log.Logger = log.Logger.With().Str("run", uuid.NewString()).Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:        "metrodrifter",
		Description: "Mirrors OpenStreetMap subway lines into static files and serves them",

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to a YAML configuration file",
				EnvVars: []string{"METRODRIFTER_CONFIG"},
			},
		},

		Commands: []*cli.Command{
			dataimporter.RegisterCLI(),
			citymatch.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.RunContext(ctx, os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
