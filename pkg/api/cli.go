package api

import (
	"github.com/mirinda123/MetroDrifter/pkg/config"
	"github.com/mirinda123/MetroDrifter/pkg/datastore"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Serves the downloaded map data",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Usage: "listen target for the web server, overrides the configuration",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					listen := cfg.WebAPI.Listen
					if c.IsSet("listen") {
						listen = c.String("listen")
					}

					store := datastore.New(cfg.LinesDir(), cfg.GeometryDir(), cfg.CountriesFile())
					app := NewApp(store)

					go func() {
						<-c.Context.Done()
						app.Shutdown()
					}()

					log.Info().Str("listen", listen).Str("data", cfg.DataDir).Msg("Starting web API")

					return app.Listen(listen)
				},
			},
		},
	}
}
