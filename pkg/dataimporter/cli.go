package dataimporter

import (
	"github.com/mirinda123/MetroDrifter/pkg/config"
	"github.com/mirinda123/MetroDrifter/pkg/util"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Mirror OpenStreetMap subway lines and geometry from Overpass",
		Subcommands: []*cli.Command{
			{
				Name:      "download",
				Usage:     "Refresh line lists and download missing line geometry",
				ArgsUsage: "[country...]",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					countries := util.RemoveDuplicateStrings(c.Args().Slice(), nil)
					if len(countries) == 0 {
						countries = cfg.Download.DefaultCountries
					}

					log.Info().Int("count", len(countries)).Strs("countries", countries).Msg("Downloading map data via Overpass API")

					_, err = NewImporter(cfg).Download(c.Context, countries)

					return err
				},
			},
		},
	}
}
