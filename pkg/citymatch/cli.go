package citymatch

import (
	"github.com/kr/pretty"
	"github.com/mirinda123/MetroDrifter/pkg/config"
	"github.com/mirinda123/MetroDrifter/pkg/datastore"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "city-annotator",
		Usage: "Infer the city of every downloaded metro line",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Add the city to every line in the lines directory",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					store := datastore.New(cfg.LinesDir(), cfg.GeometryDir(), cfg.CountriesFile())
					_, err = NewAnnotator(store).Run()

					return err
				},
			},
			{
				Name:  "infer",
				Usage: "Print the city inferred for a single line",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "country",
						Usage:    "Country key of the line, e.g. Czech_Republic",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "network",
						Usage: "Value of the network tag",
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "Value of the name tag",
					},
				},
				Action: func(c *cli.Context) error {
					inference := defaultMatcher.Infer(c.String("network"), c.String("country"), c.String("name"))
					pretty.Println(inference)

					return nil
				},
			},
		},
	}
}
