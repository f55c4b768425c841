package dataimporter

import (
	"context"
	"time"

	"github.com/mirinda123/MetroDrifter/pkg/config"
	"github.com/mirinda123/MetroDrifter/pkg/datastore"
	"github.com/mirinda123/MetroDrifter/pkg/metro"
	"github.com/mirinda123/MetroDrifter/pkg/overpass"
	"github.com/mirinda123/MetroDrifter/pkg/util"
	"github.com/rs/zerolog/log"
)

type Querier interface {
	Query(ctx context.Context, query string) (*overpass.Response, error)
}

// Importer mirrors subway lines and their geometry from Overpass into the data store
type Importer struct {
	Store    *datastore.Store
	Overpass Querier

	CountryAliases      map[string][]string
	CountryPause        time.Duration
	GeometryBatchPause  time.Duration
	GeometryConcurrency int
}

type DownloadReport struct {
	Countries       []string
	FailedCountries []string
	Geometry        GeometryReport
	Registry        []string
}

func NewImporter(cfg *config.Config) *Importer {
	return &Importer{
		Store:               datastore.New(cfg.LinesDir(), cfg.GeometryDir(), cfg.CountriesFile()),
		Overpass:            overpass.NewClient(cfg.Overpass),
		CountryAliases:      cfg.Download.CountryAliases,
		CountryPause:        cfg.Download.CountryPause,
		GeometryBatchPause:  cfg.Download.GeometryBatchPause,
		GeometryConcurrency: cfg.Download.GeometryConcurrency,
	}
}

// Download refreshes the lines list of every country in order, then fetches the geometry of
// every known line that has none yet and finally rewrites the country registry.
// A failing country or relation is logged and skipped. When ctx is cancelled the run stops
// early, the registry is still written and ctx's error is returned.
func (i *Importer) Download(ctx context.Context, countries []string) (*DownloadReport, error) {
	if err := i.Store.EnsureDirs(); err != nil {
		return nil, err
	}

	registry := ExistingCountries(i.Store)
	knownIDs, err := i.Store.KnownLineIDs()
	if err != nil {
		return nil, err
	}

	report := &DownloadReport{}

	for _, country := range countries {
		if ctx.Err() != nil {
			break
		}

		lines, err := i.RefreshCountry(ctx, country)
		if err != nil {
			log.Error().Err(err).Str("country", country).Msg("Failed to download lines list")
			report.FailedCountries = append(report.FailedCountries, country)
		} else {
			for _, id := range metro.IDs(lines) {
				knownIDs[id] = struct{}{}
			}

			registry[country] = struct{}{}
			report.Countries = append(report.Countries, country)
		}

		if util.Sleep(ctx, i.CountryPause) != nil {
			break
		}
	}

	if ctx.Err() == nil {
		report.Geometry = i.DownloadGeometry(ctx, knownIDs)
	}

	report.Registry, err = WriteRegistry(i.Store, registry)
	if err != nil {
		return report, err
	}

	log.Info().
		Int("countries", len(report.Registry)).
		Int("downloaded_countries", len(report.Countries)).
		Int("downloaded_geometry", len(report.Geometry.Downloaded)).
		Msg("Download finished")

	return report, ctx.Err()
}

// RefreshCountry downloads the lines list of one country and overwrites its file
func (i *Importer) RefreshCountry(ctx context.Context, country string) ([]metro.Line, error) {
	key := metro.CountryToKey(country)

	if i.Store.LinesExist(key) {
		log.Info().Str("country", country).Msg("Refreshing lines list")
	} else {
		log.Info().Str("country", country).Msg("Downloading lines list")
	}

	lines, alias, err := i.FetchCountryLines(ctx, country)
	if err != nil {
		return nil, err
	}

	if err := i.Store.WriteLines(key, lines); err != nil {
		return nil, err
	}

	event := log.Info().
		Str("country", country).
		Int("lines", len(lines)).
		Int("coloured", metro.CountColoured(lines))
	if alias != "" {
		event = event.Str("alias", alias)
	}
	event.Msg("Lines list saved")

	return lines, nil
}
