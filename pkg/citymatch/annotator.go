package citymatch

import (
	"fmt"

	"github.com/mirinda123/MetroDrifter/pkg/datastore"
	"github.com/rs/zerolog/log"
)

type AnnotateReport struct {
	FilesProcessed int
	FilesSkipped   int
	LinesUpdated   int
}

// Annotator rewrites every lines file with the city of each line filled in
type Annotator struct {
	Store   *datastore.Store
	Matcher *Matcher
}

func NewAnnotator(store *datastore.Store) *Annotator {
	return &Annotator{
		Store:   store,
		Matcher: defaultMatcher,
	}
}

// Run processes the lines files in name order. Files that are not a JSON array of lines are
// logged and left untouched. A missing lines directory is an error.
func (a *Annotator) Run() (AnnotateReport, error) {
	var report AnnotateReport

	keys, err := a.Store.LineKeys()
	if err != nil {
		return report, fmt.Errorf("lines directory not found: %w", err)
	}

	for _, key := range keys {
		updated, err := a.AnnotateCountry(key)
		if err != nil {
			log.Error().Err(err).Str("file", a.Store.LinesPath(key)).Msg("Skipping lines file")
			report.FilesSkipped++
			continue
		}

		log.Info().Str("country", key).Int("lines", updated).Msg("Lines updated")
		report.FilesProcessed++
		report.LinesUpdated += updated
	}

	log.Info().
		Int("processed", report.FilesProcessed).
		Int("skipped", report.FilesSkipped).
		Msg("City annotation finished")

	return report, nil
}

// AnnotateCountry recomputes the city of every line in one country's file
func (a *Annotator) AnnotateCountry(countryKey string) (int, error) {
	lines, err := a.Store.ReadLines(countryKey)
	if err != nil {
		return 0, err
	}
	if lines == nil {
		return 0, fmt.Errorf("%s: not a list of lines", a.Store.LinesPath(countryKey))
	}

	for i := range lines {
		lines[i].City = a.Matcher.InferCity(lines[i].Network, countryKey, lines[i].Name)
	}

	if err := a.Store.WriteLines(countryKey, lines); err != nil {
		return 0, err
	}

	return len(lines), nil
}
