package dataimporter

import (
	"github.com/mirinda123/MetroDrifter/pkg/datastore"
	"github.com/mirinda123/MetroDrifter/pkg/metro"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ExistingCountries is the set of display names already known before a run.
// The registry file wins when it can be read, otherwise the lines file names are used.
func ExistingCountries(store *datastore.Store) map[string]struct{} {
	countries := map[string]struct{}{}

	registered, err := store.ReadCountries()
	if err == nil {
		for _, country := range registered {
			countries[metro.KeyToCountry(country)] = struct{}{}
		}

		return countries
	}

	keys, err := store.LineKeys()
	if err != nil {
		log.Debug().Err(err).Msg("No existing lines files")
		return countries
	}

	for _, key := range keys {
		countries[metro.KeyToCountry(key)] = struct{}{}
	}

	return countries
}

// WriteRegistry stores the countries sorted ascending and returns what was written
func WriteRegistry(store *datastore.Store, countries map[string]struct{}) ([]string, error) {
	registry := maps.Keys(countries)
	slices.Sort(registry)

	if err := store.WriteCountries(registry); err != nil {
		return nil, err
	}

	return registry, nil
}
