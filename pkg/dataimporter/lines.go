package dataimporter

import (
	"context"
	"fmt"

	"github.com/mirinda123/MetroDrifter/pkg/metro"
	"github.com/mirinda123/MetroDrifter/pkg/overpass"
	"github.com/mirinda123/MetroDrifter/pkg/util"
	"github.com/rs/zerolog/log"
)

// FetchCountryLines queries the subway relations of a country. When the country name finds
// nothing its configured aliases are tried in order, alias is the one that produced lines.
func (i *Importer) FetchCountryLines(ctx context.Context, country string) (lines []metro.Line, alias string, err error) {
	lines, err = i.fetchLines(ctx, country)
	if err != nil || len(lines) > 0 {
		return lines, "", err
	}

	for _, candidate := range i.CountryAliases[country] {
		log.Debug().Str("country", country).Str("alias", candidate).Msg("No lines found, trying alias")

		lines, err = i.fetchLines(ctx, candidate)
		if err != nil {
			return nil, "", err
		}

		if len(lines) > 0 {
			return lines, candidate, nil
		}
	}

	return lines, "", nil
}

func (i *Importer) fetchLines(ctx context.Context, area string) ([]metro.Line, error) {
	response, err := i.Overpass.Query(ctx, overpass.SubwayRelationsInArea(area))
	if err != nil {
		return nil, fmt.Errorf("lines of %s: %w", area, err)
	}

	return LinesFromResponse(response), nil
}

// LinesFromResponse turns route relations into line records, dropping relations that have
// neither a ref nor a name
func LinesFromResponse(response *overpass.Response) []metro.Line {
	relations := response.Relations()
	lines := make([]metro.Line, 0, len(relations))

	for _, relation := range relations {
		lines = append(lines, metro.NewLine(relation.ID, relation.Tags))
	}
	util.InPlaceFilter(&lines, metro.Line.Usable)

	return lines
}
