package overpass

import (
	"fmt"
	"strings"
)

const queryHeader = "[out:json][timeout:45];"

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// SubwayRelationsInArea selects every subway route relation inside the country's area.
// The area is matched on its English name first, then its local name, then its ISO code,
// the first one Overpass finds wins.
func SubwayRelationsInArea(country string) string {
	area := stringEscaper.Replace(country)

	return strings.Join([]string{
		queryHeader,
		fmt.Sprintf(`area["name:en"="%s"]->.a;`, area),
		fmt.Sprintf(`if (!area.a) { area["name"="%s"]->.a; }`, area),
		fmt.Sprintf(`if (!area.a) { area["ISO3166-1"="%s"]->.a; }`, area),
		`relation(area.a)["route"="subway"];`,
		`out ids tags;`,
	}, "\n")
}

// RelationWays selects the member ways of one relation with their full geometry
func RelationWays(relationID int64) string {
	return strings.Join([]string{
		queryHeader,
		fmt.Sprintf("relation(%d);", relationID),
		"way(r);",
		"out geom;",
	}, "\n")
}
