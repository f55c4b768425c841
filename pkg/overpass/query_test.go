package overpass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubwayRelationsInArea(t *testing.T) {
	query := SubwayRelationsInArea("Czech Republic")

	assert.Contains(t, query, `area["name:en"="Czech Republic"]->.a;`)
	assert.Contains(t, query, `if (!area.a) { area["name"="Czech Republic"]->.a; }`)
	assert.Contains(t, query, `if (!area.a) { area["ISO3166-1"="Czech Republic"]->.a; }`)
	assert.Contains(t, query, `relation(area.a)["route"="subway"];`)
	assert.Contains(t, query, "out ids tags;")
}

func TestSubwayRelationsInAreaEscapes(t *testing.T) {
	query := SubwayRelationsInArea(`Bad"Name\`)

	assert.Contains(t, query, `area["name:en"="Bad\"Name\\"]->.a;`)
}

func TestRelationWays(t *testing.T) {
	assert.Equal(t, "[out:json][timeout:45];\nrelation(42);\nway(r);\nout geom;", RelationWays(42))
}
