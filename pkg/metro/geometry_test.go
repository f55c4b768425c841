package metro

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeometryWireFormat(t *testing.T) {
	geometry := NewGeometry([]orb.LineString{
		{{116.1, 39.9}, {116.2, 39.95}},
		{{116.3, 40}},
	})

	data, err := json.Marshal(geometry)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "FeatureCollection",
		"features": [
			{"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[116.1, 39.9], [116.2, 39.95]]}},
			{"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[116.3, 40]]}}
		]
	}`, string(data))
}

func TestNewGeometryEmpty(t *testing.T) {
	data, err := json.Marshal(NewGeometry(nil))
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))

	data, err = json.Marshal(NewGeometry([]orb.LineString{nil}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[]}}]}`, string(data))
}

func TestNormalise(t *testing.T) {
	var geometry Geometry
	require.NoError(t, json.Unmarshal([]byte(`{"type":"FeatureCollection","features":[{"type":"Feature","properties":null,"geometry":{"type":"LineString","coordinates":null}}]}`), &geometry))

	geometry.Normalise()

	assert.NotNil(t, geometry.Features[0].Properties)
	assert.NotNil(t, geometry.Features[0].Geometry.Coordinates)

	var empty Geometry
	empty.Normalise()
	assert.Equal(t, GeoJSONFeatureCollection, empty.Type)
	assert.NotNil(t, empty.Features)
}

func TestCentreUsesBoundingBox(t *testing.T) {
	geometry := NewGeometry([]orb.LineString{
		{{0, 0}, {2, 0}},
		{},
		{{2, 4}},
	})

	centre, ok := geometry.Centre()
	require.True(t, ok)
	assert.Equal(t, orb.Point{1, 2}, centre)

	_, ok = NewGeometry(nil).Centre()
	assert.False(t, ok)
}

func TestScaleAndTranslate(t *testing.T) {
	geometry := NewGeometry([]orb.LineString{{{0, 0}, {2, 2}}, {{5, 5}}})

	moved := geometry.ScaleAndTranslate(2, orb.Point{10, 20})

	require.Len(t, moved.Features, 2)
	// the bbox {0,0}-{5,5} is centred on {2.5,2.5}
	assert.Equal(t, orb.LineString{{5, 15}, {9, 19}}, moved.Features[0].Geometry.Coordinates)
	assert.Equal(t, orb.LineString{{15, 25}}, moved.Features[1].Geometry.Coordinates)

	// the source geometry is left alone
	assert.Equal(t, orb.LineString{{0, 0}, {2, 2}}, geometry.Features[0].Geometry.Coordinates)
}

func TestScaleAndTranslateSkipsOtherGeometryTypes(t *testing.T) {
	geometry := NewGeometry([]orb.LineString{{{0, 0}, {2, 2}}})
	geometry.Features = append(geometry.Features, GeometryFeature{
		Type:       GeoJSONFeature,
		Properties: map[string]interface{}{"kind": "marker"},
		Geometry:   LineStringGeometry{Type: "MultiPoint", Coordinates: orb.LineString{{7, 7}}},
	})

	moved := geometry.ScaleAndTranslate(1, orb.Point{0, 0})

	// the marker still counts towards the bbox {0,0}-{7,7}
	assert.Equal(t, orb.LineString{{-3.5, -3.5}, {-1.5, -1.5}}, moved.Features[0].Geometry.Coordinates)
	assert.Equal(t, geometry.Features[1], moved.Features[1])
}

func TestScaleAndTranslateIdentity(t *testing.T) {
	geometry := NewGeometry([]orb.LineString{{{1, 1}, {3, 3}}})

	moved := geometry.ScaleAndTranslate(1, orb.Point{2, 2})

	assert.Equal(t, orb.LineString{{1, 1}, {3, 3}}, moved.Features[0].Geometry.Coordinates)
}

func TestScaleAndTranslateEmpty(t *testing.T) {
	empty := NewGeometry(nil)
	assert.Same(t, empty, empty.ScaleAndTranslate(3, orb.Point{1, 1}))
}
