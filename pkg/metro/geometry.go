package metro

import "github.com/paulmach/orb"

const (
	GeoJSONFeatureCollection = "FeatureCollection"
	GeoJSONFeature           = "Feature"
	GeoJSONLineString        = "LineString"
)

// Geometry is the stored GeoJSON record of one line.
//
// orb/geojson is not used for the wire format as it writes empty properties as null,
// the viewer expects an object.
type Geometry struct {
	Type     string            `json:"type"`
	Features []GeometryFeature `json:"features"`
}

type GeometryFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   LineStringGeometry     `json:"geometry"`
}

type LineStringGeometry struct {
	Type        string         `json:"type"`
	Coordinates orb.LineString `json:"coordinates"`
}

// NewGeometry builds the geometry record of a line, one LineString feature per way in the
// order given. Each way is an ordered list of [lon, lat] points.
func NewGeometry(ways []orb.LineString) *Geometry {
	geometry := &Geometry{
		Type:     GeoJSONFeatureCollection,
		Features: make([]GeometryFeature, 0, len(ways)),
	}

	for _, way := range ways {
		geometry.Features = append(geometry.Features, newLineStringFeature(way, nil))
	}

	return geometry
}

func newLineStringFeature(points orb.LineString, properties map[string]interface{}) GeometryFeature {
	if points == nil {
		points = orb.LineString{}
	}

	copiedProperties := make(map[string]interface{}, len(properties))
	for key, value := range properties {
		copiedProperties[key] = value
	}

	return GeometryFeature{
		Type:       GeoJSONFeature,
		Properties: copiedProperties,
		Geometry: LineStringGeometry{
			Type:        GeoJSONLineString,
			Coordinates: points,
		},
	}
}

// Normalise fills in the parts a hand-edited or older file may leave out so the record
// always serialises with a features array and property objects.
func (g *Geometry) Normalise() {
	if g.Type == "" {
		g.Type = GeoJSONFeatureCollection
	}
	if g.Features == nil {
		g.Features = []GeometryFeature{}
	}

	for i := range g.Features {
		if g.Features[i].Properties == nil {
			g.Features[i].Properties = map[string]interface{}{}
		}
		if g.Features[i].Geometry.Coordinates == nil {
			g.Features[i].Geometry.Coordinates = orb.LineString{}
		}
	}
}

// Bound is the bounding box over every feature. ok is false when there are no coordinates.
func (g *Geometry) Bound() (orb.Bound, bool) {
	var bound orb.Bound
	found := false

	for _, feature := range g.Features {
		featureBound := feature.Geometry.Coordinates.Bound()
		if featureBound.IsEmpty() {
			continue
		}

		if !found {
			bound = featureBound
			found = true
		} else {
			bound = bound.Union(featureBound)
		}
	}

	return bound, found
}

// Centre is the centre of the bounding box of every feature
func (g *Geometry) Centre() (orb.Point, bool) {
	bound, ok := g.Bound()
	if !ok {
		return orb.Point{}, false
	}

	return bound.Center(), true
}

// ScaleAndTranslate scales every LineString around the geometry centre by scale and moves
// that centre onto target. Features of any other type are copied through untouched.
// The receiver is not modified.
func (g *Geometry) ScaleAndTranslate(scale float64, target orb.Point) *Geometry {
	if len(g.Features) == 0 {
		return g
	}

	centre, ok := g.Centre()
	if !ok {
		return g
	}

	transformed := &Geometry{
		Type:     g.Type,
		Features: make([]GeometryFeature, 0, len(g.Features)),
	}

	for _, feature := range g.Features {
		if feature.Geometry.Type != GeoJSONLineString {
			transformed.Features = append(transformed.Features, feature)
			continue
		}

		moved := make(orb.LineString, len(feature.Geometry.Coordinates))
		for i, point := range feature.Geometry.Coordinates {
			moved[i] = orb.Point{
				target[0] + scale*(point[0]-centre[0]),
				target[1] + scale*(point[1]-centre[1]),
			}
		}

		transformed.Features = append(transformed.Features, newLineStringFeature(moved, feature.Properties))
	}

	return transformed
}
