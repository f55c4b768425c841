package overpass

import (
	"encoding/json"

	"github.com/paulmach/orb"
)

// Response is the subset of an Overpass JSON document the importer reads
type Response struct {
	Version   float64   `json:"version,omitempty"`
	Generator string    `json:"generator,omitempty"`
	Elements  []Element `json:"elements"`
}

type Element struct {
	Type     string            `json:"type"`
	ID       int64             `json:"id,omitempty"`
	Tags     map[string]string `json:"tags,omitempty"`
	Geometry []Node            `json:"geometry,omitempty"`

	// Set when the element carried a geometry array, even an empty one
	hasGeometry bool
}

type Node struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

const (
	ElementTypeNode     = "node"
	ElementTypeWay      = "way"
	ElementTypeRelation = "relation"
)

// Relations returns the relation elements in the order Overpass returned them
func (r *Response) Relations() []Element {
	return r.elementsOfType(ElementTypeRelation)
}

// WayGeometries returns the coordinates of every way that came back with geometry,
// as [lon, lat] line strings in the order Overpass returned them
func (r *Response) WayGeometries() []orb.LineString {
	var lineStrings []orb.LineString

	for _, element := range r.elementsOfType(ElementTypeWay) {
		if !element.hasGeometry {
			continue
		}

		lineString := make(orb.LineString, 0, len(element.Geometry))
		for _, node := range element.Geometry {
			lineString = append(lineString, orb.Point{node.Lon, node.Lat})
		}
		lineStrings = append(lineStrings, lineString)
	}

	return lineStrings
}

// UnmarshalJSON records whether a geometry array was present at all. Ways without one are
// skipped by WayGeometries, an empty array still counts.
func (e *Element) UnmarshalJSON(data []byte) error {
	type plainElement Element

	var decoded struct {
		plainElement
		RawGeometry json.RawMessage `json:"geometry"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*e = Element(decoded.plainElement)
	e.Geometry = nil
	e.hasGeometry = false

	if len(decoded.RawGeometry) > 0 && string(decoded.RawGeometry) != "null" {
		var nodes []Node
		if err := json.Unmarshal(decoded.RawGeometry, &nodes); err != nil {
			return err
		}

		e.Geometry = nodes
		e.hasGeometry = true
	}

	return nil
}

func (r *Response) elementsOfType(elementType string) []Element {
	var elements []Element
	for _, element := range r.Elements {
		if element.Type == elementType {
			elements = append(elements, element)
		}
	}

	return elements
}
