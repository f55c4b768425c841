package metro

import (
	"regexp"
	"strings"
)

// Line is the normalised form of one subway route relation.
type Line struct {
	ID      int64  `json:"id"`
	Ref     string `json:"ref,omitempty"`
	Name    string `json:"name,omitempty"`
	Network string `json:"network,omitempty"`
	Colour  string `json:"colour,omitempty"`

	// City is only filled in by the city annotator
	City string `json:"city,omitempty"`
}

var bareHexColourRegex = regexp.MustCompile(`^(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// NewLine builds a Line from the tags of a route relation
func NewLine(id int64, tags map[string]string) Line {
	return Line{
		ID:      id,
		Ref:     tags["ref"],
		Name:    tags["name"],
		Network: tags["network"],
		Colour:  ColourFromTags(tags),
	}
}

// Usable reports whether the line can be shown to a user at all
func (l Line) Usable() bool {
	return l.Ref != "" || l.Name != ""
}

// ColourFromTags prefers the colour tag and only looks at color when colour is not set
func ColourFromTags(tags map[string]string) string {
	raw, ok := tags["colour"]
	if !ok {
		raw = tags["color"]
	}

	return NormaliseColour(raw)
}

// NormaliseColour trims the value and prefixes bare 3 or 6 digit hex with #.
// Anything else, such as CSS colour names, is returned trimmed but otherwise untouched.
func NormaliseColour(raw string) string {
	colour := strings.TrimSpace(raw)
	if colour == "" {
		return ""
	}

	if !strings.HasPrefix(colour, "#") && bareHexColourRegex.MatchString(colour) {
		return "#" + colour
	}

	return colour
}

// IDs returns the relation ids of lines in their stored order
func IDs(lines []Line) []int64 {
	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ID)
	}

	return ids
}

// CountColoured returns how many lines carry a colour
func CountColoured(lines []Line) int {
	count := 0
	for _, line := range lines {
		if line.Colour != "" {
			count++
		}
	}

	return count
}
