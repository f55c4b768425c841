package metro

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormaliseColour(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"FF0000", "#FF0000"},
		{"f00", "#f00"},
		{"red", "red"},
		{"  #00ff00 ", "#00ff00"},
		{"  abc123\t", "#abc123"},
		{"ff00", "ff00"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormaliseColour(tt.raw), "raw %q", tt.raw)
	}
}

func TestColourFromTagsPrefersColour(t *testing.T) {
	assert.Equal(t, "#123456", ColourFromTags(map[string]string{"colour": "123456", "color": "red"}))
	assert.Equal(t, "red", ColourFromTags(map[string]string{"color": "red"}))
	// an empty colour tag still wins over color
	assert.Equal(t, "", ColourFromTags(map[string]string{"colour": " ", "color": "red"}))
	assert.Equal(t, "", ColourFromTags(nil))
}

func TestNewLineOmitsBlankColour(t *testing.T) {
	line := NewLine(42, map[string]string{"ref": "1", "name": "Line 1", "network": "Metro", "colour": ""})

	data, err := json.Marshal(line)
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":42,"ref":"1","name":"Line 1","network":"Metro"}`, string(data))
	assert.NotContains(t, string(data), "colour")
}

func TestUsable(t *testing.T) {
	assert.True(t, Line{ID: 1, Ref: "A"}.Usable())
	assert.True(t, Line{ID: 1, Name: "Line A"}.Usable())
	assert.False(t, Line{ID: 1, Network: "Metro"}.Usable())
}

func TestCountryKeys(t *testing.T) {
	assert.Equal(t, "Czech_Republic", CountryToKey("Czech Republic"))
	assert.Equal(t, "United_States", CountryToKey("United  States"))
	assert.Equal(t, "South Korea", KeyToCountry("South_Korea"))
	assert.Equal(t, "Japan", KeyToCountry("Japan"))
}

func TestIDsAndCountColoured(t *testing.T) {
	lines := []Line{{ID: 3, Colour: "#fff"}, {ID: 1}, {ID: 2, Colour: "red"}}

	assert.Equal(t, []int64{3, 1, 2}, IDs(lines))
	assert.Equal(t, 2, CountColoured(lines))
}
