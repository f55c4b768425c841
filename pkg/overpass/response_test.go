package overpass

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseRelations(t *testing.T) {
	var response Response
	err := json.Unmarshal([]byte(`{
		"version": 0.6,
		"elements": [
			{"type": "relation", "id": 2, "tags": {"ref": "1", "name": "Line 1"}},
			{"type": "node", "id": 3},
			{"type": "relation", "id": 1}
		]
	}`), &response)
	require.NoError(t, err)

	relations := response.Relations()
	require.Len(t, relations, 2)
	assert.Equal(t, int64(2), relations[0].ID)
	assert.Equal(t, "Line 1", relations[0].Tags["name"])
	assert.Equal(t, int64(1), relations[1].ID)
	assert.Nil(t, relations[1].Tags)
}

func TestResponseWayGeometries(t *testing.T) {
	var response Response
	err := json.Unmarshal([]byte(`{
		"elements": [
			{"type": "way", "id": 10, "geometry": [{"lat": 1.5, "lon": 2.5}, {"lat": 3, "lon": 4}]},
			{"type": "way", "id": 11},
			{"type": "way", "id": 12, "geometry": []},
			{"type": "node", "id": 13, "geometry": [{"lat": 9, "lon": 9}]}
		]
	}`), &response)
	require.NoError(t, err)

	geometries := response.WayGeometries()
	require.Len(t, geometries, 2)
	assert.Equal(t, orb.LineString{{2.5, 1.5}, {4, 3}}, geometries[0])
	assert.Empty(t, geometries[1])
}

func TestResponseInvalidGeometry(t *testing.T) {
	var response Response
	err := json.Unmarshal([]byte(`{"elements": [{"type": "way", "geometry": "nope"}]}`), &response)
	assert.Error(t, err)
}
