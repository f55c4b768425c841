package citymatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableLoads(t *testing.T) {
	table := DefaultTable()

	assert.Equal(t, "Chicago", table.Networks[`Chicago "L"`])
	assert.Equal(t, "東京", table.Networks["京成;都営地下鉄"])
	assert.Equal(t, "Praha", table.Fallback["Czech_Republic"])
	assert.Len(t, table.Fallback, 8)
}

func TestLoadTableRejectsBadDocument(t *testing.T) {
	_, err := LoadTable([]byte("networks: [not, a, map]"))
	assert.Error(t, err)
}

func TestInferCity(t *testing.T) {
	tests := []struct {
		description string
		network     string
		country     string
		name        string
		expected    string
	}{
		{"exact network", "U-Bahn Wien", "Austria", "U1", "Wien"},
		{"network is trimmed", "  BVG ", "Germany", "U2", "Berlin"},
		{"exact composite network wins over parts", "京成;都営地下鉄", "Japan", "", "東京"},
		{"first known part wins", "Unknown Co; MBTA ; SEPTA", "United_States", "", "Boston"},
		{"empty parts are ignored", ";;RATP", "France", "", "Paris"},
		{"chinese network suffix", "乌鲁木齐地铁", "China", "", "乌鲁木齐"},
		{"chinese rail transit suffix", "某某轨道交通", "China", "", "某某"},
		{"japanese network suffix", "横須賀市営", "Japan", "", "横須賀"},
		{"japanese bare city suffix", "川崎市", "Japan", "", "川崎"},
		{"chinese name suffix", "", "China", "南通地铁1号线", "南通"},
		{"unmatched network falls through to name", "Some Operator", "China", "眉山城际快线", "眉山"},
		{"china name rule", "", "China", "郑许线", "郑州"},
		{"china name rule order", "", "China", "青岛站 - 幸福 - 先锋", "青岛"},
		{"jiaxing either order", "", "China", "西塘 - 嘉善", "嘉兴"},
		{"case insensitive rule", "", "United_States", "SKYLINE", "Honolulu"},
		{"rule scoped to its country", "", "Canada", "Skyline", "Unknown"},
		{"brazil second rule", "", "Brazil", "Linha 1 Ceilândia", "Brasília"},
		{"canada rule", "", "Canada", "Ligne verte", "Montréal"},
		{"chile rule", "", "Chile", "Línea 4A", "Santiago"},
		{"italy rule", "", "Italy", "Metro C", "Roma"},
		{"india green line", "", "India", "Green Line (u/c)", "बेंगलुरु"},
		{"iran rule", "", "Iran", "خط ۱", "اصفهان"},
		{"russia second rule", "", "Russia", "Сормовско-Мещерская линия", "Нижний Новгород"},
		{"japan tokyo rule", "", "Japan", "東京メトロ副都心線", "東京"},
		{"egypt rule", "", "Egypt", "Alexandria Metro", "الإسكندرية"},
		{"fallback", "", "Portugal", "Linha Azul", "Lisboa"},
		{"fallback after unmatched network", "Nobody", "Sweden", "Gröna linjen", "Stockholm"},
		{"blank name skips name rules", "", "Chile", "   ", "Unknown"},
		{"unknown", "", "Atlantis", "Line 1", "Unknown"},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			assert.Equal(t, test.expected, InferCity(test.network, test.country, test.name))
		})
	}
}

func TestInferReportsSource(t *testing.T) {
	assert.Equal(t, SourceNetwork, defaultMatcher.Infer("MTR", "China", "").Source)
	assert.Equal(t, SourceNetworkPart, defaultMatcher.Infer("X;MTR", "China", "").Source)
	assert.Equal(t, SourceNetworkSuffix, defaultMatcher.Infer("某地铁", "China", "").Source)
	assert.Equal(t, SourceNameSuffix, defaultMatcher.Infer("", "China", "某轨道交通1号线").Source)
	assert.Equal(t, SourceNameRule, defaultMatcher.Infer("", "China", "万胜围").Source)
	assert.Equal(t, SourceFallback, defaultMatcher.Infer("", "Greece", "").Source)
	assert.Equal(t, SourceUnknown, defaultMatcher.Infer("", "Nowhere", "").Source)
}

func TestMatcherWithCustomTable(t *testing.T) {
	table, err := LoadTable([]byte("networks:\n  \"Metro X\": \"Xville\"\n"))
	require.NoError(t, err)

	matcher := NewMatcher(table, nil)

	assert.Equal(t, "Xville", matcher.InferCity("Metro X", "Anywhere", ""))
	assert.Equal(t, UnknownCity, matcher.InferCity("", "China", "万胜围"))
}
