package citymatch

import (
	"regexp"
	"strings"
)

const UnknownCity = "Unknown"

// Where an inferred city came from
const (
	SourceNetwork       = "network"
	SourceNetworkPart   = "network-part"
	SourceNetworkSuffix = "network-suffix"
	SourceNameSuffix    = "name-suffix"
	SourceNameRule      = "name-rule"
	SourceFallback      = "fallback"
	SourceUnknown       = "unknown"
)

var (
	networkPartSeparator = regexp.MustCompile(`\s*;\s*`)

	// 上海地铁, 重庆轨道交通
	chineseNetworkSuffix = regexp.MustCompile(`^(.+?)(?:地铁|轨道交通)\s*$`)
	chineseNameSuffix    = regexp.MustCompile(`(.+?)(?:地铁|轨道交通)`)

	// 横浜市営地下鉄, 福岡市地下鉄, 名古屋市
	japaneseNetworkSuffix = regexp.MustCompile(`^(.+?)(?:市営地下鉄|市地下鉄|市営|市)$`)
)

type Inference struct {
	CountryKey string
	Network    string
	Name       string

	City   string
	Source string
}

type Matcher struct {
	Table     *Table
	NameRules []NameRule
}

func NewMatcher(table *Table, rules []NameRule) *Matcher {
	return &Matcher{
		Table:     table,
		NameRules: rules,
	}
}

var defaultMatcher = NewMatcher(DefaultTable(), DefaultNameRules)

// InferCity picks the city of a line with the shipped network table and name rules
func InferCity(network string, countryKey string, name string) string {
	return defaultMatcher.InferCity(network, countryKey, name)
}

func (m *Matcher) InferCity(network string, countryKey string, name string) string {
	return m.Infer(network, countryKey, name).City
}

// Infer tries, in order: the network table, the network suffix patterns, the name suffix
// pattern, the country's name rules and finally the country's fallback city.
func (m *Matcher) Infer(network string, countryKey string, name string) Inference {
	inference := Inference{
		CountryKey: countryKey,
		Network:    network,
		Name:       name,
	}

	found := func(city string, source string) Inference {
		inference.City = city
		inference.Source = source
		return inference
	}

	if trimmedNetwork := strings.TrimSpace(network); trimmedNetwork != "" {
		if city := m.Table.Networks[trimmedNetwork]; city != "" {
			return found(city, SourceNetwork)
		}

		for _, part := range networkPartSeparator.Split(trimmedNetwork, -1) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			if city := m.Table.Networks[part]; city != "" {
				return found(city, SourceNetworkPart)
			}
		}

		if match := chineseNetworkSuffix.FindStringSubmatch(trimmedNetwork); match != nil {
			return found(strings.TrimSpace(match[1]), SourceNetworkSuffix)
		}
		if match := japaneseNetworkSuffix.FindStringSubmatch(trimmedNetwork); match != nil {
			return found(strings.TrimSpace(match[1]), SourceNetworkSuffix)
		}
	}

	if trimmedName := strings.TrimSpace(name); trimmedName != "" {
		if match := chineseNameSuffix.FindStringSubmatch(trimmedName); match != nil {
			return found(strings.TrimSpace(match[1]), SourceNameSuffix)
		}

		for _, rule := range m.NameRules {
			if rule.Country == countryKey && rule.Pattern.MatchString(name) {
				return found(rule.City, SourceNameRule)
			}
		}
	}

	if city := m.Table.Fallback[countryKey]; city != "" {
		return found(city, SourceFallback)
	}

	return found(UnknownCity, SourceUnknown)
}
