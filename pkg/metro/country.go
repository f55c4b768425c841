package metro

import (
	"regexp"
	"strings"
)

var whitespaceRunRegex = regexp.MustCompile(`\s+`)

// CountryToKey turns a display name into the key used for file names and country rules,
// eg. "Czech Republic" -> "Czech_Republic"
func CountryToKey(name string) string {
	return whitespaceRunRegex.ReplaceAllString(name, "_")
}

// KeyToCountry restores the display name, eg. "South_Korea" -> "South Korea"
func KeyToCountry(key string) string {
	return strings.TrimSpace(strings.ReplaceAll(key, "_", " "))
}
