package enrich

import (
	"regexp"
	"strings"

	"github.com/amishk599/jobinsight/internal/dataset"
)

var trailingCounty = regexp.MustCompile(`(?i)\bcounty$`)

// SplitLocation splits a "City, State" string on its first comma. A trailing
// "county" is dropped from the state. Without a comma the whole string is the
// state and the city is empty.
func SplitLocation(location string) (city, state string) {
	if dataset.IsMissing(location) {
		return "", ""
	}

	before, after, found := strings.Cut(location, ",")
	if !found {
		return "", strings.TrimSpace(location)
	}

	city = strings.TrimSpace(before)
	state = strings.TrimSpace(after)
	state = strings.TrimSpace(trailingCounty.ReplaceAllString(state, ""))
	return city, state
}
