package metar

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// visibilityMilesRe matches a statute-miles visibility token: an optional
// "M" (less than) prefix and a whole number or fraction, e.g. "10SM",
// "1/2SM", "M1/4SM".
var visibilityMilesRe = regexp.MustCompile(`^(M?)(\d+(?:/\d+)?)SM$`)

func decodeVisibility(s *session, token string) outcome {
	// CAVOK stands in for the visibility, weather, and cloud groups at once.
	if token == "CAVOK" {
		s.conditions = nil
		s.obs.Conditions = ""
		s.obs.Visibility = &Visibility{Qualifier: VisibilityAtLeast, Miles: 7}
		s.obs.CloudLayer = &CloudLayer{Description: "clear skies"}
		return outSkipAhead
	}

	// A lone digit is the whole-mile part of a mixed number ("1 1/2SM").
	// Hold it until the fraction token arrives.
	if len(token) == 1 && isDigits(token) {
		s.pendingMiles = token
		return outConsumed
	}

	if m := visibilityMilesRe.FindStringSubmatch(token); m != nil {
		qualifier := VisibilityExact
		if m[1] == "M" {
			qualifier = VisibilityAtMost
		}
		miles := parseMiles(m[2])
		if s.pendingMiles != "" {
			whole, _ := strconv.Atoi(s.pendingMiles)
			miles += float64(whole)
			s.pendingMiles = ""
		}
		s.obs.Visibility = &Visibility{Qualifier: qualifier, Miles: miles}
		return outConsumed
	}

	// Kilometer visibility shows up in some non-US reports. Recognized but
	// unsupported: the token is consumed and the value discarded.
	if v := strings.TrimSuffix(token, "KM"); v != token && isDigits(v) {
		return outConsumed
	}

	// A bare 4-digit group is visibility in meters.
	if len(token) == 4 && isDigits(token) {
		meters, _ := strconv.ParseFloat(token, 64)
		miles := metersToMiles(meters)
		if miles <= 5 {
			miles = math.Round(miles*10) / 10
		} else {
			miles = math.Round(miles)
		}
		s.obs.Visibility = &Visibility{Qualifier: VisibilityExact, Miles: miles}
		return outConsumed
	}

	return outNoMatch
}

// parseMiles evaluates a whole number or "n/d" fraction.
func parseMiles(value string) float64 {
	if num, den, ok := strings.Cut(value, "/"); ok {
		n, _ := strconv.ParseFloat(num, 64)
		d, _ := strconv.ParseFloat(den, 64)
		if d == 0 {
			return 0
		}
		return n / d
	}
	v, _ := strconv.ParseFloat(value, 64)
	return v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
