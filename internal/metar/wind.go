package metar

import (
	"math"
	"regexp"
	"strconv"
)

// windRe matches the wind group: 3-digit direction or VRB, 2-3 digit speed,
// optional gust, unit suffix. E.g. "04009KT", "VRB03MPS", "24015G25KT".
var windRe = regexp.MustCompile(`^(\d{3}|VRB)(\d{2,3})(?:G(\d{2,3}))?(KT|MPS|KMH)$`)

// compassPoints is the 16-point rose indexed by round(degrees / 22.5) mod 16.
var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

func decodeWind(s *session, token string) outcome {
	m := windRe.FindStringSubmatch(token)
	if m == nil {
		return outNoMatch
	}

	// "00000" of any unit is calm: no speed, no gust.
	if m[1]+m[2] == "00000" {
		s.obs.Wind = &Wind{Direction: WindCalm}
		return outConsumed
	}

	wind := &Wind{Direction: WindVariable}
	if m[1] != "VRB" {
		degrees, _ := strconv.Atoi(m[1])
		wind.Direction = compassPoint(degrees)
	}

	factor := speedFactorMPH(m[4])
	speed := toMPH(m[2], factor)
	wind.SpeedMPH = &speed
	if m[3] != "" {
		gust := toMPH(m[3], factor)
		wind.GustMPH = &gust
	}

	s.obs.Wind = wind
	return outConsumed
}

// compassPoint maps wind direction degrees to a 16-point compass label.
func compassPoint(degrees int) string {
	idx := int(math.Round(float64(degrees)/22.5)) % 16
	return compassPoints[idx]
}

// toMPH converts a decimal speed string to whole miles per hour.
func toMPH(speed string, factor float64) int {
	v, _ := strconv.Atoi(speed)
	return int(math.Round(float64(v) * factor))
}
