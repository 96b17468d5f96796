package metar

import (
	"regexp"
	"strconv"
	"strings"
)

// temperatureRe matches "tt/dd": two-digit Celsius magnitudes, "M" prefix
// for below zero, dew point optionally absent or "XX" (not reported).
var temperatureRe = regexp.MustCompile(`^(M?\d{2})/(M?\d{2}|XX)?$`)

func decodeTemperature(s *session, token string) outcome {
	m := temperatureRe.FindStringSubmatch(token)
	if m == nil {
		return outNoMatch
	}

	tempC := parseCelsius(m[1])
	tempF := celsiusToFahrenheit(tempC)
	s.obs.TemperatureC = &tempC
	s.obs.TemperatureF = &tempF

	if m[2] != "" && m[2] != "XX" {
		dewC := parseCelsius(m[2])
		dewF := celsiusToFahrenheit(dewC)
		s.obs.DewPointC = &dewC
		s.obs.DewPointF = &dewF

		humidity := relativeHumidity(tempC, dewC)
		s.obs.RelativeHumidity = &humidity

		if hi, ok := heatIndex(tempF, humidity); ok {
			s.obs.HeatIndexF = &hi
		}
	}

	// Wind chill needs only temperature and wind, not dew point.
	if wc, ok := windChill(tempF, s.obs.Wind); ok {
		s.obs.WindChillF = &wc
	}

	return outConsumed
}

func parseCelsius(value string) int {
	negative := strings.HasPrefix(value, "M")
	v, _ := strconv.Atoi(strings.TrimPrefix(value, "M"))
	if negative {
		return -v
	}
	return v
}
