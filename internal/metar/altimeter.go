package metar

import (
	"regexp"
	"strconv"
)

// altimeterRe matches "A" + hundredths of inches of mercury or "Q" +
// hectopascals, e.g. "A3010", "Q1019".
var altimeterRe = regexp.MustCompile(`^([AQ])(\d{4})$`)

// decodeAltimeter stores the pressure in both representations, whichever
// one the station reported.
func decodeAltimeter(s *session, token string) outcome {
	m := altimeterRe.FindStringSubmatch(token)
	if m == nil {
		return outNoMatch
	}

	value, _ := strconv.Atoi(m[2])

	var inHg float64
	var hPa int
	if m[1] == "A" {
		inHg = float64(value) / 100
		hPa = hPaFromInHg(inHg)
	} else {
		hPa = value
		inHg = inHgFromHPa(hPa)
	}

	s.obs.PressureInHg = &inHg
	s.obs.PressureHPa = &hPa
	return outConsumed
}
