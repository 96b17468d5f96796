package metar

import "math"

// relativeHumidity derives humidity in percent from air temperature and dew
// point, both in whole degrees Celsius.
func relativeHumidity(tempC, dewC int) int {
	tc, dc := float64(tempC), float64(dewC)
	ratio := (112 - 0.1*tc + dc) / (112 + 0.9*tc)
	return int(math.Round(100 * math.Pow(ratio, 8)))
}

// heatIndex computes the apparent temperature per the Rothfusz regression.
// It only applies above 79°F and 39% humidity.
func heatIndex(tempF, humidity int) (int, bool) {
	if tempF <= 79 || humidity <= 39 {
		return 0, false
	}
	t, rh := float64(tempF), float64(humidity)
	hi := -42.379 + 2.04901523*t + 10.14333127*rh - 0.22475541*t*rh -
		0.00683783*t*t - 0.05481717*rh*rh + 0.00122874*t*t*rh +
		0.00085282*t*rh*rh - 0.00000199*t*t*rh*rh
	return int(math.Round(hi)), true
}

// windChill computes the apparent temperature for cold, windy conditions.
// It only applies below 51°F with sustained wind above 3 mph; gusts are
// ignored.
func windChill(tempF int, wind *Wind) (int, bool) {
	if tempF >= 51 || wind == nil || wind.Direction == WindCalm {
		return 0, false
	}
	if wind.SpeedMPH == nil || *wind.SpeedMPH <= 3 {
		return 0, false
	}
	t, v := float64(tempF), float64(*wind.SpeedMPH)
	vp := math.Pow(v, 0.16)
	return int(math.Round(35.74 + 0.6215*t - 35.75*vp + 0.4275*t*vp)), true
}
