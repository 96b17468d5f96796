// Package metar decodes raw METAR aviation weather reports into structured
// observations.
//
// # Report Format
//
// A METAR is a single line of whitespace-delimited groups in a fixed order,
// e.g.
//
//	KJFK 261251Z 04009KT 10SM OVC037 01/M04 A3010
//
// The first token is the reporting station's ICAO identifier; the decoder
// skips it and walks the remaining groups in sequence: report time, station
// type, wind, variable wind, visibility, runway visual range, present
// weather, cloud layers, temperature/dew point, altimeter. Every group is
// optional, several may repeat, and one (CAVOK) replaces the visibility,
// weather, and cloud groups outright. Anything after the altimeter group
// (remarks and similar) is deliberately ignored.
//
// # Group Conventions
//
// Wind:
//
//	dddssGggUU → direction in degrees (or VRB), speed, optional gust, unit
//	(KT, MPS, or KMH). "00000" of any unit means calm. Directions map to a
//	16-point compass rose; speeds are reported in mph.
//
// Visibility:
//
//	"10SM" statute miles, "M1/4SM" at most a quarter mile, "1 1/2SM" mixed
//	number split across two tokens, "0400" meters (non-US stations). A "KM"
//	suffix is recognized but unsupported; the token is consumed and its
//	value discarded.
//
// Present weather:
//
//	Optional intensity prefix ("-" light, "+" heavy, "VC" nearby, none
//	moderate) followed by concatenated two-letter codes, e.g. "-SHRA" is
//	light rain showers. Multiple weather groups accumulate into a single
//	description joined by "& ".
//
// Cloud layers:
//
//	SKC/CLR clear skies, or FEW/SCT/BKN/OVC/VV plus altitude in hundreds of
//	feet. Only the last reported layer is kept. The altitude is exposed only
//	for VV (indefinite ceiling), matching how stations report it.
//
// Temperature:
//
//	"tt/dd" in whole degrees Celsius, "M" prefix for below zero, dew point
//	may be absent or "XX". Decoding the temperature group also derives
//	relative humidity, and — when their preconditions hold — the heat index
//	(Rothfusz regression, T > 79°F and RH > 39%) and wind chill (T < 51°F,
//	wind above 3 mph and not calm).
//
// Altimeter:
//
//	"A3010" is 30.10 inHg, "Q1019" is 1019 hPa. Both representations are
//	stored, cross-converted with the factor 0.02953 inHg per hPa.
//
// # Error Handling
//
// The only error the decoder raises is [ErrNoData] for an empty report.
// A malformed or unrecognized group is treated as absent: the decoder moves
// on to the next group kind without consuming the token and returns a
// best-effort, possibly sparse [Observation].
//
// # ID Generation
//
// Station observation IDs are deterministic SHA-256 hashes of
// station|report|observation time. Reprocessing the same raw report yields
// the same ID, enabling idempotent upserts downstream and replay safety.
package metar
