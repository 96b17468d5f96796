package metar

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// ErrNoData is returned when the raw report contains no tokens at all.
// It is the only error the decoder raises; every other anomaly degrades to
// an absent field.
var ErrNoData = errors.New("metar: no report data")

var (
	// reportTimeRe matches the day/hour/minute group, e.g. "261251Z".
	reportTimeRe = regexp.MustCompile(`^\d{6}Z$`)

	// variableWindRe matches a variable wind sector, e.g. "180V240".
	variableWindRe = regexp.MustCompile(`^\d{3}V\d{3}$`)

	// runwayRe matches runway visual range groups, e.g. "R06/1000" or "R24L/P2000FT".
	runwayRe = regexp.MustCompile(`^R\d{2}[LRC]?/`)
)

// outcome is what a group decoder reports back to the dispatcher.
type outcome int

const (
	outNoMatch   outcome = iota // group absent; try the next kind on the same token
	outConsumed                 // token consumed
	outSkipAhead                // CAVOK: token consumed, runway/weather/cloud groups skipped
)

// cavokSkip jumps the dispatcher from the visibility group past runway,
// present weather, and cloud layers to the temperature group.
const cavokSkip = 4

// session carries the mutable state of one decode call. Nothing here may
// outlive the call: concurrent decodes of different reports share no state.
type session struct {
	obs *Observation

	pendingMiles string   // whole-mile part of a split visibility, e.g. the "1" in "1 1/2SM"
	conditions   []string // accumulated present-weather phrases
}

// groupStep pairs a group kind with its decoder. Repeatable kinds are retried
// against the next token after a match, allowing consecutive groups of the
// same kind.
type groupStep struct {
	name       string
	repeatable bool
	decode     func(s *session, token string) outcome
}

// groupSequence is the fixed order in which the dispatcher attempts groups.
// Once a kind is passed it is never revisited.
var groupSequence = []groupStep{
	{name: "time", decode: decodeReportTime},
	{name: "station-type", decode: decodeStationType},
	{name: "wind", decode: decodeWind},
	{name: "variable-wind", decode: decodeVariableWind},
	{name: "visibility", repeatable: true, decode: decodeVisibility},
	{name: "runway", repeatable: true, decode: decodeRunway},
	{name: "conditions", repeatable: true, decode: decodeConditions},
	{name: "clouds", repeatable: true, decode: decodeCloudLayer},
	{name: "temperature", decode: decodeTemperature},
	{name: "altimeter", decode: decodeAltimeter},
}

// DecodeReport decodes a raw METAR report string into an Observation.
// observedAt is the observation instant supplied by whatever retrieved the
// report; the report's own time group is consumed but not interpreted.
//
// The decoder is pure and safe for concurrent use: all parse state lives in
// a per-call session.
func DecodeReport(raw string, observedAt time.Time) (Observation, error) {
	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return Observation{}, ErrNoData
	}

	obs := Observation{
		ObservedAt: observedAt.UTC(),
		DecodedAt:  clock.Now().UTC(),
	}
	s := &session{obs: &obs}

	// Token 0 is the station identifier, already known to the caller.
	cursor := 1
	for group := 0; group < len(groupSequence) && cursor < len(tokens); {
		step := groupSequence[group]
		switch step.decode(s, tokens[cursor]) {
		case outNoMatch:
			group++
		case outConsumed:
			cursor++
			if !step.repeatable {
				group++
			}
		case outSkipAhead:
			cursor++
			group += cavokSkip
		}
	}

	return obs, nil
}

// decodeReportTime consumes the ddhhmmZ group. The observation instant comes
// from the transport layer, so the value is discarded.
func decodeReportTime(_ *session, token string) outcome {
	if !reportTimeRe.MatchString(token) {
		return outNoMatch
	}
	return outConsumed
}

// decodeStationType consumes the report modifier (fully automated or
// corrected reports). The modifier carries no observation data.
func decodeStationType(_ *session, token string) outcome {
	if token != "AUTO" && token != "COR" {
		return outNoMatch
	}
	return outConsumed
}

// decodeVariableWind consumes a variable wind sector group. The sector
// bounds are not reported in the observation.
func decodeVariableWind(_ *session, token string) outcome {
	if !variableWindRe.MatchString(token) {
		return outNoMatch
	}
	return outConsumed
}

// decodeRunway consumes runway visual range groups, which may repeat once
// per runway. RVR is aviation-specific and not part of the observation.
func decodeRunway(_ *session, token string) outcome {
	if !runwayRe.MatchString(token) {
		return outNoMatch
	}
	return outConsumed
}
