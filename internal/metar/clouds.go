package metar

import (
	"regexp"
	"strconv"
)

// cloudLayerRe matches a coverage code plus altitude in hundreds of feet,
// e.g. "OVC037", "VV004".
var cloudLayerRe = regexp.MustCompile(`^(FEW|SCT|BKN|OVC|VV)(\d{3})$`)

var cloudDescriptions = map[string]string{
	"FEW": "a few clouds",
	"SCT": "scattered clouds",
	"BKN": "broken clouds",
	"OVC": "overcast",
}

// decodeCloudLayer keeps only the most recently reported layer; an earlier
// layer in the same report is overwritten, not accumulated.
func decodeCloudLayer(s *session, token string) outcome {
	if token == "SKC" || token == "CLR" {
		s.obs.CloudLayer = &CloudLayer{Description: "clear skies"}
		return outConsumed
	}

	m := cloudLayerRe.FindStringSubmatch(token)
	if m == nil {
		return outNoMatch
	}

	if m[1] == "VV" {
		// Indefinite ceiling: the vertical visibility altitude is the one
		// cloud altitude worth surfacing.
		hundreds, _ := strconv.Atoi(m[2])
		altitude := hundreds * 100
		s.obs.CloudLayer = &CloudLayer{Description: "sky obscured", AltitudeFt: &altitude}
		return outConsumed
	}

	s.obs.CloudLayer = &CloudLayer{Description: cloudDescriptions[m[1]]}
	return outConsumed
}
