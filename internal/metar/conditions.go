package metar

import "strings"

// Present-weather code tables, per the METAR phenomena registry.
// Descriptors qualify a phenomenon; phenomena stand on their own.
var conditionDescriptors = map[string]string{
	"MI": "shallow",
	"BC": "patches",
	"DR": "drifting",
	"BL": "blowing",
	"SH": "showers",
	"TS": "thunderstorm",
	"FZ": "freezing",
}

var conditionPhenomena = map[string]string{
	"DZ": "drizzle",
	"RA": "rain",
	"SN": "snow",
	"SG": "snow grains",
	"IC": "ice crystals",
	"PL": "ice pellets",
	"GR": "hail",
	"GS": "small hail",
	"UP": "unknown precipitation",
	"BR": "mist",
	"FG": "fog",
	"FU": "smoke",
	"VA": "volcanic ash",
	"DU": "dust",
	"SA": "sand",
	"HZ": "haze",
	"PY": "spray",
	"PO": "dust whirls",
	"SQ": "squalls",
	"FC": "tornado",
	"SS": "duststorm",
}

func decodeConditions(s *session, token string) outcome {
	intensity := ""
	rest := token
	switch {
	case strings.HasPrefix(rest, "-"):
		intensity, rest = "light", rest[1:]
	case strings.HasPrefix(rest, "+"):
		intensity, rest = "heavy", rest[1:]
	case strings.HasPrefix(rest, "VC"):
		intensity, rest = "nearby", rest[2:]
	}
	if rest == "" || len(rest)%2 != 0 {
		return outNoMatch
	}

	codes := make([]string, 0, len(rest)/2)
	for i := 0; i < len(rest); i += 2 {
		code := rest[i : i+2]
		if !knownConditionCode(code) {
			return outNoMatch
		}
		codes = append(codes, code)
	}

	// "SHRA" reads as "rain showers", not "showers rain": swap the showers
	// descriptor with the phenomenon that follows it.
	for i := 0; i+1 < len(codes); i++ {
		if codes[i] != "SH" {
			continue
		}
		if _, ok := conditionPhenomena[codes[i+1]]; ok {
			codes[i], codes[i+1] = codes[i+1], codes[i]
		}
	}

	words := make([]string, 0, len(codes)+1)
	if intensity != "" {
		words = append(words, intensity)
	}
	for _, code := range codes {
		words = append(words, conditionWord(code))
	}

	s.conditions = append(s.conditions, strings.Join(words, " "))
	s.obs.Conditions = strings.Join(s.conditions, "& ")
	return outConsumed
}

func knownConditionCode(code string) bool {
	if _, ok := conditionDescriptors[code]; ok {
		return true
	}
	_, ok := conditionPhenomena[code]
	return ok
}

func conditionWord(code string) string {
	if w, ok := conditionDescriptors[code]; ok {
		return w
	}
	return conditionPhenomena[code]
}
