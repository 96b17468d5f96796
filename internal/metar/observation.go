package metar

import "time"

// VisibilityQualifier says how the reported visibility value bounds the
// actual visibility. The presentation layer chooses glyphs or wording.
type VisibilityQualifier string

const (
	VisibilityExact   VisibilityQualifier = "exact"
	VisibilityAtLeast VisibilityQualifier = "at-least"
	VisibilityAtMost  VisibilityQualifier = "at-most"
)

// Wind direction values that are not compass points.
const (
	WindCalm     = "calm"
	WindVariable = "varies"
)

// Wind holds the decoded wind group. Speed and gust are absent for calm wind.
type Wind struct {
	Direction string `json:"direction"` // 16-point compass label, "calm", or "varies"
	SpeedMPH  *int   `json:"speed_mph,omitempty"`
	GustMPH   *int   `json:"gust_mph,omitempty"`
}

// Visibility is a qualified distance in statute miles.
type Visibility struct {
	Qualifier VisibilityQualifier `json:"qualifier"`
	Miles     float64             `json:"miles"`
}

// CloudLayer describes the last reported sky condition. AltitudeFt is set
// only for indefinite ceilings (VV groups).
type CloudLayer struct {
	Description string `json:"description"`
	AltitudeFt  *int   `json:"altitude_ft,omitempty"`
}

// Observation is the structured result of decoding one METAR report.
// Every field is independently optional: a nil pointer or empty string means
// the report did not carry that group, not that decoding failed.
type Observation struct {
	Wind       *Wind       `json:"wind,omitempty"`
	Visibility *Visibility `json:"visibility,omitempty"`
	Conditions string      `json:"conditions,omitempty"` // present weather phrases joined by "& "
	CloudLayer *CloudLayer `json:"cloud_layer,omitempty"`

	TemperatureC *int `json:"temperature_c,omitempty"`
	TemperatureF *int `json:"temperature_f,omitempty"`
	DewPointC    *int `json:"dew_point_c,omitempty"`
	DewPointF    *int `json:"dew_point_f,omitempty"`

	// Derived values, computed while decoding the temperature group.
	RelativeHumidity *int `json:"relative_humidity_pct,omitempty"`
	HeatIndexF       *int `json:"heat_index_f,omitempty"`
	WindChillF       *int `json:"wind_chill_f,omitempty"`

	PressureInHg *float64 `json:"pressure_in_hg,omitempty"`
	PressureHPa  *int     `json:"pressure_hpa,omitempty"`

	// ObservedAt is supplied by the caller (the report body's time group is
	// consumed positionally but not used for timestamping).
	ObservedAt time.Time `json:"observed_at"`
	DecodedAt  time.Time `json:"decoded_at"`
}
