package metar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVisibility_StatuteMiles(t *testing.T) {
	tests := []struct {
		name      string
		tokens    string
		qualifier VisibilityQualifier
		miles     float64
	}{
		{"whole miles", "10SM", VisibilityExact, 10},
		{"fraction", "1/2SM", VisibilityExact, 0.5},
		{"at most", "M1/4SM", VisibilityAtMost, 0.25},
		{"mixed number across two tokens", "1 1/2SM", VisibilityExact, 1.5},
		{"mixed number at most", "2 M1/2SM", VisibilityAtMost, 2.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obs := decode(t, "KJFK 261251Z 04009KT "+tc.tokens)

			require.NotNil(t, obs.Visibility)
			assert.Equal(t, tc.qualifier, obs.Visibility.Qualifier)
			assert.Equal(t, tc.miles, obs.Visibility.Miles)
		})
	}
}

func TestDecodeVisibility_Meters(t *testing.T) {
	tests := []struct {
		name  string
		token string
		miles float64
	}{
		// Below five miles the value keeps one decimal place.
		{"low visibility keeps a decimal", "0400", 0.6},
		{"fog-level", "0100", 0.2},
		{"mid-range", "3000", 4.8},
		// Above five miles it rounds to whole miles.
		{"unlimited marker rounds to whole", "9999", 16},
		{"high visibility rounds to whole", "8000", 13},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obs := decode(t, "EDDF 261250Z 24008KT "+tc.token)

			require.NotNil(t, obs.Visibility)
			assert.Equal(t, VisibilityExact, obs.Visibility.Qualifier)
			assert.Equal(t, tc.miles, obs.Visibility.Miles)
		})
	}
}

// Kilometer visibility is recognized so the token does not derail the group
// walk, but the value itself is unsupported and discarded.
func TestDecodeVisibility_KilometersDiscarded(t *testing.T) {
	obs := decode(t, "UUEE 261250Z 24008KT 10KM OVC020 05/04 Q1021")

	assert.Nil(t, obs.Visibility)
	require.NotNil(t, obs.CloudLayer, "groups after the KM token must still decode")
	assert.Equal(t, "overcast", obs.CloudLayer.Description)
	require.NotNil(t, obs.TemperatureC)
	assert.Equal(t, 5, *obs.TemperatureC)
}

func TestParseMiles(t *testing.T) {
	assert.Equal(t, 10.0, parseMiles("10"))
	assert.Equal(t, 0.5, parseMiles("1/2"))
	assert.Equal(t, 0.0, parseMiles("1/0"), "degenerate fraction must not panic")
}
