package metar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWind(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		direction string
		speed     int
		gust      *int
	}{
		{"knots", "04009KT", "NE", 10, nil},
		{"meters per second", "04003MPS", "NE", 7, nil},
		{"kilometers per hour", "27020KMH", "W", 12, nil},
		{"gusting", "24015G25KT", "WSW", 17, intPtr(29)},
		{"variable direction", "VRB03KT", "varies", 3, nil},
		{"north wraps around", "36010KT", "N", 12, nil},
		{"due south", "18010KT", "S", 12, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obs := decode(t, "KJFK 261251Z "+tc.token)

			require.NotNil(t, obs.Wind)
			assert.Equal(t, tc.direction, obs.Wind.Direction)
			require.NotNil(t, obs.Wind.SpeedMPH)
			assert.Equal(t, tc.speed, *obs.Wind.SpeedMPH)
			if tc.gust == nil {
				assert.Nil(t, obs.Wind.GustMPH)
			} else {
				require.NotNil(t, obs.Wind.GustMPH)
				assert.Equal(t, *tc.gust, *obs.Wind.GustMPH)
			}
		})
	}
}

func TestDecodeWind_Calm(t *testing.T) {
	for _, token := range []string{"00000KT", "00000MPS", "00000KMH"} {
		obs := decode(t, "KJFK 261251Z "+token)

		require.NotNil(t, obs.Wind, token)
		assert.Equal(t, WindCalm, obs.Wind.Direction)
		assert.Nil(t, obs.Wind.SpeedMPH)
		assert.Nil(t, obs.Wind.GustMPH)
	}
}

func TestDecodeWind_MalformedTokenLeavesWindAbsent(t *testing.T) {
	for _, token := range []string{"0409KT", "040G09KT", "04009XX", "KT"} {
		obs := decode(t, "KJFK 261251Z "+token)
		assert.Nil(t, obs.Wind, token)
	}
}

func TestCompassPoint(t *testing.T) {
	tests := []struct {
		degrees int
		label   string
	}{
		{0, "N"}, {10, "N"}, {12, "NNE"}, {40, "NE"}, {90, "E"},
		{135, "SE"}, {180, "S"}, {225, "SW"}, {270, "W"}, {315, "NW"},
		{340, "NNW"}, {350, "N"}, {360, "N"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.label, compassPoint(tc.degrees), "%d degrees", tc.degrees)
	}
}

func intPtr(v int) *int { return &v }
