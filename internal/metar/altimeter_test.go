package metar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAltimeter(t *testing.T) {
	tests := []struct {
		name  string
		token string
		inHg  float64
		hPa   int
	}{
		{"inches of mercury", "A3010", 30.1, 1019},
		{"standard pressure", "A2992", 29.92, 1013},
		{"hectopascals", "Q1019", 30.09, 1019},
		{"hectopascals high", "Q1021", 30.15, 1021},
		{"hectopascals low", "Q0998", 29.47, 998},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			obs := decode(t, "KJFK 261251Z 04009KT 10SM 01/M04 "+tc.token)

			require.NotNil(t, obs.PressureInHg)
			assert.Equal(t, tc.inHg, *obs.PressureInHg)
			require.NotNil(t, obs.PressureHPa)
			assert.Equal(t, tc.hPa, *obs.PressureHPa)
		})
	}
}

func TestDecodeAltimeter_MalformedTokenLeavesPressureAbsent(t *testing.T) {
	for _, token := range []string{"A301", "Q10199", "B3010", "A30.10"} {
		obs := decode(t, "KJFK 261251Z 04009KT 10SM 01/M04 "+token)
		assert.Nil(t, obs.PressureInHg, token)
		assert.Nil(t, obs.PressureHPa, token)
	}
}
