package metar

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testObservedAt = time.Date(2024, 4, 26, 12, 51, 0, 0, time.UTC)

func decode(t *testing.T, raw string) Observation {
	t.Helper()
	obs, err := DecodeReport(raw, testObservedAt)
	require.NoError(t, err)
	return obs
}

func TestDecodeReport_FullScenario(t *testing.T) {
	obs := decode(t, "KJFK 261251Z 04009KT 10SM OVC037 01/M04 A3010")

	require.NotNil(t, obs.Wind)
	assert.Equal(t, "NE", obs.Wind.Direction)
	require.NotNil(t, obs.Wind.SpeedMPH)
	assert.Equal(t, 10, *obs.Wind.SpeedMPH)
	assert.Nil(t, obs.Wind.GustMPH)

	require.NotNil(t, obs.Visibility)
	assert.Equal(t, VisibilityExact, obs.Visibility.Qualifier)
	assert.Equal(t, 10.0, obs.Visibility.Miles)

	require.NotNil(t, obs.CloudLayer)
	assert.Equal(t, "overcast", obs.CloudLayer.Description)
	assert.Nil(t, obs.CloudLayer.AltitudeFt)

	require.NotNil(t, obs.TemperatureF)
	assert.Equal(t, 34, *obs.TemperatureF)
	require.NotNil(t, obs.DewPointF)
	assert.Equal(t, 25, *obs.DewPointF)
	require.NotNil(t, obs.RelativeHumidity)
	assert.Equal(t, 70, *obs.RelativeHumidity)

	assert.Nil(t, obs.HeatIndexF, "heat index requires T > 79F")
	require.NotNil(t, obs.WindChillF)
	assert.Equal(t, 26, *obs.WindChillF)

	require.NotNil(t, obs.PressureInHg)
	assert.Equal(t, 30.1, *obs.PressureInHg)
	require.NotNil(t, obs.PressureHPa)
	assert.Equal(t, 1019, *obs.PressureHPa)

	assert.Equal(t, testObservedAt, obs.ObservedAt)
}

func TestDecodeReport_NoData(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := DecodeReport(raw, testObservedAt)
		assert.ErrorIs(t, err, ErrNoData)
	}
}

func TestDecodeReport_StationOnly(t *testing.T) {
	obs := decode(t, "KJFK")

	assert.Nil(t, obs.Wind)
	assert.Nil(t, obs.Visibility)
	assert.Empty(t, obs.Conditions)
	assert.Nil(t, obs.CloudLayer)
	assert.Nil(t, obs.TemperatureC)
	assert.Nil(t, obs.PressureInHg)
}

// CAVOK replaces the visibility, weather, and cloud groups; the runway,
// weather, and cloud tokens that follow it must be ignored entirely.
func TestDecodeReport_CAVOKSkipsFollowingGroups(t *testing.T) {
	obs := decode(t, "EGLL 261250Z 27010KT CAVOK R06/1000 RA OVC010")

	require.NotNil(t, obs.Visibility)
	assert.Equal(t, VisibilityAtLeast, obs.Visibility.Qualifier)
	assert.Equal(t, 7.0, obs.Visibility.Miles)

	assert.Empty(t, obs.Conditions, "RA after CAVOK must not register")

	require.NotNil(t, obs.CloudLayer)
	assert.Equal(t, "clear skies", obs.CloudLayer.Description)
	assert.Nil(t, obs.CloudLayer.AltitudeFt, "OVC010 after CAVOK must not register")
}

func TestDecodeReport_CAVOKClearsEarlierConditions(t *testing.T) {
	// Contrived, but exercises the reset: conditions can never survive CAVOK.
	obs := decode(t, "EGLL 261250Z 27010KT CAVOK 22/18 Q1019")

	assert.Empty(t, obs.Conditions)
	require.NotNil(t, obs.TemperatureC)
	assert.Equal(t, 22, *obs.TemperatureC)
	require.NotNil(t, obs.PressureHPa)
	assert.Equal(t, 1019, *obs.PressureHPa)
}

// Group kinds are attempted strictly in order: a token for a kind the
// dispatcher has already passed must not be consumed later.
func TestDecodeReport_GroupOrderIsNeverRevisited(t *testing.T) {
	t.Run("temperature before wind leaves wind absent", func(t *testing.T) {
		obs := decode(t, "KJFK 261251Z 01/M04 04009KT")

		require.NotNil(t, obs.TemperatureC)
		assert.Equal(t, 1, *obs.TemperatureC)
		assert.Nil(t, obs.Wind, "wind group was passed before its token appeared")
		assert.Nil(t, obs.WindChillF, "wind chill needs a decoded wind group")
	})

	t.Run("visibility before time leaves time token unconsumed", func(t *testing.T) {
		obs := decode(t, "KJFK 10SM 261251Z")

		require.NotNil(t, obs.Visibility)
		assert.Equal(t, 10.0, obs.Visibility.Miles)
	})
}

func TestDecodeReport_UnrecognizedTokensAreSkippedSilently(t *testing.T) {
	obs := decode(t, "KJFK 261251Z NOSUCHGROUP 04009KT 10SM")

	// "NOSUCHGROUP" matched nothing; the dispatcher walked past station-type
	// without consuming it, so the following groups are lost positionally —
	// but no error is raised.
	assert.Nil(t, obs.TemperatureC)
	assert.Nil(t, obs.HeatIndexF)
}

func TestDecodeReport_StationTypeAndVariableWind(t *testing.T) {
	obs := decode(t, "KSFO 261256Z AUTO VRB04KT 180V240 9SM CLR 17/09 A3012")

	require.NotNil(t, obs.Wind)
	assert.Equal(t, WindVariable, obs.Wind.Direction)
	require.NotNil(t, obs.Visibility)
	assert.Equal(t, 9.0, obs.Visibility.Miles)
	require.NotNil(t, obs.CloudLayer)
	assert.Equal(t, "clear skies", obs.CloudLayer.Description)
	require.NotNil(t, obs.TemperatureC)
	assert.Equal(t, 17, *obs.TemperatureC)
}

func TestDecodeReport_RunwayGroupsAreConsumed(t *testing.T) {
	obs := decode(t, "EDDF 261250Z 24008KT 0400 R25L/1000 R25R/P2000FT FG 05/04 Q1021")

	require.NotNil(t, obs.Visibility)
	assert.Equal(t, 0.6, obs.Visibility.Miles)
	assert.Equal(t, "fog", obs.Conditions)
	require.NotNil(t, obs.TemperatureC)
	assert.Equal(t, 5, *obs.TemperatureC)
}

// Decoding the same report twice must yield bit-identical observations:
// no session state may leak between calls.
func TestDecodeReport_Idempotent(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2024, 4, 26, 13, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	reports := []string{
		"KJFK 261251Z 04009KT 10SM OVC037 01/M04 A3010",
		"EFHK 261250Z 29012G22KT 1 1/2SM -SHRA BR BKN008 03/01 Q0998",
		"EGLL 261250Z 27010KT CAVOK 22/18 Q1019",
	}

	for _, raw := range reports {
		first, err := DecodeReport(raw, testObservedAt)
		require.NoError(t, err)
		second, err := DecodeReport(raw, testObservedAt)
		require.NoError(t, err)

		assert.Empty(t, cmp.Diff(first, second), "decode of %q is not idempotent", raw)
	}
}

// Interleaved decodes must not bleed carry-state (pending whole miles,
// accumulated conditions) into one another.
func TestDecodeReport_NoCarryStateAcrossCalls(t *testing.T) {
	// This report parks a pending whole-mile numerator and two condition
	// phrases in its session.
	decode(t, "EFHK 261250Z 29012KT 1 1/2SM -SHRA BR BKN008 03/01 Q0998")

	obs := decode(t, "KJFK 261251Z 04009KT 1/2SM OVC037 01/M04 A3010")

	require.NotNil(t, obs.Visibility)
	assert.Equal(t, 0.5, obs.Visibility.Miles, "pending whole mile leaked from a previous decode")
	assert.Empty(t, obs.Conditions, "conditions accumulator leaked from a previous decode")
}

func TestDecodeReport_TrailingRemarksIgnored(t *testing.T) {
	obs := decode(t, "KJFK 261251Z 04009KT 10SM OVC037 01/M04 A3010 RMK AO2 SLP190 T00111039")

	require.NotNil(t, obs.PressureInHg)
	assert.Equal(t, 30.1, *obs.PressureInHg)
	require.NotNil(t, obs.TemperatureC)
	assert.Equal(t, 1, *obs.TemperatureC)
}

func TestDecodeReport_DecodedAtUsesInjectedClock(t *testing.T) {
	frozen := time.Date(2024, 4, 27, 6, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	defer SetClock(nil)

	obs := decode(t, "KJFK 261251Z 04009KT 10SM 01/M04 A3010")

	assert.Equal(t, frozen, obs.DecodedAt)
}
