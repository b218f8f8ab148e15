package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryankirkland/99grind/internal/utils"
)

func TestStatsFromJSON(t *testing.T) {
	stats := utils.StatsFromJSON([]byte(`{"strength":4,"rest_days":1}`))
	assert.Equal(t, 4, stats["strength"])
	assert.Equal(t, 1, stats["rest_days"])
}

func TestStatsFromJSON_NullColumn(t *testing.T) {
	stats := utils.StatsFromJSON(nil)
	require.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestStatsFromJSON_InvalidPayload(t *testing.T) {
	stats := utils.StatsFromJSON([]byte(`not json`))
	require.NotNil(t, stats)
	assert.Empty(t, stats)
}

func TestStatsRoundTrip(t *testing.T) {
	in := map[string]int{"cardio": 7, "general": 2}
	out := utils.StatsFromJSON(utils.StatsToJSON(in))
	assert.Equal(t, in, out)
}

func TestStatsToJSON_NilMap(t *testing.T) {
	assert.JSONEq(t, "{}", string(utils.StatsToJSON(nil)))
}
