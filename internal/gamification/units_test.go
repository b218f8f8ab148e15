package gamification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ryankirkland/99grind/internal/gamification"
)

func TestToDisplay(t *testing.T) {
	assert.InDelta(t, 100, gamification.ToDisplay(100, "kg"), 0.0001)
	assert.InDelta(t, 220.462, gamification.ToDisplay(100, "lbs"), 0.001)
	assert.InDelta(t, 0, gamification.ToDisplay(0, "lbs"), 0.0001)
}

func TestToStorage(t *testing.T) {
	assert.InDelta(t, 80, gamification.ToStorage(80, "kg"), 0.0001)
	assert.InDelta(t, 100, gamification.ToStorage(220.462, "lbs"), 0.001)
}

func TestRoundTrip(t *testing.T) {
	weights := []float64{0, 0.5, 1, 20, 42.5, 60, 100, 142.5, 250}
	for _, unit := range []string{"kg", "lbs"} {
		for _, w := range weights {
			display := gamification.ToDisplay(w, unit)
			again := gamification.ToDisplay(gamification.ToStorage(display, unit), unit)
			assert.InDelta(t, display, again, 0.1, "unit=%s weight=%v", unit, w)
		}
	}
}

func TestEditingDisplayKeepsOneDecimal(t *testing.T) {
	assert.Equal(t, 93.7, gamification.EditingDisplay(93.69924))
	assert.Equal(t, 100.0, gamification.EditingDisplay(99.99999))
}

func TestRoundDisplay(t *testing.T) {
	assert.Equal(t, 220.0, gamification.RoundDisplay(gamification.ToDisplay(99.79, "lbs")))
	assert.Equal(t, 100.0, gamification.RoundDisplay(99.7))
}
