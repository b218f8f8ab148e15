package gamification_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryankirkland/99grind/internal/gamification"
)

func TestAvatarSVG_Basics(t *testing.T) {
	svg := gamification.AvatarSVG(map[string]int{}, 1)

	require.True(t, strings.HasPrefix(svg, "<svg"))
	require.True(t, strings.HasSuffix(strings.TrimSpace(svg), "</svg>"))
	assert.Contains(t, svg, "<circle")
	assert.Contains(t, svg, "<path")
}

func TestAvatarSVG_AuraOnlyAtLevelFive(t *testing.T) {
	stats := map[string]int{"strength": 10}

	assert.NotContains(t, gamification.AvatarSVG(stats, 4), "animateTransform")
	assert.Contains(t, gamification.AvatarSVG(stats, 5), "animateTransform")
}

func TestAvatarSVG_StrengthWidensShoulders(t *testing.T) {
	weak := gamification.AvatarSVG(map[string]int{}, 1)
	strong := gamification.AvatarSVG(map[string]int{"strength": 30}, 1)

	// La géométrie doit changer avec les stats
	assert.NotEqual(t, weak, strong)
}

func TestAvatarSVG_GeometryCapsAtHighStats(t *testing.T) {
	capped := gamification.AvatarSVG(map[string]int{"strength": 20, "cardio": 10}, 1)
	beyond := gamification.AvatarSVG(map[string]int{"strength": 500, "cardio": 500}, 1)

	assert.Equal(t, capped, beyond)
}
