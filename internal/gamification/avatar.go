package gamification

import (
	"fmt"
	"strings"
)

// Couleur de l'avatar par niveau (le dernier palier sert au-delà).
var avatarColors = []string{
	"#94a3b8", // Lvl 1: Slate
	"#22c55e", // Lvl 2: Green
	"#3b82f6", // Lvl 3: Blue
	"#a855f7", // Lvl 4: Purple
	"#eab308", // Lvl 5: Gold
	"#ef4444", // Lvl 6: Red
}

// AvatarSVG rend l'avatar du profil: la morphologie est dérivée des stats
// (largeur d'épaules avec strength, taille affinée par cardio) et la
// couleur du niveau. Rendu côté serveur, le client l'affiche tel quel.
func AvatarSVG(stats map[string]int, level int) string {
	if level < 1 {
		level = 1
	}
	strength := float64(stats["strength"])
	cardio := float64(stats["cardio"])

	// Les épaules s'élargissent avec strength
	shoulderWidth := 40 + minf(strength*2, 40)

	// La taille s'affine avec cardio, s'épaissit légèrement avec strength
	waistWidth := 30 - minf(cardio, 10) + minf(strength*0.5, 10)

	limbWidth := 5 + minf(strength*0.5, 10)

	color := avatarColors[len(avatarColors)-1]
	if level-1 < len(avatarColors) {
		color = avatarColors[level-1]
	}

	var b strings.Builder
	b.WriteString(`<svg viewBox="0 0 100 100" fill="none" xmlns="http://www.w3.org/2000/svg">`)

	// Tête
	fmt.Fprintf(&b, `<circle cx="50" cy="20" r="15" fill="%s"/>`, color)

	// Torse
	fmt.Fprintf(&b,
		`<path d="M %.1f 40 L %.1f 40 L %.1f 70 L %.1f 70 Z" fill="%s" opacity="0.8"/>`,
		50-shoulderWidth/2, 50+shoulderWidth/2, 50+waistWidth/2, 50-waistWidth/2, color)

	// Bras
	fmt.Fprintf(&b,
		`<line x1="%.1f" y1="40" x2="%.1f" y2="70" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`,
		50-shoulderWidth/2, 50-shoulderWidth/2-10, color, limbWidth)
	fmt.Fprintf(&b,
		`<line x1="%.1f" y1="40" x2="%.1f" y2="70" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`,
		50+shoulderWidth/2, 50+shoulderWidth/2+10, color, limbWidth)

	// Jambes
	fmt.Fprintf(&b,
		`<line x1="%.1f" y1="70" x2="%.1f" y2="100" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`,
		50-waistWidth/4, 50-waistWidth/2, color, limbWidth+1)
	fmt.Fprintf(&b,
		`<line x1="%.1f" y1="70" x2="%.1f" y2="100" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`,
		50+waistWidth/4, 50+waistWidth/2, color, limbWidth+1)

	// Aura à partir du niveau 5
	if level >= 5 {
		fmt.Fprintf(&b,
			`<circle cx="50" cy="50" r="45" stroke="%s" stroke-width="2" stroke-dasharray="4 4" opacity="0.5">`+
				`<animateTransform attributeName="transform" type="rotate" from="0 50 50" to="360 50 50" dur="10s" repeatCount="indefinite"/>`+
				`</circle>`, color)
	}

	b.WriteString(`</svg>`)
	return b.String()
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
