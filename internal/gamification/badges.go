package gamification

// Titres décernés aux paliers de niveau. Un badge gagné reste acquis,
// même si une édition de workout fait redescendre le niveau.
var levelBadges = map[int]string{
	5:  "Committed",
	10: "Relentless",
	25: "Obsessed",
	50: "99 Overall",
}

// NewBadges retourne les titres à ajouter au profil quand le niveau passe
// de oldLevel à newLevel, sans ré-attribuer ceux déjà possédés.
func NewBadges(oldLevel, newLevel int, owned []string) []string {
	if newLevel <= oldLevel {
		return nil
	}

	has := make(map[string]bool, len(owned))
	for _, b := range owned {
		has[b] = true
	}

	var earned []string
	for lvl := oldLevel + 1; lvl <= newLevel; lvl++ {
		if badge, ok := levelBadges[lvl]; ok && !has[badge] {
			earned = append(earned, badge)
		}
	}
	return earned
}
