package gamification

// ApplyEffort ajoute une contribution aux compteurs cumulés du profil et
// retourne le nouvel état (stats fusionnées clé par clé, XP, niveau dérivé).
// Les clés absentes comptent pour 0 avant addition, aucune clé n'est retirée.
func ApplyEffort(stats map[string]int, currentXP int, effort Effort) (map[string]int, int, int) {
	newStats := cloneStats(stats)
	for key, value := range effort.Stats {
		newStats[key] += value
	}

	newXP := currentXP + effort.XP
	return newStats, newXP, Level(newXP)
}

// RevertEffort retire une contribution précédemment appliquée, en
// plafonnant chaque compteur (et l'XP) à 0. revert(apply(x)) == x tant
// qu'aucun compteur ne passe sous zéro.
func RevertEffort(stats map[string]int, currentXP int, effort Effort) (map[string]int, int, int) {
	newStats := cloneStats(stats)
	for key, value := range effort.Stats {
		newStats[key] -= value
		if newStats[key] < 0 {
			newStats[key] = 0
		}
	}

	newXP := currentXP - effort.XP
	if newXP < 0 {
		newXP = 0
	}
	return newStats, newXP, Level(newXP)
}

func cloneStats(stats map[string]int) map[string]int {
	cloned := make(map[string]int, len(stats))
	for key, value := range stats {
		cloned[key] = value
	}
	return cloned
}
