package gamification

import (
	"math"
	"time"
)

// Les streaks ne sont jamais persistées: elles sont recalculées à la
// demande depuis l'ensemble complet des dates de workouts (started_at).
// Plusieurs workouts le même jour comptent une seule fois, et un Rest Day
// est un jour qualifiant comme les autres.

// SameDay compare deux instants au jour calendaire près (même location).
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// WorkedOutOn indique si au moins une date tombe le jour calendaire de day.
func WorkedOutOn(dates []time.Time, day time.Time) bool {
	for _, d := range dates {
		if SameDay(d, day) {
			return true
		}
	}
	return false
}

// DayStreak calcule la série de jours consécutifs avec au moins un workout.
// La série est "vivante" si elle atteint aujourd'hui ou hier; sinon 0.
func DayStreak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	streak := 0
	check := now

	if WorkedOutOn(dates, now) {
		streak = 1
		check = now.AddDate(0, 0, -1)
	} else {
		yesterday := now.AddDate(0, 0, -1)
		if WorkedOutOn(dates, yesterday) {
			streak = 1
			check = yesterday.AddDate(0, 0, -1)
		}
	}

	if streak == 0 {
		return 0
	}

	// Remonter jour par jour jusqu'au premier trou
	for WorkedOutOn(dates, check) {
		streak++
		check = check.AddDate(0, 0, -1)
	}

	return streak
}

// WeekStreak calcule la série de semaines consécutives (lundi comme début
// de semaine) contenant au moins un workout. La série est vivante si la
// semaine la plus récente avec un workout est la semaine courante ou la
// précédente.
func WeekStreak(dates []time.Time, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	latest := dates[0]
	for _, d := range dates[1:] {
		if d.After(latest) {
			latest = d
		}
	}

	diffCurrent := calendarWeeksBetween(now, latest)
	if diffCurrent != 0 && diffCurrent != 1 {
		return 0
	}

	streak := 1
	checkWeek := diffCurrent + 1
	for {
		found := false
		for _, d := range dates {
			if calendarWeeksBetween(now, d) == checkWeek {
				found = true
				break
			}
		}
		if !found {
			break
		}
		streak++
		checkWeek++
	}

	return streak
}

// startOfWeek ramène t au lundi 00:00 de sa semaine.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7 // lundi = 0
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, -offset)
}

// calendarWeeksBetween compte les frontières de semaine entre earlier et
// later. Le Round absorbe les heures de décalage DST.
func calendarWeeksBetween(later, earlier time.Time) int {
	days := int(math.Round(startOfWeek(later).Sub(startOfWeek(earlier)).Hours() / 24))
	return days / 7
}
