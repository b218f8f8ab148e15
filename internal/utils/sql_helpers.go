package utils

import (
	"database/sql"
	"encoding/json"
	"time"
)

// NullStringToString convertit sql.NullString en string
func NullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// NullStringToPointer convertit sql.NullString en *string
func NullStringToPointer(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

// NullTimeToPointer convertit sql.NullTime en *time.Time
func NullTimeToPointer(nt sql.NullTime) *time.Time {
	if nt.Valid {
		return &nt.Time
	}
	return nil
}

// NullInt64ToInt convertit sql.NullInt64 en int
func NullInt64ToInt(ni sql.NullInt64) int {
	if ni.Valid {
		return int(ni.Int64)
	}
	return 0
}

// StatsFromJSON décode la colonne jsonb stats. Une colonne NULL ou un
// document vide donne une map vide, jamais nil.
func StatsFromJSON(raw []byte) map[string]int {
	stats := make(map[string]int)
	if len(raw) == 0 {
		return stats
	}
	if err := json.Unmarshal(raw, &stats); err != nil {
		return make(map[string]int)
	}
	return stats
}

// StatsToJSON encode la map de stats pour la colonne jsonb.
func StatsToJSON(stats map[string]int) []byte {
	if stats == nil {
		stats = make(map[string]int)
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return []byte("{}")
	}
	return raw
}
