package domain

import "time"

// Game is a local, queryable cache of IGDB metadata keyed by the IGDB
// numeric id. The external API stays the source of truth; rows older
// than the staleness threshold are refreshed in the background on view.
type Game struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	IgdbID           int64      `gorm:"uniqueIndex" json:"igdb_id"`
	Name             string     `gorm:"size:255" json:"name"`
	Slug             string     `gorm:"uniqueIndex;size:255" json:"slug"`
	Summary          string     `gorm:"type:text" json:"summary,omitempty"`
	CoverURL         string     `gorm:"size:512" json:"cover_url,omitempty"`
	Platforms        string     `gorm:"size:512" json:"platforms,omitempty"`
	Genres           string     `gorm:"size:512" json:"genres,omitempty"`
	FirstReleaseDate *time.Time `json:"first_release_date,omitempty"`
	RefreshedAt      time.Time  `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// TableName returns the table name
func (Game) TableName() string {
	return "tr_games"
}

// GameStalenessThreshold is how old cached metadata may get before a
// page view triggers a background refresh.
const GameStalenessThreshold = 30 * 24 * time.Hour

// Stale reports whether the cached metadata needs a refresh
func (g *Game) Stale(now time.Time) bool {
	return now.Sub(g.RefreshedAt) > GameStalenessThreshold
}
