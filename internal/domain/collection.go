package domain

import "time"

// OwnershipFormat how a collected game is owned
type OwnershipFormat string

const (
	FormatPhysical OwnershipFormat = "physical"
	FormatDigital  OwnershipFormat = "digital"
)

// CollectionEntry is ownership metadata for one game. One row per
// (user, game) — distinct from the quest log's diary semantics.
type CollectionEntry struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint            `gorm:"uniqueIndex:idx_collection_user_game" json:"user_id"`
	GameID      uint            `gorm:"uniqueIndex:idx_collection_user_game" json:"game_id"`
	Status      PlayStatus      `gorm:"size:16" json:"status"`
	Format      OwnershipFormat `gorm:"size:16" json:"format,omitempty"`
	Platform    string          `gorm:"size:64" json:"platform,omitempty"`
	HoursPlayed float64         `json:"hours_played,omitempty"`
	AcquiredAt  *time.Time      `json:"acquired_at,omitempty"`
	Notes       string          `gorm:"size:1024" json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName returns the table name
func (CollectionEntry) TableName() string {
	return "tr_collection_entries"
}

// UpsertCollectionRequest request body for adding or updating a
// collection entry
type UpsertCollectionRequest struct {
	GameID      uint            `json:"game_id" binding:"required"`
	Status      PlayStatus      `json:"status"`
	Format      OwnershipFormat `json:"format"`
	Platform    string          `json:"platform"`
	HoursPlayed float64         `json:"hours_played"`
	AcquiredAt  *time.Time      `json:"acquired_at"`
	Notes       string          `json:"notes"`
}

// CollectionEntryResponse is an entry joined with its game
type CollectionEntryResponse struct {
	ID          uint            `json:"id"`
	Game        Game            `json:"game"`
	Status      PlayStatus      `json:"status"`
	Format      OwnershipFormat `json:"format,omitempty"`
	Platform    string          `json:"platform,omitempty"`
	HoursPlayed float64         `json:"hours_played,omitempty"`
	AcquiredAt  *time.Time      `json:"acquired_at,omitempty"`
	Notes       string          `json:"notes,omitempty"`
}
