package domain

import "time"

// PlayStatus is the quest-log / collection status enum. No transition
// graph is enforced; any status may move to any other. Unplayed is
// collection-only and never reachable from quest-log transitions.
type PlayStatus string

const (
	StatusUnplayed  PlayStatus = "unplayed"
	StatusBacklog   PlayStatus = "backlog"
	StatusPlaying   PlayStatus = "playing"
	StatusOnHold    PlayStatus = "on_hold"
	StatusDropped   PlayStatus = "dropped"
	StatusBeaten    PlayStatus = "beaten"
	StatusCompleted PlayStatus = "completed"
)

// ValidForQuestLog reports whether s may appear on a quest-log entry
func (s PlayStatus) ValidForQuestLog() bool {
	switch s {
	case StatusBacklog, StatusPlaying, StatusOnHold, StatusDropped, StatusBeaten, StatusCompleted:
		return true
	}
	return false
}

// ValidForCollection reports whether s may appear on a collection entry
func (s PlayStatus) ValidForCollection() bool {
	return s == StatusUnplayed || s.ValidForQuestLog()
}

// QuestLogEntry is a diary-style playthrough record. Multiple entries
// per (user, game) are permitted, unlike the collection's one row per
// game.
type QuestLogEntry struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint       `gorm:"index:idx_questlog_user_game" json:"user_id"`
	GameID      uint       `gorm:"index:idx_questlog_user_game" json:"game_id"`
	Status      PlayStatus `gorm:"size:16" json:"status"`
	QuickRating *int       `json:"quick_rating,omitempty"`
	Notes       string     `gorm:"size:1024" json:"notes,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the table name
func (QuestLogEntry) TableName() string {
	return "tr_quest_log_entries"
}

// CreateQuestLogRequest request body for starting a quest-log entry
type CreateQuestLogRequest struct {
	GameID uint       `json:"game_id" binding:"required"`
	Status PlayStatus `json:"status" binding:"required"`
	Notes  string     `json:"notes"`
}

// ChangeStatusRequest request body for a status change. Rating and
// ShareAsPost drive the optional quick-rate and share-post side
// effects.
type ChangeStatusRequest struct {
	Status      PlayStatus `json:"status" binding:"required"`
	Rating      *int       `json:"rating"`
	ShareAsPost bool       `json:"share_as_post"`
	Notes       string     `json:"notes"`
}

// QuickRateRequest rates a game with or without an existing quest-log
// entry.
type QuickRateRequest struct {
	GameID      uint `json:"game_id" binding:"required"`
	Rating      int  `json:"rating" binding:"required"`
	ShareAsPost bool `json:"share_as_post"`
}

// QuestLogEntryResponse is an entry joined with its game
type QuestLogEntryResponse struct {
	ID          uint       `json:"id"`
	Game        Game       `json:"game"`
	Status      PlayStatus `json:"status"`
	QuickRating *int       `json:"quick_rating,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
