package domain

// MentionKind what a rich-text mention points at
type MentionKind string

const (
	MentionUser MentionKind = "user"
	MentionGame MentionKind = "game"
)

// Mention is the closed tagged variant carried in content create and
// update payloads. SubjectID is the mentioned user or game row id.
type Mention struct {
	Kind        MentionKind `json:"kind" binding:"required"`
	SubjectID   uint        `json:"subject_id" binding:"required"`
	Slug        string      `json:"slug,omitempty"`
	DisplayText string      `json:"display_text,omitempty"`
}

// Valid reports whether the mention has a known kind and a subject
func (m Mention) Valid() bool {
	return (m.Kind == MentionUser || m.Kind == MentionGame) && m.SubjectID != 0
}

// ContentMention persists the mention list of a content item so a
// later save can diff against it. Only newly-added user mentions on a
// published save fan out notifications.
type ContentMention struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	TargetType  TargetType  `gorm:"index:idx_mention_target;size:16" json:"target_type"`
	TargetID    uint        `gorm:"index:idx_mention_target" json:"target_id"`
	Kind        MentionKind `gorm:"size:16" json:"kind"`
	SubjectID   uint        `json:"subject_id"`
	Slug        string      `gorm:"size:255" json:"slug,omitempty"`
	DisplayText string      `gorm:"size:255" json:"display_text,omitempty"`
}

// TableName returns the table name
func (ContentMention) TableName() string {
	return "tr_content_mentions"
}
