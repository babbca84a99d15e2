package domain

// TargetType tags the content kind a like, comment or notification
// points at. Closed set; validate at the boundary.
type TargetType string

const (
	TargetPost    TargetType = "post"
	TargetArticle TargetType = "article"
	TargetReview  TargetType = "review"
	TargetComment TargetType = "comment"
)

// Valid reports whether t is a known content kind
func (t TargetType) Valid() bool {
	switch t {
	case TargetPost, TargetArticle, TargetReview, TargetComment:
		return true
	}
	return false
}

// Commentable reports whether the kind accepts comments. Comments on
// comments go through the reply path instead.
func (t TargetType) Commentable() bool {
	switch t {
	case TargetPost, TargetArticle, TargetReview:
		return true
	}
	return false
}
