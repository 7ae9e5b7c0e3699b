package models

import "time"

const (
	MinCommentTextLength = 5
	MaxCommentTextLength = 1024
	MinCommentRating     = 1
	MaxCommentRating     = 5
	CommentRequestLimit  = 50
)

type Comment struct {
	ID              int       `json:"id"`
	Text            string    `json:"text"`
	Rating          float64   `json:"rating"`
	AuthorID        int       `json:"author_id"`
	OfferID         int       `json:"offer_id"`
	AuthorName      string    `json:"author_name,omitempty"`
	AuthorAvatarURL *string   `json:"author_avatar_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateCommentRequest struct {
	Text   string  `json:"text"`
	Rating float64 `json:"rating"`
}

// CommentRollup is the read-side aggregate over an offer's comments.
// It is recomputed from the live comment set on every read and never
// persisted, so it cannot drift from the underlying comments.
type CommentRollup struct {
	Count         int     `json:"count"`
	AverageRating float64 `json:"average_rating"`
}
