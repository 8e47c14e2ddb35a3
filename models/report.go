package models

import "time"

// Report references an idea by id and carries a denormalized copy of the
// idea's title as it was at reporting time.
type Report struct {
	ID          uint      `json:"id"`
	IdeaID      uint      `json:"idea_id"`
	IdeaTitle   string    `json:"idea_title"`
	UserID      uint      `json:"user_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
