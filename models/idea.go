package models

// Idea lives in the JSON document store, not in the database. A user id
// appears in at most one of Upvotes/Downvotes at any time.
type Idea struct {
	ID          uint   `json:"id"`
	UserID      uint   `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Upvotes     []uint `json:"upvotes"`
	Downvotes   []uint `json:"downvotes"`
}

// Score is the net vote count used by the "popular" sort.
func (i *Idea) Score() int {
	return len(i.Upvotes) - len(i.Downvotes)
}
