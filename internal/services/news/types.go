package news

import "time"

type News struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Editor      string    `json:"editor"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NewNewsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateNewsRequest is a partial update: nil fields are left untouched.
type UpdateNewsRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
