package model

import "time"

// Post is the canonical record the board backend returns. Media fields arrive
// as whatever the backend deployment happens to emit (bare filename, relative
// path or absolute URL) and are normalized at render time.
type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Location   string    `json:"location"`
	AchievedAt string    `json:"achieved_at"`
	Content    string    `json:"content"`
	Image      string    `json:"image"`
	Video      string    `json:"video"`
	IsBlocked  bool      `json:"is_blocked"`
	CreatedAt  time.Time `json:"created_at"`
}

// HasMedia reports whether the post carries at least one attachment reference.
func (p Post) HasMedia() bool {
	return p.Image != "" || p.Video != ""
}
