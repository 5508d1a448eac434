package model

import "time"

// Announcement is read-only from the gateway's point of view. The backend
// returns announcements newest-first; index 0 is "latest".
type Announcement struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
