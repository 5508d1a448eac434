package model

import "time"

// MaxPraiseLen is the praise message cap, enforced before the message is sent.
const MaxPraiseLen = 280

type Praise struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
