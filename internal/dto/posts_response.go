package dto

import (
	"time"

	"github.com/pyo-glory/site-gateway/internal/mediaurl"
	"github.com/pyo-glory/site-gateway/internal/model"
)

// Fixed placeholders rendered instead of moderated content. A blocked post
// never exposes its title, content or media, whatever those fields hold.
const (
	RedactedTitle   = "[BLOCKED]"
	RedactedContent = "This post has been blocked by a moderator."
)

type PostView struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Location   string    `json:"location,omitempty"`
	AchievedAt string    `json:"achieved_at,omitempty"`
	Content    string    `json:"content"`
	Image      string    `json:"image,omitempty"`
	Video      string    `json:"video,omitempty"`
	Blocked    bool      `json:"is_blocked"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewPostView maps a canonical post into its rendered form. The moderation
// flag is checked before anything else touches the record: blocked posts get
// the placeholder only, and their media references are never rewritten.
func NewPostView(p model.Post, rewriter *mediaurl.Rewriter) PostView {
	if p.IsBlocked {
		return PostView{
			ID:        p.ID,
			Title:     RedactedTitle,
			Content:   RedactedContent,
			Blocked:   true,
			CreatedAt: p.CreatedAt,
		}
	}

	return PostView{
		ID:         p.ID,
		Title:      p.Title,
		Location:   p.Location,
		AchievedAt: p.AchievedAt,
		Content:    p.Content,
		Image:      rewriter.Rewrite(p.Image),
		Video:      rewriter.Rewrite(p.Video),
		CreatedAt:  p.CreatedAt,
	}
}

type FeedResponse struct {
	Loading bool       `json:"loading"`
	Error   string     `json:"error,omitempty"`
	Posts   []PostView `json:"posts"`
}

type SubmitPostResponse struct {
	Post   PostView `json:"post"`
	Notice string   `json:"notice"`
}
