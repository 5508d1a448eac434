package dto

import "github.com/pyo-glory/site-gateway/internal/model"

// AnnouncementsResponse mirrors how the board renders: one highlighted latest
// entry plus a short history window.
type AnnouncementsResponse struct {
	Latest  *model.Announcement  `json:"latest,omitempty"`
	History []model.Announcement `json:"history"`
}

// NewAnnouncementsResponse splits a newest-first list into latest + history.
func NewAnnouncementsResponse(announcements []model.Announcement, historyLen int) AnnouncementsResponse {
	resp := AnnouncementsResponse{History: []model.Announcement{}}
	if len(announcements) == 0 {
		return resp
	}

	latest := announcements[0]
	resp.Latest = &latest

	rest := announcements[1:]
	if len(rest) > historyLen {
		rest = rest[:historyLen]
	}
	resp.History = append(resp.History, rest...)
	return resp
}
