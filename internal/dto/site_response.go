package dto

import "github.com/pyo-glory/site-gateway/internal/theme"

// SiteResponse is everything the browser shell needs to render one variant:
// style tokens, copy strings and the submission policy in force.
type SiteResponse struct {
	Variant        string        `json:"variant"`
	Palette        theme.Palette `json:"palette"`
	Copy           theme.Copy    `json:"copy"`
	Policy         theme.Policy  `json:"policy"`
	PraiseWindow   int           `json:"praise_window"`
	MaxUploadBytes int64         `json:"max_upload_bytes"`
}
