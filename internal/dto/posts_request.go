package dto

// Attachment is one uploaded file, fully read from the incoming form.
// ContentType is filled by sniffing the data, not trusted from the browser.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SubmitPostRequest carries one submission attempt. Location and AchievedAt
// stay optional free text; AchievedAt is a human-readable time description,
// never parsed.
type SubmitPostRequest struct {
	Title      string `form:"title" validate:"required"`
	Location   string `form:"location"`
	AchievedAt string `form:"achieved_at"`
	Content    string `form:"content" validate:"required"`
	Agreed     bool   `form:"agreed"`

	Image *Attachment `form:"-" validate:"-"`
	Video *Attachment `form:"-" validate:"-"`
}
