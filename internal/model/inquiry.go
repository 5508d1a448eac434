package model

// Inquiry categories accepted by the backend contact endpoint.
const (
	InquiryQuote       = "quote"
	InquiryMaintenance = "maintenance"
	InquiryPartnership = "partnership"
	InquiryOther       = "other"
)

type Inquiry struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Category string `json:"category"`
	Message  string `json:"message"`
}
