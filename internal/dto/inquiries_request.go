package dto

type CreateInquiryRequest struct {
	Name     string `json:"name" validate:"required"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"required,email"`
	Category string `json:"category" validate:"required,oneof=quote maintenance partnership other"`
	Message  string `json:"message" validate:"required"`
}

// DeletionRequest is the human-processed takedown form. Submitting one has no
// effect on the displayed feed; an operator reviews it out of band.
type DeletionRequest struct {
	Reason  string `json:"reason" validate:"required,oneof=shame drunk threat job mom"`
	Apology string `json:"apology" validate:"required,min=10"`
}
