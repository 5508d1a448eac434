package dto

type CreatePraiseRequest struct {
	Message string `json:"message" validate:"required"`
}
