package service

import (
	"context"
	"errors"
	"html"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/pyo-glory/site-gateway/internal/backend"
	"github.com/pyo-glory/site-gateway/internal/dto"
	"github.com/pyo-glory/site-gateway/internal/model"
	"go.uber.org/zap"
)

var inquiryPolicy = bluemonday.StrictPolicy()

type inquiryService struct {
	logger   *zap.Logger
	client   *backend.Client
	validate *validator.Validate
}

func newInquiryService(logger *zap.Logger, client *backend.Client) Inquiry {
	return &inquiryService{
		logger:   logger,
		client:   client,
		validate: validator.New(),
	}
}

func (s *inquiryService) Send(ctx context.Context, in dto.CreateInquiryRequest) error {
	if err := s.validate.Struct(in); err != nil {
		return validationErrorFrom(err)
	}

	return s.client.CreateInquiry(ctx, model.Inquiry{
		Name:     in.Name,
		Company:  in.Company,
		Phone:    in.Phone,
		Email:    in.Email,
		Category: in.Category,
		Message:  html.UnescapeString(inquiryPolicy.Sanitize(strings.TrimSpace(in.Message))),
	})
}

// RequestDeletion accepts the takedown form. The workflow is human-processed:
// the request is recorded for an operator and the feed is left untouched.
func (s *inquiryService) RequestDeletion(ctx context.Context, in dto.DeletionRequest) error {
	if err := s.validate.Struct(in); err != nil {
		return validationErrorFrom(err)
	}

	s.logger.Sugar().Infof("deletion request received: reason=%s", in.Reason)
	return nil
}

func validationErrorFrom(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []FieldError{{Field: "form", Message: "invalid form data"}}}
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		var message string
		switch fe.Tag() {
		case "required":
			message = name + " is required"
		case "email":
			message = name + " must be a valid email address"
		case "oneof":
			message = name + " has an unsupported value"
		case "min":
			message = name + " is too short"
		default:
			message = name + " is invalid"
		}
		fields = append(fields, FieldError{Field: name, Message: message})
	}

	return &ValidationError{Fields: fields}
}
