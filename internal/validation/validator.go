// Package validation checks request shape before the service layer
// runs. Semantic checks (URL host, video id, ownership) stay in the
// domain; this package only rejects requests that are structurally
// wrong.
package validation

import (
	"strings"

	"quiztube/internal/domain"
	"quiztube/internal/dto"
	"quiztube/internal/util"
)

const maxTitleLength = 255

// Validator provides request validation functionality.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreateQuizRequest checks the quiz creation body.
func (v *Validator) ValidateCreateQuizRequest(req *dto.CreateQuizRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(req.URL) == "" {
		errs = append(errs, domain.NewMissingFieldError("url"))
	}

	return errs
}

// ValidateUpdateQuizRequest checks the partial update body. At least
// one field must be present, and present fields must not be blank.
func (v *Validator) ValidateUpdateQuizRequest(req *dto.UpdateQuizRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if req.Title == nil && req.Description == nil && req.VideoURL == nil {
		errs = append(errs, domain.ValidationError{
			Field:   "body",
			Message: "at least one of title, description or video_url is required",
		})
		return errs
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			errs = append(errs, domain.NewMissingFieldError("title"))
		} else if len(*req.Title) > maxTitleLength {
			errs = append(errs, domain.NewInvalidFormatError("title", *req.Title))
		}
	}
	if req.VideoURL != nil && strings.TrimSpace(*req.VideoURL) == "" {
		errs = append(errs, domain.NewMissingFieldError("video_url"))
	}

	return errs
}

// ValidateQuizID checks a quiz id path parameter.
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errs = append(errs, domain.NewMissingFieldError("id"))
	} else if !util.IsValidULID(quizID) {
		errs = append(errs, domain.NewInvalidFormatError("id", quizID))
	}

	return errs
}
