package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/scholarly/paper-catalog/internal/domain"
)

// Validator trims input fields and checks them against struct tags. It runs
// before any domain logic so that invalid payloads never reach a repository.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator backed by go-playground struct validation.
// Field errors are reported under the JSON field name.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// ValidateCreateAuthor trims and validates author-creation input in place.
func (v *Validator) ValidateCreateAuthor(in *CreateAuthorInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Bio = strings.TrimSpace(in.Bio)
	in.Email = strings.TrimSpace(in.Email)
	return v.check(in)
}

// ValidateCreatePaper trims and validates paper-creation input in place.
func (v *Validator) ValidateCreatePaper(in *CreatePaperInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Abstract = strings.TrimSpace(in.Abstract)
	in.DOI = strings.TrimSpace(in.DOI)
	return v.check(in)
}

// ValidateAuthorRecord checks the outward shape of a stored author row.
func (v *Validator) ValidateAuthorRecord(rec *AuthorRecord) error {
	return v.check(rec)
}

// ValidatePaperRecord checks the outward shape of a stored paper row.
func (v *Validator) ValidatePaperRecord(rec *PaperRecord) error {
	return v.check(rec)
}

func (v *Validator) check(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// A non-struct or nil value reached the validator.
		return fmt.Errorf("validation setup: %w", domain.ErrInternalError)
	}

	out := &domain.ValidationErrors{Errors: make([]domain.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Errors = append(out.Errors, domain.FieldError{
			Field:  fe.Field(),
			Reason: reasonForTag(fe),
		})
	}
	return out
}

// reasonForTag renders a human-readable reason for a failed validation tag.
func reasonForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
