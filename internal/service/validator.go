package service

import (
	"fmt"
	"strings"

	apperrors "messagemural/internal/errors"
	"messagemural/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	MsgContentRequired = "Content is required and must be a string"
	MsgContentEmpty    = "Content cannot be empty"
	MsgContentTooLong  = "Content must be less than 1000 characters"
	MsgAuthorNotString = "Author must be a string"
	MsgAuthorTooLong   = "Author name must be less than 100 characters"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidationError carries every reason a candidate was rejected.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", apperrors.ErrInvalidMessage, strings.Join(e.Details, "; "))
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrInvalidMessage
}

// Check runs every rule against req. Reasons are reported in rule order.
func Check(req CreateMessageRequest) ValidationResult {
	var errs []string
	check := func(value string, tag, reason string) {
		if validate.Var(value, tag) != nil {
			errs = append(errs, reason)
		}
	}

	if req.Content.IsString {
		check(req.Content.Value, "notblank", MsgContentEmpty)
		check(req.Content.Value, fmt.Sprintf("max=%d", models.MaxContentLength), MsgContentTooLong)
	} else {
		errs = append(errs, MsgContentRequired)
	}

	if req.Author.Present {
		if req.Author.IsString {
			check(req.Author.Value, fmt.Sprintf("max=%d", models.MaxAuthorLength), MsgAuthorTooLong)
		} else {
			errs = append(errs, MsgAuthorNotString)
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// Validate turns req into a NewMessage, or a *ValidationError listing every reason.
func (req CreateMessageRequest) Validate() (NewMessage, error) {
	result := Check(req)
	if !result.Valid {
		return NewMessage{}, &ValidationError{Details: result.Errors}
	}
	return NewMessage{content: req.Content.Value, author: req.Author.Value}, nil
}
