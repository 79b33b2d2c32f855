package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("kudos_category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// ValidationError lists every failed field check, in field order.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// ValidateBoard checks the required board fields (title, category, image).
func ValidateBoard(r *BoardRequest) error {
	return check(r)
}

// ValidateCard checks the required card fields (title, image).
func ValidateCard(r *CardRequest) error {
	return check(r)
}

// ValidateComment checks that the message is present and not blank.
func ValidateComment(r *CommentRequest) error {
	return check(r)
}

func check(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := &ValidationError{Errors: make([]string, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Errors = append(out.Errors, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "kudos_category":
		names := make([]string, len(Categories))
		for i, c := range Categories {
			names[i] = string(c)
		}
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(names, ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
