package dto

import (
	"strings"

	"github.com/ai-solution/site-backend/internal/application/errs"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request struct against its tags and maps violations to
// the shared ValidationError so the HTTP layer can render field-level detail.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var invalid validator.ValidationErrors
	fields := map[string]string{}
	if ok := errorsAs(err, &invalid); ok {
		for _, fe := range invalid {
			fields[fieldName(fe)] = fe.Tag()
		}
		return errs.ValidationError{Fields: fields}
	}
	return errs.NewValidation("payload", err.Error())
}

func errorsAs(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace is Request.Field; strip the struct prefix.
	parts := strings.SplitN(fe.StructNamespace(), ".", 2)
	if len(parts) == 2 {
		return lowerFirst(parts[1])
	}
	return lowerFirst(fe.Field())
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
