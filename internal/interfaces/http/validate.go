package http

import "github.com/go-playground/validator/v10"

// validate single validator instance driving the `validate` tags on request DTOs.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validationMessage flattens the first field error into a readable message.
func validationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return errs[0].Field() + " failed " + errs[0].Tag() + " validation"
	}
	return err.Error()
}
