package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "{field} is required",
		"gte":      "{field} must be greater than or equal to {param}",
		"lte":      "{field} must be less than or equal to {param}",
		"oneof":    "{field} must be one of {param}",
		"max":      "{field} must be less than or equal to {param}",
		"min":      "{field} must be greater than or equal to {param}",
		"email":    "{field} must be a valid email address",
		"trimmin":  "{field} must be at least {param} characters",
		"trimmax":  "{field} must be at most {param} characters",
	}
)

func render(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == "" {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			return render(valErr)
		}

		return valErrors.Error()
	}

	return err.Error()
}

// fieldMessages maps every violated field to its rendered message. The first
// violated rule per field wins.
func fieldMessages(err error) map[string]string {
	fields := make(map[string]string)

	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		fields["_"] = err.Error()

		return fields
	}

	for _, valErr := range valErrors {
		if _, seen := fields[valErr.Field()]; seen {
			continue
		}

		fields[valErr.Field()] = render(valErr)
	}

	return fields
}
