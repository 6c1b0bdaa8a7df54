package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	val "github.com/go-playground/validator/v10"

	"crewlink/shared/failure"
)

var validate *val.Validate

// trimmin and trimmax validate the rune length of a string after trimming
// surrounding whitespace. Form inputs are compared against their trimmed
// length everywhere in the app, so the raw min/max tags are not enough.
func registerTrimMinValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	minLen, err := strconv.Atoi(field.Param())
	if err != nil {
		return false
	}

	return utf8.RuneCountInString(strings.TrimSpace(str)) >= minLen
}

func registerTrimMaxValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	maxLen, err := strconv.Atoi(field.Param())
	if err != nil {
		return false
	}

	return utf8.RuneCountInString(strings.TrimSpace(str)) <= maxLen
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report fields by their json names so form errors line up with the
	// wire payload.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	err := validate.RegisterValidation("trimmin", registerTrimMinValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("trimmax", registerTrimMaxValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

// ValidateFields validates the struct and reports every violated rule as a
// field-level error, keyed by the field's json name. Used by form-backed
// operations that must surface inline errors without contacting the network.
func ValidateFields[T any](data *T) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	return failure.NewValidation(fieldMessages(err)) //nolint:wrapcheck
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
