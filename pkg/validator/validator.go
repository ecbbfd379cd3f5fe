package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

// ValidationError is the wire shape for schema violations: the first
// failing field plus a message.
type ValidationError struct {
	Message string `json:"message"`
	Field   string `json:"field"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

var validate = validator.New()

func init() {
	// Report field names as their json tags so error envelopes match the
	// request body shape
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.Field()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// FirstError validates data and returns the first failure as a
// ValidationError, or nil when valid.
func FirstError(data interface{}) *ValidationError {
	errs := ValidateStruct(data)
	if len(errs) == 0 {
		return nil
	}
	first := errs[0]
	msg := fmt.Sprintf("Field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	if first.Value != "" {
		msg = fmt.Sprintf("%s (%s)", msg, first.Value)
	}
	return &ValidationError{Message: msg, Field: first.FailedField}
}
