package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/blaisecz/sleep-analysis/internal/domain"
	"github.com/blaisecz/sleep-analysis/pkg/problem"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// messages maps a failed tag to its client-facing text. A trailing space
// means the tag parameter is appended.
var messages = map[string]string{
	"required":    "is required",
	"min":         "must be at least ",
	"max":         "must be at most ",
	"len":         "must have length ",
	"oneof":       "must be one of: ",
	"hexadecimal": "must be hexadecimal",
	"timezone":    "must be a valid IANA timezone",
	"isodate":     "must be a date in YYYY-MM-DD format",
}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterValidation("timezone", func(fl validator.FieldLevel) bool {
		_, err := time.LoadLocation(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.DateLayout, fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks s against its validate tags.
func Validate(s any) []problem.FieldError {
	return fieldErrors("body", validate.Struct(s))
}

// Var checks a single value, e.g. Var("timezone", tz, "timezone").
func Var(field string, value any, tag string) []problem.FieldError {
	errs := fieldErrors(field, validate.Var(value, tag))
	for i := range errs {
		errs[i].Field = field
	}
	return errs
}

func fieldErrors(fallback string, err error) []problem.FieldError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return []problem.FieldError{{Field: fallback, Message: "is invalid"}}
	}

	out := make([]problem.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, problem.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	msg, ok := messages[fe.Tag()]
	if !ok {
		return "is invalid"
	}
	if strings.HasSuffix(msg, " ") {
		return msg + fe.Param()
	}
	return msg
}
