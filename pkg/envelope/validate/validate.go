// Package validate is the optional schema-validation adapter for the
// canonical envelope type. Handlers that want their success payloads checked
// against struct rules opt in here; the envelope type itself never depends
// on the validation library.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/xomware/xomware-backend/pkg/envelope"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// PayloadError reports which payload fields failed their declared rules.
type PayloadError struct {
	Fields map[string]string
}

func (e *PayloadError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "payload validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", field, reason))
	}
	return "payload validation failed: " + strings.Join(parts, "; ")
}

// Payload runs struct validation rules against a success envelope's payload.
// Failure envelopes, absent payloads, and non-struct payloads pass trivially:
// the payload is opaque to the envelope and only struct-shaped data carries
// rules to check.
func Payload(e envelope.Envelope) error {
	if e.IsError() || e.Data == nil {
		return nil
	}
	if !structShaped(e.Data) {
		return nil
	}
	if err := validate.Struct(e.Data); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			fields := map[string]string{}
			for _, fieldErr := range errs {
				fields[fieldErr.Field()] = fieldErr.Tag()
			}
			return &PayloadError{Fields: fields}
		}
		return err
	}
	return nil
}

func structShaped(value any) bool {
	t := reflect.TypeOf(value)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t != nil && t.Kind() == reflect.Struct
}
