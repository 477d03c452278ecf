// Package validation wraps go-playground/validator with conversion into
// the service error taxonomy.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"promohub/internal/core/port"
)

// Validator runs struct tag rules and reports the first failure as a
// port.ValidationError keyed by the field's JSON name.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for the service inputs.
func New() *Validator {
	v := validator.New()

	// report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{v: v}
}

// Validate checks s and converts the first rule failure into a
// port.ValidationError.
func (va *Validator) Validate(s any) error {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}
	var ferrs validator.ValidationErrors
	if !errors.As(err, &ferrs) || len(ferrs) == 0 {
		return err
	}
	fe := ferrs[0]
	return &port.ValidationError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gtefield":
		return "must not be before " + fe.Param()
	default:
		return "is invalid"
	}
}
