package controller

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// rule pins the message for one field/tag pair and its priority.
type rule struct {
	field   string
	tag     string
	message string
}

// checkStruct validates v and reports a single violation. Violations named
// in rules win in rule order; otherwise the first violation in field order
// is described from labels.
func checkStruct(v any, rules []rule, labels map[string]string) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate %T: %w", v, err)
	}

	for _, r := range rules {
		for _, fe := range fieldErrs {
			if fe.Field() == r.field && fe.Tag() == r.tag {
				return &ValidationError{Field: r.field, Message: r.message}
			}
		}
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: fe.Field(), Message: describe(fe, labels)}
}

func describe(fe validator.FieldError, labels map[string]string) string {
	label, ok := labels[fe.Field()]
	if !ok {
		label = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "email":
		return label + " must be a valid email address"
	case "url":
		return label + " must be a valid URL"
	case "datetime":
		return label + " must be a date (YYYY-MM-DD)"
	case "gt", "gte":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", label, fe.Param())
	}
	return label + " is invalid"
}

// passwordRules are shared by every form with a password field.
var passwordRules = []rule{
	{field: "confirmPassword", tag: "eqfield", message: "Passwords do not match"},
	{field: "password", tag: "min", message: "Password must be at least 6 characters"},
}
