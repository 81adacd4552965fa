// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormValidator validates the form models using struct tags.
//
// Field names in the resulting [FieldErrors] are taken from the "form" tag,
// so they match the input names of the HTML forms.
type FormValidator struct {
	validate *validator.Validate
}

// NewFormValidator constructs a FormValidator with the blog's custom tags
// registered.
func NewFormValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// notblank is required-after-trimming.
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		panic(fmt.Sprintf("registering notblank validation: %v", err))
	}

	return &FormValidator{validate: v}
}

func (v *FormValidator) Validate(ctx context.Context, obj any) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: formatFieldError(fe)})
	}
	return out
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}
	return strings.TrimSpace(field.String()) != ""
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "This field is required."
	case "email":
		return "Invalid email address."
	case "url":
		return "Invalid URL."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Field must be at least %s characters long.", fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("Failed the '%s=%s' check.", fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("Failed the '%s' check.", fe.Tag())
	}
}
