package exts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validation = validator.New(validator.WithRequiredStructEnabled())

// FieldErrors maps a submitted field name to a human readable message,
// handed straight to templates when a form re-renders.
type FieldErrors map[string]string

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

// BindAndValidate binds the submitted form body onto out and validates it.
// Violations come back as per-field messages; a non-nil error means the body
// itself could not be parsed.
func BindAndValidate(c *fiber.Ctx, out any) (FieldErrors, error) {
	if err := c.BodyParser(out); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("unable to parse submission: %v", err))
	}

	if err := validation.Struct(out); err != nil {
		var violations validator.ValidationErrors
		if !errors.As(err, &violations) {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		fields := make(FieldErrors, len(violations))
		for _, item := range violations {
			fields[strings.ToLower(item.Field())] = messageForTag(item)
		}
		return fields, nil
	}

	return nil, nil
}

func messageForTag(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Must be %s characters or fewer.", err.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", err.Param())
	case "lowercase":
		return "Must be lowercase."
	case "alphanum":
		return "Only letters and digits are allowed."
	default:
		return "This value is invalid."
	}
}
