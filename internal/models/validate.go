package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator for request payloads. The custom
// "category" rule checks membership in the Categories set.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return IsValidCategory(fl.Field().String())
	})
	return v
}

// CreateProductRequest is the payload for creating a product. All three
// fields are mandatory and zero values count as missing.
type CreateProductRequest struct {
	Name     string  `json:"name" validate:"required,min=3,max=100"`
	Price    float64 `json:"price" validate:"required,gte=0"`
	Category string  `json:"category" validate:"required,category"`
}

// Validate normalizes the payload and checks every constraint. It returns
// one message per violation; an empty result means the payload is valid.
func (r *CreateProductRequest) Validate() []string {
	r.Name = strings.TrimSpace(r.Name)
	return validationMessages(validate.Struct(r))
}

// UpdateProductRequest is the partial payload for updating a product. Absent
// fields leave the stored value untouched; present fields are validated with
// the same rules as on create.
type UpdateProductRequest struct {
	Name     *string  `json:"name" validate:"omitnil,min=3,max=100"`
	Price    *float64 `json:"price" validate:"omitnil,gte=0"`
	Category *string  `json:"category" validate:"omitnil,category"`
}

// Validate normalizes and checks every field present in the payload.
func (r *UpdateProductRequest) Validate() []string {
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
	}
	return validationMessages(validate.Struct(r))
}

// validationMessages flattens validator output into the message list carried
// by 400 responses. All violations are reported at once rather than stopping
// at the first.
func validationMessages(err error) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return msgs
}

// fieldMessage renders a single constraint violation as a human-readable
// message. The enum message echoes the offending value so clients can see
// what was rejected.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s cannot be negative", fe.Field())
	case "category":
		return fmt.Sprintf("%v is not a valid category", fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
