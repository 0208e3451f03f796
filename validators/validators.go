package validators

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Check runs struct-tag validation and converts failures into the
// field→message map the API returns
func Check(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["request"] = "Invalid request body!"
		return out
	}
	for _, fe := range verrs {
		out[fieldName(fe.Field())] = message(fe)
	}
	return out
}

func fieldName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required!"
	case "email":
		return "Must be a valid email address!"
	case "min":
		return "Must be at least " + fe.Param() + "!"
	case "max":
		return "Must be at most " + fe.Param() + "!"
	case "oneof":
		return "Must be one of: " + fe.Param() + "!"
	case "datetime":
		return "Must match the format " + fe.Param() + "!"
	}
	return "Invalid value!"
}
