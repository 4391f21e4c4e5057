package validate

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GlebRadaev/donations/pkg/money"
)

type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	return "validation failed: " + strings.Join(fe.Fields(), ", ")
}

// Fields returns the failing field names in a stable order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Missing returns the names of fields that failed the required rule.
func (fe FieldErrors) Missing() []string {
	var missing []string
	for _, f := range fe.Fields() {
		if fe[f] == requiredMessage {
			missing = append(missing, f)
		}
	}
	return missing
}

// Message summarises the errors for a response body.
func (fe FieldErrors) Message() string {
	if missing := fe.Missing(); len(missing) > 0 {
		return "Missing required fields: " + strings.Join(missing, ", ")
	}
	return "Invalid fields: " + strings.Join(fe.Fields(), ", ")
}

const requiredMessage = "is required"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return money.Supported(fl.Field().String())
	})
	return v
}

// Struct validates s by its validate tags and reports failures keyed by json name.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := FieldErrors{}
	for _, fe := range ve {
		out[fe.Field()] = messageForTag(fe.Tag(), fe.Param())
	}
	return out
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return requiredMessage
	case "email":
		return "must be a valid email address"
	case "uuid", "uuid4":
		return "must be a valid id"
	case "currency":
		return "must be a supported currency code"
	case "max":
		return "must be at most " + param + " characters"
	case "min":
		return "must be at least " + param + " characters"
	case "oneof":
		return "must be one of: " + param
	default:
		return "is invalid"
	}
}
