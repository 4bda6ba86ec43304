package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// rfcPattern is the SAT format for an RFC: 3-4 letters, a yymmdd date and
// a 3-character homoclave.
var rfcPattern = regexp.MustCompile(`^[A-ZÑ&]{3,4}[0-9]{6}[A-Z0-9]{3}$`)

var registerOnce sync.Once

// Register installs the custom rules on gin's binding engine. Safe to call
// more than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		// Report errors under the JSON field name instead of the Go name
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		v.RegisterValidation("rfc", func(fl validator.FieldLevel) bool {
			return rfcPattern.MatchString(fl.Field().String())
		})
	})
}

// Fields flattens a binding error into a field → reason map for 422 bodies.
func Fields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": "el cuerpo de la petición no es JSON válido"}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = reason(fe)
	}
	return fields
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "min":
		return fmt.Sprintf("longitud mínima %s", fe.Param())
	case "max":
		return fmt.Sprintf("longitud máxima %s", fe.Param())
	case "email":
		return "debe ser un correo electrónico válido"
	case "rfc":
		return "no cumple el formato de RFC"
	case "gt":
		return fmt.Sprintf("debe ser mayor que %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	default:
		return fmt.Sprintf("no cumple la regla %s", fe.Tag())
	}
}
