package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia única; es segura para uso concurrente y cachea la
// metadata de los structs.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reportar los campos con el nombre del tag json, no el del struct Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct valida un struct con tags `validate` y devuelve un mapa
// campo → mensaje con TODAS las violaciones, o nil si es válido.
// Los mensajes se entregan en portugués (idioma de la API pública).
func Struct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "E-mail inválido"
	case "min":
		return "deve ter pelo menos " + fe.Param() + " caracteres"
	default:
		return "valor inválido"
	}
}
