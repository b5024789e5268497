package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/customers-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Reportar los errores con el nombre del campo en el cuerpo (tag json).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate aplica los tags validate de s. Los campos obligatorios ausentes se
// reportan con requiredMsg; el resto de reglas incumplidas como "valores inválidos".
func Validate(s any, requiredMsg string) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var missing, invalid []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			missing = append(missing, fe.Field())
			continue
		}
		invalid = append(invalid, fe.Field())
	}
	if len(missing) > 0 {
		return domain.Validation(requiredMsg, missing...)
	}
	return domain.Validation("valores inválidos", invalid...)
}

// DecodeAndValidate combina Fields.Decode y Validate.
func DecodeAndValidate(f Fields, dst any, requiredMsg string) error {
	if err := f.Decode(dst); err != nil {
		return err
	}
	return Validate(dst, requiredMsg)
}
