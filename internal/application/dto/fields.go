package dto

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/jhoicas/customers-api/internal/domain"
)

// Fields cuerpo de la petición normalizado: un objeto JSON y un formulario
// (urlencoded o multipart) producen el mismo mapa campo -> valor.
type Fields map[string]any

// timestampLayouts formatos aceptados para marcas de tiempo enviadas por el cliente.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

var timeType = reflect.TypeOf(time.Time{})

// Decode vuelca los campos sobre dst usando los tags json. Las claves que dst
// no declara se descartan. La conversión es débil: "1" -> 1, 4242 -> "4242",
// "true" -> true, para que JSON y formularios se comporten igual.
func (f Fields) Decode(dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(normalizeHook),
		Result:           dst,
	})
	if err != nil {
		return fmt.Errorf("decoder: %w", err)
	}
	if f == nil {
		f = Fields{}
	}
	if err := dec.Decode(map[string]any(f)); err != nil {
		return &domain.Error{Kind: domain.ErrValidation, Message: "tipo de dato inválido", Detail: err.Error()}
	}
	return nil
}

// normalizeHook trata "" como ausente en campos opcionales no textuales y
// convierte cadenas en time.Time.
func normalizeHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if !ok {
		return data, nil
	}
	if to.Kind() == reflect.Pointer && to.Elem().Kind() != reflect.String && strings.TrimSpace(s) == "" {
		return nil, nil
	}
	if to == timeType {
		return parseTimestamp(s)
	}
	return data, nil
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("marca de tiempo inválida %q", s)
}
