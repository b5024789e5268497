package http

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/customers-api/internal/application/dto"
	"github.com/jhoicas/customers-api/internal/domain"
)

// requestFields normaliza el cuerpo a dto.Fields. JSON, urlencoded y
// multipart producen el mismo mapa; un cuerpo vacío es un mapa vacío.
func requestFields(c *fiber.Ctx) (dto.Fields, error) {
	ct := strings.ToLower(string(c.Request().Header.ContentType()))
	switch {
	case strings.HasPrefix(ct, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
		fields := dto.Fields{}
		for k, v := range form.Value {
			if len(v) > 0 {
				fields[k] = v[0]
			}
		}
		return fields, nil
	case strings.HasPrefix(ct, fiber.MIMEApplicationForm):
		fields := dto.Fields{}
		c.Request().PostArgs().VisitAll(func(k, v []byte) {
			fields[string(k)] = string(v)
		})
		return fields, nil
	}

	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return dto.Fields{}, nil
	}
	var fields dto.Fields
	if err := c.App().Config().JSONDecoder(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if fields == nil {
		fields = dto.Fields{}
	}
	return fields, nil
}
