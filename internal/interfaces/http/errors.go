package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/customers-api/internal/application/dto"
	"github.com/jhoicas/customers-api/internal/domain"
	"github.com/jhoicas/customers-api/pkg/logger"
)

// Códigos de error del cuerpo dto.ErrorResponse.
const (
	CodeValidation  = "VALIDATION"
	CodeInvalidBody = "INVALID_BODY"
	CodeNotFound    = "NOT_FOUND"
	CodeDuplicate   = "DUPLICATE"
	CodeInternal    = "INTERNAL"
)

// writeError traduce un error de la capa de aplicación a status + JSON.
// Lo no clasificado es 500 y se registra; el detalle no se expone.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	resp := dto.ErrorResponse{Message: err.Error()}
	if de, ok := domain.AsError(err); ok {
		resp.Message, resp.Detail, resp.Fields = de.Message, de.Detail, de.Fields
	}

	var status int
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, resp.Code = fiber.StatusBadRequest, CodeInvalidBody
		resp.Message, resp.Detail = "cuerpo inválido", ""
	case errors.Is(err, domain.ErrValidation):
		status, resp.Code = fiber.StatusBadRequest, CodeValidation
	case errors.Is(err, domain.ErrNotFound):
		status, resp.Code = fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrConflict):
		status, resp.Code = fiber.StatusConflict, CodeDuplicate
	default:
		log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Str("path", c.Path()).
			Msg("error no controlado")
		status = fiber.StatusInternalServerError
		resp = dto.ErrorResponse{Code: CodeInternal, Message: "error interno"}
	}
	return c.Status(status).JSON(resp)
}

// notFound respuesta 404 sin pasar por la capa de aplicación.
func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: CodeNotFound, Message: msg})
}

// paramID lee un id entero positivo de la ruta.
func paramID(c *fiber.Ctx, key string) (int64, bool) {
	id, err := c.ParamsInt(key)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}
