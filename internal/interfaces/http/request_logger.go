package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/FinancePro-api/pkg/logger"
)

// HeaderRequestID cabeçalho de correlação; gerado quando o cliente não o envia.
const HeaderRequestID = "X-Request-ID"

// RequestLogger regista uma linha por pedido: método, caminho, estado, latência, request id e utilizador.
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.New().String()
		}
		c.Set(HeaderRequestID, rid)

		err := c.Next()
		if err != nil {
			// o ErrorHandler do Fiber ainda não correu: o estado final vem do erro
			if ferr := c.App().ErrorHandler(c, err); ferr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		default:
			ev = log.Info()
		}
		if msg, _ := c.Locals(localError).(string); msg != "" {
			ev = ev.Str("error", msg)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", rid).
			Str("user_id", GetUserID(c)).
			Msg("pedido")
		return nil
	}
}
