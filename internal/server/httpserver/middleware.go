package httpserver

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/pawsome/internal/logging"
	"github.com/dmitrijs2005/pawsome/internal/server/httpserver/presenter"
	"github.com/gofiber/fiber/v2"
)

const requestIDKey = "requestid"

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestIDKey).(string)
	return id
}

// requestLogger logs one line per request once the handler chain is done.
// Request bodies are never logged.
func requestLogger(l logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		l.Info(c.UserContext(), "http request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", time.Since(start).String(),
			"request_id", requestID(c),
		)
		return err
	}
}

// errorHandler renders framework errors (unknown route, recovered panic) in
// the usual envelope.
func errorHandler(l logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return presenter.Fail(c, fe.Code, fe.Message)
		}
		l.Error(c.UserContext(), "unhandled error", "error", err, "request_id", requestID(c))
		return presenter.Fail(c, fiber.StatusInternalServerError, presenter.MsgInternal)
	}
}
