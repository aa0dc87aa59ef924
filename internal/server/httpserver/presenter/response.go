// Package presenter renders the JSON envelope every account endpoint answers with.
package presenter

import (
	"errors"

	"github.com/dmitrijs2005/pawsome/internal/common"
	"github.com/dmitrijs2005/pawsome/internal/server/models"
	"github.com/dmitrijs2005/pawsome/internal/server/services"
	"github.com/gofiber/fiber/v2"
)

const (
	MsgAccountCreated   = "Account created successfully"
	MsgLoginSuccessful  = "Login successful"
	MsgLoggedIn         = "Logged in"
	MsgLoggedOut        = "Logged out"
	MsgNotLoggedIn      = "Not logged in"
	MsgMissingFields    = "Please fill in all fields"
	MsgInvalidEmail     = "Invalid email format"
	MsgAccountNotFound  = "No account found with this email"
	MsgIncorrectPass    = "Incorrect password"
	MsgInvalidMethod    = "Invalid request method"
	MsgInternal         = "Internal server error"
	prefixUnavailable   = "Database connection failed: "
	prefixAccountCreate = "Error creating account: "
	prefixStorage       = "Database error: "
)

// Response is the body of every signup/login/session answer.
type Response struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	User    *models.AccountSummary `json:"user,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func OK(c *fiber.Ctx, status int, message string, user *models.AccountSummary) error {
	return JSON(c, status, Response{Success: true, Message: message, User: user})
}

func Fail(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, Response{Success: false, Message: message})
}

// Classify maps a service error to an HTTP status and the client message.
// Unknown errors become 500 with a generic message.
func Classify(err error) (int, string) {
	var se *common.StorageError
	if errors.As(err, &se) {
		switch {
		case errors.Is(se.Kind, common.ErrorStorageUnavailable):
			return fiber.StatusServiceUnavailable, prefixUnavailable + se.Detail()
		case errors.Is(se.Kind, common.ErrorAccountCreate):
			return fiber.StatusInternalServerError, prefixAccountCreate + se.Detail()
		default:
			return fiber.StatusInternalServerError, prefixStorage + se.Detail()
		}
	}

	switch {
	case errors.Is(err, common.ErrorMissingFields):
		return fiber.StatusBadRequest, MsgMissingFields
	case errors.Is(err, common.ErrorInvalidEmail):
		return fiber.StatusBadRequest, MsgInvalidEmail
	case errors.Is(err, common.ErrorAccountNotFound):
		return fiber.StatusUnauthorized, MsgAccountNotFound
	case errors.Is(err, common.ErrorIncorrectPassword):
		return fiber.StatusUnauthorized, MsgIncorrectPass
	}

	var ve *services.ValidationError
	if errors.As(err, &ve) {
		return fiber.StatusBadRequest, ve.Error()
	}

	return fiber.StatusInternalServerError, MsgInternal
}

// Error writes the classified failure for err.
func Error(c *fiber.Ctx, err error) error {
	status, msg := Classify(err)
	return Fail(c, status, msg)
}
