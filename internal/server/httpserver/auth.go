package httpserver

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/pawsome/internal/logging"
	"github.com/dmitrijs2005/pawsome/internal/server/httpserver/presenter"
	"github.com/dmitrijs2005/pawsome/internal/server/models"
	"github.com/dmitrijs2005/pawsome/internal/server/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Session attribute keys.
const (
	sessionUserID    = "user_id"
	sessionUserName  = "user_name"
	sessionUserEmail = "user_email"
)

const RememberCookie = "remember_token"

type SignupUseCase interface {
	CheckConnection(ctx context.Context) error
	Signup(ctx context.Context, req services.SignupRequest) error
}

type LoginUseCase interface {
	CheckConnection(ctx context.Context) error
	Login(ctx context.Context, req services.LoginRequest) (*services.LoginResult, error)
}

// AuthHandler serves the signup, login and session endpoints.
type AuthHandler struct {
	signup      SignupUseCase
	login       LoginUseCase
	sessions    *session.Store
	rememberTTL time.Duration
	logger      logging.Logger
}

func NewAuthHandler(su SignupUseCase, lu LoginUseCase, store *session.Store, rememberTTL time.Duration, l logging.Logger) *AuthHandler {
	return &AuthHandler{
		signup:      su,
		login:       lu,
		sessions:    store,
		rememberTTL: rememberTTL,
		logger:      l.With("module", "auth_handler"),
	}
}

// Signup handles the registration form.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		if err := h.signup.CheckConnection(c.UserContext()); err != nil {
			return h.fail(c, "signup", err)
		}
		return presenter.Fail(c, fiber.StatusMethodNotAllowed, presenter.MsgInvalidMethod)
	}

	req := services.SignupRequest{
		FullName:        formValue(c, "fullname", "fullName"),
		Email:           formValue(c, "email"),
		Phone:           formValue(c, "phone"),
		Password:        formValue(c, "password"),
		ConfirmPassword: formValue(c, "confirm_password", "confirmPassword"),
	}

	if err := h.signup.Signup(c.UserContext(), req); err != nil {
		return h.fail(c, "signup", err)
	}

	h.logger.Info(c.UserContext(), "account created", "request_id", requestID(c))
	return presenter.OK(c, fiber.StatusCreated, presenter.MsgAccountCreated, nil)
}

// Login verifies credentials, stores the session and optionally issues the
// remember_token cookie. No endpoint reads that cookie back yet.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		if err := h.login.CheckConnection(c.UserContext()); err != nil {
			return h.fail(c, "login", err)
		}
		return presenter.Fail(c, fiber.StatusMethodNotAllowed, presenter.MsgInvalidMethod)
	}

	req := services.LoginRequest{
		Email:      formValue(c, "email"),
		Password:   formValue(c, "password"),
		RememberMe: formFlag(c, "remember"),
	}

	res, err := h.login.Login(c.UserContext(), req)
	if err != nil {
		return h.fail(c, "login", err)
	}

	if err := h.saveSession(c, res.Session); err != nil {
		h.logger.Error(c.UserContext(), "session save failed", "error", err, "request_id", requestID(c))
		return presenter.Fail(c, fiber.StatusInternalServerError, presenter.MsgInternal)
	}

	if res.RememberToken != "" {
		c.Cookie(&fiber.Cookie{
			Name:     RememberCookie,
			Value:    res.RememberToken,
			Path:     "/",
			Expires:  time.Now().Add(h.rememberTTL),
			MaxAge:   int(h.rememberTTL.Seconds()),
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	h.logger.Info(c.UserContext(), "login succeeded", "user_id", res.Account.ID, "remember", req.RememberMe, "request_id", requestID(c))
	account := res.Account
	return presenter.OK(c, fiber.StatusOK, presenter.MsgLoginSuccessful, &account)
}

// Session reports the account held in the caller's server-side session.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		h.logger.Error(c.UserContext(), "session load failed", "error", err)
		return presenter.Fail(c, fiber.StatusInternalServerError, presenter.MsgInternal)
	}

	id, _ := sess.Get(sessionUserID).(string)
	if id == "" {
		return presenter.Fail(c, fiber.StatusUnauthorized, presenter.MsgNotLoggedIn)
	}
	name, _ := sess.Get(sessionUserName).(string)
	email, _ := sess.Get(sessionUserEmail).(string)

	return presenter.OK(c, fiber.StatusOK, presenter.MsgLoggedIn, &models.AccountSummary{ID: id, Name: name, Email: email})
}

// Logout drops the server-side session and the remember_token cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		h.logger.Error(c.UserContext(), "session load failed", "error", err)
		return presenter.Fail(c, fiber.StatusInternalServerError, presenter.MsgInternal)
	}
	if err := sess.Destroy(); err != nil {
		h.logger.Error(c.UserContext(), "session destroy failed", "error", err)
		return presenter.Fail(c, fiber.StatusInternalServerError, presenter.MsgInternal)
	}
	c.ClearCookie(RememberCookie)
	return presenter.OK(c, fiber.StatusOK, presenter.MsgLoggedOut, nil)
}

func (h *AuthHandler) saveSession(c *fiber.Ctx, s models.Session) error {
	sess, err := h.sessions.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionUserID, s.UserID)
	sess.Set(sessionUserName, s.UserFullName)
	sess.Set(sessionUserEmail, s.UserEmail)
	return sess.Save()
}

func (h *AuthHandler) fail(c *fiber.Ctx, op string, err error) error {
	status, msg := presenter.Classify(err)

	args := []any{"op", op, "status", status, "error", err, "request_id", requestID(c)}
	if status >= fiber.StatusInternalServerError {
		h.logger.Error(c.UserContext(), "request failed", args...)
	} else {
		h.logger.Info(c.UserContext(), "request rejected", args...)
	}

	return presenter.Fail(c, status, msg)
}

// formValue returns the first non-empty value among names. The string is
// copied so it outlives the request buffer.
func formValue(c *fiber.Ctx, names ...string) string {
	for _, n := range names {
		if v := c.FormValue(n); v != "" {
			return strings.Clone(v)
		}
	}
	return ""
}

// formFlag treats a checkbox as set when the field was posted at all,
// whatever its value.
func formFlag(c *fiber.Ctx, name string) bool {
	if c.Request().PostArgs().Has(name) {
		return true
	}
	form, err := c.MultipartForm()
	if err != nil {
		return false
	}
	_, ok := form.Value[name]
	return ok
}
