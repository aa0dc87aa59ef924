package forms

import (
	"context"
	"errors"
	"net/url"

	"github.com/dmitrijs2005/pawsome/internal/client/client"
	"github.com/dmitrijs2005/pawsome/internal/client/services"
)

// Redirect targets after a successful submission.
const (
	RedirectLogin   = "login"
	RedirectCatalog = "catalog"
)

const (
	MsgSignupFallback = "An error occurred. Please try again."
	MsgLoginFallback  = "Invalid email or password"
	MsgServerError    = "Server error. Please try again."
	MsgCannotConnect  = "Cannot connect to server. Make sure it is running."
)

// Outcome is what the user is shown after a submission.
type Outcome struct {
	Success  bool
	Message  string
	Redirect string
}

type Controller struct {
	api     client.Client
	profile services.ProfileService
}

func NewController(api client.Client, profile services.ProfileService) *Controller {
	return &Controller{api: api, profile: profile}
}

// Signup validates f locally and, when it passes, submits it. A rejected
// submission is an Outcome with Success false, not an error.
func (c *Controller) Signup(ctx context.Context, f SignupForm) (*Outcome, error) {
	if errs := f.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	form := url.Values{
		FieldFullName:        {f.FullName},
		FieldEmail:           {f.Email},
		FieldPhone:           {f.Phone},
		FieldPassword:        {f.Password},
		FieldConfirmPassword: {f.ConfirmPassword},
	}
	if f.AcceptTerms {
		form.Set(FieldTerms, "on")
	}

	reply, err := c.api.Signup(ctx, form)
	if err != nil {
		return nil, err
	}
	if !reply.Success {
		return &Outcome{Message: orDefault(reply.Message, MsgSignupFallback)}, nil
	}
	return &Outcome{Success: true, Message: reply.Message, Redirect: RedirectLogin}, nil
}

// Login validates f locally, submits it and on success remembers the
// returned account in the local profile.
func (c *Controller) Login(ctx context.Context, f LoginForm) (*Outcome, error) {
	if errs := f.Validate(); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	form := url.Values{
		FieldEmail:    {f.Email},
		FieldPassword: {f.Password},
	}
	if f.Remember {
		form.Set(FieldRemember, "1")
	}

	reply, err := c.api.Login(ctx, form)
	if err != nil {
		return nil, err
	}
	if !reply.Success {
		return &Outcome{Message: orDefault(reply.Message, MsgLoginFallback)}, nil
	}
	if reply.User == nil {
		return nil, client.ErrServerResponse
	}
	if err := c.profile.Save(ctx, reply.User); err != nil {
		return nil, err
	}
	return &Outcome{Success: true, Message: reply.Message, Redirect: RedirectCatalog}, nil
}

// Logout tells the server to drop the session and forgets the local
// profile. The local profile is cleared even when the server is unreachable.
func (c *Controller) Logout(ctx context.Context) error {
	_, apiErr := c.api.Logout(ctx)
	if err := c.profile.Clear(ctx); err != nil {
		return err
	}
	if apiErr != nil && !errors.Is(apiErr, client.ErrUnavailable) {
		return apiErr
	}
	return nil
}

// ErrorMessage turns a controller error into the line shown to the user.
func ErrorMessage(err error) string {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.Is(err, client.ErrUnavailable):
		return MsgCannotConnect
	default:
		return MsgServerError
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
