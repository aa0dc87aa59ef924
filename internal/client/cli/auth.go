package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pawsome/internal/client/forms"
	"github.com/dmitrijs2005/pawsome/internal/common"
	"github.com/dmitrijs2005/pawsome/internal/validate"
)

// getSimpleText, getPassword and getConfirm are indirections used to
// facilitate testing. They point to interactive input helpers.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getConfirm    = GetConfirm
)

// Signup collects the registration form and submits it. Local validation
// failures are printed one per line and nothing is sent.
func (a *App) Signup(ctx context.Context) error {
	var f forms.SignupForm
	var err error

	if f.FullName, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if f.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if f.Phone, err = getSimpleText(a.reader, "Phone", a.out); err != nil {
		return err
	}

	pw, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	printlnFn("Password strength:", validate.PasswordStrength(string(pw)))

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if f.AcceptTerms, err = getConfirm(a.reader, "Accept the terms and conditions?", a.out); err != nil {
		return err
	}

	f.Password, f.ConfirmPassword = string(pw), string(confirm)

	out, err := a.controller.Signup(ctx, f)
	if err != nil {
		return a.report(ctx, "signup", err)
	}
	printlnFn(out.Message)
	if out.Redirect == forms.RedirectLogin {
		printlnFn("Type 'login' to sign in.")
	}
	return nil
}

// Login prompts for credentials, submits them and on success adopts the
// account the controller stored in the local profile.
func (a *App) Login(ctx context.Context) error {
	var f forms.LoginForm
	var err error

	if f.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	pw, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	if f.Remember, err = getConfirm(a.reader, "Remember me?", a.out); err != nil {
		return err
	}
	f.Password = string(pw)

	out, err := a.controller.Login(ctx, f)
	if err != nil {
		return a.report(ctx, "login", err)
	}
	printlnFn(out.Message)
	if !out.Success {
		return nil
	}
	return a.restore(ctx)
}

func (a *App) WhoAmI(ctx context.Context) error {
	if a.user == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s> (id %s)", a.user.Name, a.user.Email, a.user.ID))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.controller.Logout(ctx); err != nil {
		return a.report(ctx, "logout", err)
	}
	a.user = nil
	printlnFn("Logged out")
	return nil
}

// report prints err the way the user should see it and logs the ones that
// are not plain validation failures.
func (a *App) report(ctx context.Context, op string, err error) error {
	var ve *forms.ValidationError
	if errors.As(err, &ve) {
		for _, f := range ve.Fields {
			printlnFn(f.Message)
		}
		return err
	}
	a.logger.Error(ctx, "command failed", "op", op, "error", err)
	printlnFn(forms.ErrorMessage(err))
	return err
}
