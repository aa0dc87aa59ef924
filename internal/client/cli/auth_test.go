package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/dmitrijs2005/pawsome/internal/client/client"
	"github.com/dmitrijs2005/pawsome/internal/client/forms"
	"github.com/dmitrijs2005/pawsome/internal/client/models"
	"github.com/dmitrijs2005/pawsome/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	signupForm forms.SignupForm
	loginForm  forms.LoginForm
	outcome    *forms.Outcome
	err        error
	logoutErr  error
	onLogin    func()
}

func (f *fakeController) Signup(_ context.Context, sf forms.SignupForm) (*forms.Outcome, error) {
	f.signupForm = sf
	return f.outcome, f.err
}

func (f *fakeController) Login(_ context.Context, lf forms.LoginForm) (*forms.Outcome, error) {
	f.loginForm = lf
	if f.err == nil && f.outcome.Success && f.onLogin != nil {
		f.onLogin()
	}
	return f.outcome, f.err
}

func (f *fakeController) Logout(context.Context) error { return f.logoutErr }

type fakeProfile struct {
	user *models.User
	err  error
}

func (f *fakeProfile) Save(_ context.Context, u *models.User) error { f.user = u; return nil }
func (f *fakeProfile) Load(context.Context) (*models.User, error)   { return f.user, f.err }
func (f *fakeProfile) Clear(context.Context) error                  { f.user = nil; return nil }

// stubInputs answers text prompts, password prompts and confirmations from
// the given queues, in order.
func stubInputs(t *testing.T, texts []string, passwords []string, confirms []bool) {
	t.Helper()
	origST, origGP, origGC := getSimpleText, getPassword, getConfirm
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ *bufio.Reader, _ string, _ io.Writer) ([]byte, error) {
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
	getConfirm = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		v := confirms[0]
		confirms = confirms[1:]
		return v, nil
	}
	t.Cleanup(func() {
		getSimpleText, getPassword, getConfirm = origST, origGP, origGC
	})
}

func newTestApp(c *fakeController, p *fakeProfile) *App {
	return &App{controller: c, profile: p, logger: logging.Nop{}, out: io.Discard}
}

func TestSignup_SubmitsCollectedForm(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"Ann Lee", "ann@example.com", "0612345678"}, []string{"Secret1234!", "Secret1234!"}, []bool{true})

	c := &fakeController{outcome: &forms.Outcome{Success: true, Message: "Account created successfully", Redirect: forms.RedirectLogin}}
	a := newTestApp(c, &fakeProfile{})

	require.NoError(t, a.Signup(context.Background()))
	assert.Equal(t, forms.SignupForm{
		FullName:        "Ann Lee",
		Email:           "ann@example.com",
		Phone:           "0612345678",
		Password:        "Secret1234!",
		ConfirmPassword: "Secret1234!",
		AcceptTerms:     true,
	}, c.signupForm)
	assert.Equal(t, []string{"Password strength: strong", "Account created successfully", "Type 'login' to sign in."}, *lines)
}

func TestSignup_PrintsEachValidationMessage(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"Al", "bad", "12"}, []string{"abc", "abd"}, []bool{false})

	verr := &forms.ValidationError{Fields: []forms.FieldError{
		{Field: forms.FieldFullName, Message: forms.MsgNameTooShort},
		{Field: forms.FieldTerms, Message: forms.MsgTermsRequired},
	}}
	a := newTestApp(&fakeController{err: verr}, &fakeProfile{})

	err := a.Signup(context.Background())
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"Password strength: weak", forms.MsgNameTooShort, forms.MsgTermsRequired}, *lines)
}

func TestLogin_SuccessAdoptsProfile(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"ann@example.com"}, []string{"secret1"}, []bool{true})

	p := &fakeProfile{}
	c := &fakeController{outcome: &forms.Outcome{Success: true, Message: "Login successful", Redirect: forms.RedirectCatalog}}
	c.onLogin = func() { p.user = &models.User{ID: "1", Name: "Ann", Email: "ann@example.com"} }
	a := newTestApp(c, p)

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, forms.LoginForm{Email: "ann@example.com", Password: "secret1", Remember: true}, c.loginForm)
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(Ann)", a.getStatus())
	assert.Equal(t, []string{"Login successful"}, *lines)
}

func TestLogin_RejectedStaysLoggedOut(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"ann@example.com"}, []string{"wrong12"}, []bool{false})

	a := newTestApp(&fakeController{outcome: &forms.Outcome{Message: "Incorrect password"}}, &fakeProfile{})

	require.NoError(t, a.Login(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.getStatus())
	assert.Equal(t, []string{"Incorrect password"}, *lines)
}

func TestLogin_ServerDown(t *testing.T) {
	lines := capturePrintln(t)
	stubInputs(t, []string{"ann@example.com"}, []string{"secret1"}, []bool{false})

	a := newTestApp(&fakeController{err: client.ErrUnavailable}, &fakeProfile{})

	require.ErrorIs(t, a.Login(context.Background()), client.ErrUnavailable)
	assert.Equal(t, []string{forms.MsgCannotConnect}, *lines)
}

func TestWhoAmIAndLogout(t *testing.T) {
	lines := capturePrintln(t)

	p := &fakeProfile{user: &models.User{ID: "1", Name: "Ann", Email: "ann@example.com"}}
	c := &fakeController{}
	a := newTestApp(c, p)
	ctx := context.Background()

	require.NoError(t, a.restore(ctx))
	require.NoError(t, a.WhoAmI(ctx))
	require.NoError(t, a.Logout(ctx))
	require.NoError(t, a.WhoAmI(ctx))

	assert.Equal(t, []string{"Ann <ann@example.com> (id 1)", "Logged out", "Not logged in"}, *lines)
}

func TestLogout_ErrorKeepsUser(t *testing.T) {
	capturePrintln(t)

	c := &fakeController{logoutErr: errors.New("disk full")}
	a := newTestApp(c, &fakeProfile{})
	a.user = &models.User{ID: "1"}

	require.Error(t, a.Logout(context.Background()))
	assert.True(t, a.isLoggedIn())
}

func TestRestore_Error(t *testing.T) {
	a := newTestApp(&fakeController{}, &fakeProfile{err: errors.New("corrupt")})
	require.Error(t, a.restore(context.Background()))
	assert.False(t, a.isLoggedIn())
}
