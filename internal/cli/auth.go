package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dhairyaaprajapati/mindsync/internal/common"
)

// minPasswordLen matches the original signup form's minimum. Field-level
// validation lives here; the session service does not re-validate.
const minPasswordLen = 6

func (a *App) Register(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	if !strings.Contains(email, "@") {
		fmt.Fprintln(a.out, "Please enter a valid email address.")
		return
	}

	name, err := GetSimpleText(a.reader, "Enter your full name", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	if name == "" {
		fmt.Fprintln(a.out, "Please enter your name.")
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	defer common.WipeByteArray(password)

	if len(password) < minPasswordLen {
		fmt.Fprintf(a.out, "Password must be at least %d characters.\n", minPasswordLen)
		return
	}

	ok, err := a.sessions.Signup(ctx, email, string(password), name)
	if err != nil {
		a.log.Error(ctx, "signup failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong. Please try again.")
		return
	}
	if !ok {
		fmt.Fprintln(a.out, "Email already exists. Please use a different email.")
		return
	}

	fmt.Fprintln(a.out, "Account created successfully!")
}

func (a *App) Login(ctx context.Context) {

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return
	}
	defer common.WipeByteArray(password)

	ok, err := a.sessions.Login(ctx, email, string(password))
	if err != nil {
		a.log.Error(ctx, "login failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong. Please try again.")
		return
	}
	if !ok {
		// uniform message, no hint whether the email exists
		fmt.Fprintln(a.out, "Invalid email or password.")
		return
	}
}

func (a *App) Logout(ctx context.Context) {
	if err := a.sessions.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		fmt.Fprintln(a.out, "Something went wrong. Please try again.")
	}
}

func (a *App) WhoAmI(ctx context.Context) {
	u := a.sessions.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return
	}
	fmt.Fprintf(a.out, "%s <%s>, %d analyses recorded\n", u.Name, u.Email, len(u.Analyses))
}
