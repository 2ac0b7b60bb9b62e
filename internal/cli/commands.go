package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/perono/internal/common"
	"github.com/dmitrijs2005/perono/internal/session"
)

// getSimpleText and getPassword can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Start opens the auth screen from welcome.
func (a *App) Start(ctx context.Context) error {
	if !a.ctrl.OpenAuth(ctx) {
		return errNotOnWelcome
	}
	return nil
}

// Back returns from auth to welcome.
func (a *App) Back(ctx context.Context) error {
	if !a.ctrl.CloseAuth(ctx) {
		return errNotOnAuth
	}
	return nil
}

// Toggle switches the auth screen between sign in and sign up and clears
// the last error.
func (a *App) Toggle(context.Context) error {
	a.ui.signingUp = !a.ui.signingUp
	a.ui.errorMessage = ""
	a.renderAuth()
	return nil
}

func (a *App) SignIn(ctx context.Context) error {
	a.ui.signingUp = false
	return a.Submit(ctx)
}

func (a *App) SignUp(ctx context.Context) error {
	a.ui.signingUp = true
	return a.Submit(ctx)
}

// Submit asks for credentials and runs the attempt in the current mode.
// A provider rejection is kept as the screen's error message.
func (a *App) Submit(ctx context.Context) error {
	email, err := getSimpleText(a.in, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.in, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	cr := session.Credentials{Email: email, Password: string(password)}
	if a.ui.signingUp {
		err = a.ctrl.SignUp(ctx, cr)
	} else {
		err = a.ctrl.SignIn(ctx, cr)
	}

	var authErr *session.AuthError
	if errors.As(err, &authErr) {
		a.ui.errorMessage = authErr.Error()
	}
	return err
}

func (a *App) Next(context.Context) error {
	if a.ui.page >= len(onboardingPages)-1 {
		return errLastPage
	}
	a.ui.page++
	a.renderOnboarding()
	return nil
}

func (a *App) Prev(context.Context) error {
	if a.ui.page == 0 {
		return errFirstPage
	}
	a.ui.page--
	a.renderOnboarding()
	return nil
}

// Finish completes onboarding. It is only offered on the last page.
func (a *App) Finish(ctx context.Context) error {
	if a.ui.page != len(onboardingPages)-1 {
		return errNotLastPage
	}
	a.ctrl.CompleteOnboarding(ctx)
	return nil
}

// Tab selects a home tab by name.
func (a *App) Tab(_ context.Context, name string) error {
	for _, t := range tabs {
		if string(t) == name {
			a.ui.tab = t
			a.renderHome()
			return nil
		}
	}
	return errUnknownTab
}

// Logout ends the session. On home it is only available on the profile
// tab.
func (a *App) Logout(ctx context.Context) error {
	if a.ui.screen == session.ScreenHome && a.ui.tab != tabProfile {
		return errLogoutOnlyTab
	}
	a.ctrl.LogOut(ctx)
	return nil
}

// Status prints the session flags and where the gate is.
func (a *App) Status(context.Context) error {
	f := a.ctrl.Flags()
	fmt.Fprintf(a.out, "screen: %s\nstate: %s\nlogged in: %t\nonboarding completed: %t\n",
		a.screen(), a.ctrl.State(), f.IsLoggedIn, f.HasCompletedOnboarding)
	events := session.TransitionsFrom(a.ctrl.State())
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = string(e)
	}
	fmt.Fprintf(a.out, "accepts: %s\n", strings.Join(names, ", "))
	fmt.Fprintf(a.out, "identity: %s\nprofiles: %s\n", a.config.IdentityProvider, a.config.ProfileStore)
	return nil
}
