package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/perono/internal/config"
	"github.com/dmitrijs2005/perono/internal/logging"
	"github.com/dmitrijs2005/perono/internal/session"
)

type tab string

const (
	tabHome    tab = "home"
	tabLessons tab = "lessons"
	tabProfile tab = "profile"
)

var tabs = []tab{tabHome, tabLessons, tabProfile}

type onboardingPage struct {
	title       string
	description string
}

var onboardingPages = []onboardingPage{
	{title: "Welcome!", description: "Discover great features."},
	{title: "Personalize", description: "Customize your experience."},
	{title: "Get Started", description: "Enjoy using the app!"},
}

var (
	errNotOnWelcome  = errors.New("not on the welcome screen")
	errNotOnAuth     = errors.New("not on the auth screen")
	errFirstPage     = errors.New("already on the first page")
	errLastPage      = errors.New("already on the last page")
	errNotLastPage   = errors.New("finish is available on the last page")
	errLogoutOnlyTab = errors.New("log out from the profile tab")
	errUnknownTab    = errors.New("unknown tab, use home, lessons or profile")
)

// uiState is presentation state local to the current screen. It is reset
// each time the screen changes.
type uiState struct {
	screen       session.Screen
	signingUp    bool
	errorMessage string
	page         int
	tab          tab
}

type App struct {
	config *config.Config
	ctrl   *session.Controller
	logger logging.Logger
	in     *bufio.Scanner
	out    io.Writer
	ui     uiState

	closers []func(context.Context) error
}

// Run prints the banner and runs the REPL until exit or end of input.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "PeronoAI (type 'help' for commands)")
	runREPL(ctx, a, a.in)
}

// Close releases everything NewApp opened, most recent first.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) screen() session.Screen {
	return a.ctrl.CurrentScreen()
}

// refresh resets the screen-local state when the controller has moved to
// another screen and reports whether it did.
func (a *App) refresh() bool {
	s := a.screen()
	if s == a.ui.screen {
		return false
	}
	a.ui = uiState{screen: s, tab: tabHome}
	return true
}

func (a *App) prompt() string {
	if a.ui.screen == session.ScreenHome {
		return fmt.Sprintf("perono (%s/%s) > ", a.ui.screen, a.ui.tab)
	}
	return fmt.Sprintf("perono (%s) > ", a.ui.screen)
}
