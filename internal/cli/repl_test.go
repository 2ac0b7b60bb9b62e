package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/perono/internal/session"
	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	current  session.Screen
	rendered int
	calls    []string
	err      error
}

func (f *fakeExec) screen() session.Screen { return f.current }
func (f *fakeExec) refresh() bool          { return false }
func (f *fakeExec) render()                { f.rendered++ }
func (f *fakeExec) prompt() string         { return string(f.current) + " > " }

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) Start(context.Context) error {
	f.current = session.ScreenAuth
	return f.record("start")
}
func (f *fakeExec) Back(context.Context) error   { return f.record("back") }
func (f *fakeExec) Toggle(context.Context) error { return f.record("toggle") }
func (f *fakeExec) SignIn(context.Context) error { return f.record("signin") }
func (f *fakeExec) SignUp(context.Context) error {
	f.current = session.ScreenOnboarding
	return f.record("signup")
}
func (f *fakeExec) Submit(context.Context) error { return f.record("submit") }
func (f *fakeExec) Next(context.Context) error   { return f.record("next") }
func (f *fakeExec) Prev(context.Context) error   { return f.record("prev") }
func (f *fakeExec) Finish(context.Context) error {
	f.current = session.ScreenHome
	return f.record("finish")
}
func (f *fakeExec) Tab(_ context.Context, name string) error { return f.record("tab " + name) }
func (f *fakeExec) Logout(context.Context) error {
	f.current = session.ScreenWelcome
	return f.record("logout")
}
func (f *fakeExec) Status(context.Context) error { return f.record("status") }

func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func run(f *fakeExec, input ...string) {
	runREPL(context.Background(), f, bufio.NewScanner(strings.NewReader(strings.Join(input, "\n"))))
}

func TestRunREPL_CommandsFollowScreens(t *testing.T) {
	capturePrints(t)
	f := &fakeExec{current: session.ScreenWelcome}

	run(f,
		"start",
		"toggle",
		"signup",
		"next",
		"prev",
		"finish",
		"tab lessons",
		"logout",
		"exit",
	)

	assert.Equal(t, []string{"start", "toggle", "signup", "next", "prev", "finish", "tab lessons", "logout"}, f.calls)
	assert.Equal(t, session.ScreenWelcome, f.current)
}

func TestRunREPL_CommandsOutsideTheirScreenAreUnknown(t *testing.T) {
	tests := []struct {
		screen session.Screen
		cmd    string
	}{
		{session.ScreenWelcome, "signin"},
		{session.ScreenWelcome, "logout"},
		{session.ScreenAuth, "start"},
		{session.ScreenAuth, "finish"},
		{session.ScreenOnboarding, "tab"},
		{session.ScreenOnboarding, "submit"},
		{session.ScreenHome, "next"},
		{session.ScreenHome, "back"},
	}

	for _, tt := range tests {
		t.Run(string(tt.screen)+"/"+tt.cmd, func(t *testing.T) {
			lines := capturePrints(t)
			f := &fakeExec{current: tt.screen}

			run(f, tt.cmd, "exit")

			assert.Empty(t, f.calls)
			assert.Contains(t, *lines, "Unknown command: "+tt.cmd)
		})
	}
}

func TestRunREPL_GlobalCommands(t *testing.T) {
	lines := capturePrints(t)
	f := &fakeExec{current: session.ScreenOnboarding}

	run(f, "", "help", "status", "quit", "next")

	assert.Equal(t, []string{"status"}, f.calls)
	assert.Contains(t, *lines, helpText[session.ScreenOnboarding])
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_TabUsageAndErrors(t *testing.T) {
	lines := capturePrints(t)
	f := &fakeExec{current: session.ScreenHome, err: errLogoutOnlyTab}

	run(f, "tab", "logout")

	assert.Contains(t, *lines, "Usage: tab <home|lessons|profile>")
	assert.Contains(t, *lines, "Error: "+errLogoutOnlyTab.Error())
	assert.Equal(t, []string{"logout"}, f.calls)
}

func TestRunREPL_EOFStops(t *testing.T) {
	capturePrints(t)
	f := &fakeExec{current: session.ScreenWelcome}

	run(f)

	assert.Empty(t, f.calls)
}

func TestHelpText_CoversEveryScreen(t *testing.T) {
	for _, s := range []session.Screen{session.ScreenWelcome, session.ScreenAuth, session.ScreenOnboarding, session.ScreenHome} {
		assert.NotEmpty(t, helpText[s], s)
	}
}
