package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/perono/internal/session"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface runREPL drives. *App implements it.
type execIface interface {
	screen() session.Screen
	refresh() bool
	render()
	prompt() string

	Start(ctx context.Context) error
	Back(ctx context.Context) error
	Toggle(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignUp(ctx context.Context) error
	Submit(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Finish(ctx context.Context) error
	Tab(ctx context.Context, name string) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
}

var helpText = map[session.Screen]string{
	session.ScreenWelcome:    "Available commands: start, status, help, exit",
	session.ScreenAuth:       "Available commands: signin, signup, toggle, submit, back, status, help, exit",
	session.ScreenOnboarding: "Available commands: next, prev, finish, logout, status, help, exit",
	session.ScreenHome:       "Available commands: tab <home|lessons|profile>, logout, status, help, exit",
}

// runREPL reads commands from scanner until "exit"/"quit" or end of input.
//
// Before each prompt the current screen is redrawn if the controller has
// moved since the last command. Commands that do not belong to the current
// screen are reported as unknown. Handler errors are printed and the loop
// goes on.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		if a.refresh() {
			a.render()
		}
		printlnFn(a.prompt())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText[a.screen()])
			continue
		case "status":
			_ = a.Status(ctx)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		handled, err := dispatch(ctx, a, cmd, args)
		if !handled {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string) (bool, error) {
	switch a.screen() {
	case session.ScreenWelcome:
		if cmd == "start" {
			return true, a.Start(ctx)
		}

	case session.ScreenAuth:
		switch cmd {
		case "signin":
			return true, a.SignIn(ctx)
		case "signup":
			return true, a.SignUp(ctx)
		case "submit":
			return true, a.Submit(ctx)
		case "toggle":
			return true, a.Toggle(ctx)
		case "back":
			return true, a.Back(ctx)
		}

	case session.ScreenOnboarding:
		switch cmd {
		case "next":
			return true, a.Next(ctx)
		case "prev":
			return true, a.Prev(ctx)
		case "finish":
			return true, a.Finish(ctx)
		case "logout":
			return true, a.Logout(ctx)
		}

	case session.ScreenHome:
		switch cmd {
		case "tab":
			if len(args) == 0 {
				printlnFn("Usage: tab <home|lessons|profile>")
				return true, nil
			}
			return true, a.Tab(ctx, args[0])
		case "logout":
			return true, a.Logout(ctx)
		}
	}
	return false, nil
}
