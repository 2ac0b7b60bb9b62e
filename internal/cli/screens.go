package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/perono/internal/session"
)

// render draws the current screen.
func (a *App) render() {
	switch a.ui.screen {
	case session.ScreenWelcome:
		a.renderWelcome()
	case session.ScreenAuth:
		a.renderAuth()
	case session.ScreenOnboarding:
		a.renderOnboarding()
	case session.ScreenHome:
		a.renderHome()
	}
}

func (a *App) renderWelcome() {
	fmt.Fprintln(a.out, "")
	fmt.Fprintln(a.out, "Welcome to PeronoAI!")
	fmt.Fprintln(a.out, "[start] Get Started")
}

func (a *App) renderAuth() {
	fmt.Fprintln(a.out, "")
	fmt.Fprintln(a.out, a.authTitle())
	if a.ui.errorMessage != "" {
		fmt.Fprintln(a.out, "! "+a.ui.errorMessage)
	}
	fmt.Fprintf(a.out, "[submit] %s\n", a.authTitle())
	if a.ui.signingUp {
		fmt.Fprintln(a.out, "[toggle] Already have an account? Sign In")
	} else {
		fmt.Fprintln(a.out, "[toggle] Don't have an account? Sign Up")
	}
	fmt.Fprintln(a.out, "[back] Back")
}

func (a *App) authTitle() string {
	if a.ui.signingUp {
		return "Sign Up"
	}
	return "Sign In"
}

func (a *App) renderOnboarding() {
	p := onboardingPages[a.ui.page]
	fmt.Fprintln(a.out, "")
	fmt.Fprintln(a.out, p.title)
	fmt.Fprintln(a.out, p.description)
	fmt.Fprintln(a.out, pageDots(a.ui.page, len(onboardingPages)))
	if a.ui.page == len(onboardingPages)-1 {
		fmt.Fprintln(a.out, "[finish] Finish")
	}
}

func pageDots(current, total int) string {
	dots := make([]string, total)
	for i := range dots {
		dots[i] = "o"
		if i == current {
			dots[i] = "*"
		}
	}
	return strings.Join(dots, " ")
}

func (a *App) renderHome() {
	fmt.Fprintln(a.out, "")
	switch a.ui.tab {
	case tabHome:
		fmt.Fprintln(a.out, "Welcome to PeronoAI")
		fmt.Fprintln(a.out, "Your personalized dashboard shows your progress and recommendations.")
	case tabLessons:
		fmt.Fprintln(a.out, "Lessons")
		fmt.Fprintln(a.out, "Access your structured lessons and track your learning progress.")
	case tabProfile:
		fmt.Fprintln(a.out, "Profile")
		fmt.Fprintln(a.out, "Manage your account and update your preferences.")
		fmt.Fprintln(a.out, "[logout] Log Out")
	}
	fmt.Fprintln(a.out, tabBar(a.ui.tab))
}

func tabBar(selected tab) string {
	items := make([]string, len(tabs))
	for i, t := range tabs {
		title := strings.ToUpper(string(t[:1])) + string(t[1:])
		if t == selected {
			title = "[" + title + "]"
		}
		items[i] = title
	}
	return strings.Join(items, " | ")
}
