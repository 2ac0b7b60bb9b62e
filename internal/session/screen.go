package session

// Screen is a named UI mode.
type Screen string

const (
	ScreenWelcome    Screen = "welcome"
	ScreenAuth       Screen = "auth"
	ScreenOnboarding Screen = "onboarding"
	ScreenHome       Screen = "home"
)

// ScreenFor derives the screen from flags alone. It never returns
// ScreenAuth, which is reachable only through Controller.OpenAuth.
func ScreenFor(f Flags) Screen {
	switch {
	case !f.IsLoggedIn:
		return ScreenWelcome
	case !f.HasCompletedOnboarding:
		return ScreenOnboarding
	default:
		return ScreenHome
	}
}
