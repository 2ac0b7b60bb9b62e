package session

import "context"

// Persistence keys of the two flags.
const (
	KeyIsLoggedIn             = "isLoggedIn"
	KeyHasCompletedOnboarding = "hasCompletedOnboarding"
)

// Flags is the whole persisted session state. The zero value is the
// first-launch state.
//
// HasCompletedOnboarding is device scoped: it survives LogOut, so any
// account signing in afterwards on the same installation inherits it.
type Flags struct {
	IsLoggedIn             bool
	HasCompletedOnboarding bool
}

// FlagStore persists Flags between runs.
//
// Load must return the zero Flags (and no error) when nothing was saved yet.
type FlagStore interface {
	Load(ctx context.Context) (Flags, error)
	Save(ctx context.Context, f Flags) error
}

// Apply returns the flags that result from event e.
func (f Flags) Apply(e Event) Flags {
	switch e {
	case EventSignedIn:
		// existing users always skip onboarding
		f.IsLoggedIn = true
		f.HasCompletedOnboarding = true
	case EventSignedUp:
		f.IsLoggedIn = true
		f.HasCompletedOnboarding = false
	case EventOnboardingCompleted:
		f.HasCompletedOnboarding = true
	case EventLoggedOut:
		f.IsLoggedIn = false
	}
	return f
}

// MemoryFlagStore keeps flags in memory only, so they are lost when the
// process exits. Save counts the writes it receives.
type MemoryFlagStore struct {
	Flags Flags
	Saves int
}

func (m *MemoryFlagStore) Load(context.Context) (Flags, error) {
	return m.Flags, nil
}

func (m *MemoryFlagStore) Save(_ context.Context, f Flags) error {
	m.Flags = f
	m.Saves++
	return nil
}
