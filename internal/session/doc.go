// Package session implements the session and onboarding gate of the Perono
// client.
//
// The gate decides which screen is active (Welcome, Auth, Onboarding, Home)
// from two persisted flags, and how sign-in, sign-up, onboarding completion
// and log out mutate those flags.
//
// # Collaborators
//
// The package owns no I/O. It talks to three narrow interfaces:
//
//   - IdentityGateway: verifies credentials and creates accounts.
//   - ProfileStore:    persists the user profile written at sign-up.
//   - FlagStore:       loads and saves Flags across process restarts.
//
// # State machine
//
// Flags map onto three states:
//
//	LoggedOut          (IsLoggedIn=false)                              -> Welcome / Auth
//	OnboardingPending  (IsLoggedIn=true, HasCompletedOnboarding=false) -> Onboarding
//	Active             (IsLoggedIn=true, HasCompletedOnboarding=true)  -> Home
//
// Allowed transitions are listed in Next. Auth is a navigation overlay on
// top of LoggedOut and is never derived from flags.
//
// # Concurrency
//
// Controller is safe for concurrent use. Flag mutations are applied under a
// single mutex after the collaborator result has arrived, and at most one
// sign-in or sign-up attempt may be in flight at a time.
package session
