package session

// State is the gate state derived from Flags.
type State string

const (
	StateLoggedOut         State = "logged_out"
	StateOnboardingPending State = "onboarding_pending"
	StateActive            State = "active"
)

// Event is a successful user action or provider outcome.
type Event string

const (
	EventSignedIn            Event = "signed_in"
	EventSignedUp            Event = "signed_up"
	EventOnboardingCompleted Event = "onboarding_completed"
	EventLoggedOut           Event = "logged_out"
)

type edge struct {
	from  State
	event Event
}

var transitions = map[edge]State{
	{StateLoggedOut, EventSignedIn}:                    StateActive,
	{StateLoggedOut, EventSignedUp}:                    StateOnboardingPending,
	{StateOnboardingPending, EventOnboardingCompleted}: StateActive,
	{StateOnboardingPending, EventLoggedOut}:           StateLoggedOut,
	{StateActive, EventLoggedOut}:                      StateLoggedOut,
}

// StateOf maps flags onto the gate state.
func StateOf(f Flags) State {
	switch ScreenFor(f) {
	case ScreenOnboarding:
		return StateOnboardingPending
	case ScreenHome:
		return StateActive
	default:
		return StateLoggedOut
	}
}

// Next returns the state reached from s on event e, and false when the
// machine has no such transition.
func Next(s State, e Event) (State, bool) {
	to, ok := transitions[edge{s, e}]
	return to, ok
}

// TransitionsFrom lists the events accepted in state s.
func TransitionsFrom(s State) []Event {
	var out []Event
	for _, e := range []Event{EventSignedIn, EventSignedUp, EventOnboardingCompleted, EventLoggedOut} {
		if _, ok := transitions[edge{s, e}]; ok {
			out = append(out, e)
		}
	}
	return out
}
