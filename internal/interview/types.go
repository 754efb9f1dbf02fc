package interview

// TurnRole identifies who produced a transcript turn.
type TurnRole string

const (
	RoleModel TurnRole = "model"
	RoleUser  TurnRole = "user"
)

// Turn is one entry in the interview transcript. Turns are ordered and
// append-only; the transcript is scoped to a single session and
// discarded when the session closes.
type Turn struct {
	Role TurnRole
	Text string
}

// Conclusion is the terminal structured payload of an interview run.
// It is produced once per completed interview and consumed exactly once
// by user confirmation. Display text is rendered FROM this value; the
// score is never re-parsed out of rendered text.
type Conclusion struct {
	Score     int
	Reasoning string
}

// State is the interview session state.
type State int

const (
	// StateGreeting is the initial state: one synthetic model greeting
	// has been seeded, no external call made yet.
	StateGreeting State = iota

	// StateAwaitingUser means the model has spoken and the session is
	// waiting for the user's next message.
	StateAwaitingUser

	// StateAwaitingModel means a user message was sent to the reasoning
	// service and the session is waiting for its reply.
	StateAwaitingModel

	// StateConcluded means the service produced a conclusion. The only
	// valid transitions are Confirm or Cancel, both leading to Closed.
	StateConcluded

	// StateClosed is terminal. The transcript is discarded.
	StateClosed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateGreeting:
		return "greeting"
	case StateAwaitingUser:
		return "awaiting-user"
	case StateAwaitingModel:
		return "awaiting-model"
	case StateConcluded:
		return "concluded"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
