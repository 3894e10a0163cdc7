package reveal

// State is the reveal lifecycle position of the controller.
type State int

const (
	// StateMasked is the resting state: no PIN visible, no timers armed.
	StateMasked State = iota

	// StateAwaitingBiometric covers the identity prompt. The outcome
	// decides between StateRevealed and a return to StateMasked.
	StateAwaitingBiometric

	// StateRevealed shows exactly one PIN for a bounded window.
	StateRevealed
)

func (s State) String() string {
	switch s {
	case StateMasked:
		return "MASKED"
	case StateAwaitingBiometric:
		return "AWAITING_BIOMETRIC"
	case StateRevealed:
		return "REVEALED"
	default:
		return "UNKNOWN"
	}
}
