package bookings

type Status string

const (
	StatusHeld      Status = "HELD"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
	StatusRejected  Status = "REJECTED"
	StatusRefunded  Status = "REFUNDED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusHeld, StatusConfirmed, StatusCancelled, StatusExpired, StatusRejected, StatusRefunded:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the booking can never change state again.
// Every state except HELD and CONFIRMED is terminal; CONFIRMED can still
// move to CANCELLED or REFUNDED.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusExpired, StatusRejected, StatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo encodes the lifecycle: held bookings leave the held
// state only via confirmation, explicit cancel/reject, or expiry; a
// confirmed booking can be cancelled or refunded.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusHeld:
		switch next {
		case StatusConfirmed, StatusCancelled, StatusRejected, StatusExpired:
			return true
		}
	case StatusConfirmed:
		switch next {
		case StatusCancelled, StatusRefunded:
			return true
		}
	case StatusCancelled:
		return next == StatusRefunded
	}
	return false
}

func (s Status) CanBeCancelled() bool {
	return s == StatusHeld || s == StatusConfirmed
}

var allStatuses = []Status{
	StatusHeld, StatusConfirmed, StatusCancelled,
	StatusExpired, StatusRejected, StatusRefunded,
}

// TransitionSources returns every status allowed to move to the target,
// derived from CanTransitionTo so the repository guard and the lifecycle
// definition cannot drift apart.
func TransitionSources(to Status) []Status {
	var sources []Status
	for _, s := range allStatuses {
		if s.CanTransitionTo(to) {
			sources = append(sources, s)
		}
	}
	return sources
}
