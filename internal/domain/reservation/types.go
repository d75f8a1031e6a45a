package reservation

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	default:
		return false
	}
}

// Blocks reports whether a reservation in this status keeps other players
// from booking the same interval. Cancelled rows stay in the table for
// history but never block.
func (s Status) Blocks() bool {
	return s == StatusConfirmed || s == StatusPending
}
