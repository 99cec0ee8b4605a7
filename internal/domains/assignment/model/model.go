package model

const (
	EntityName = "assignment"
)

// Mode tags the reconciler state. A reconciler starts in draft mode and
// becomes committed exactly once; there is no way back.
type Mode int

const (
	ModeDraft Mode = iota
	ModeCommitted
)

func (m Mode) String() string {
	switch m {
	case ModeDraft:
		return "draft"
	case ModeCommitted:
		return "committed"
	default:
		return "unknown"
	}
}

// Assignment is a staged crew assignment held in a draft session. It is
// never persisted; committing turns each item into a booking.
type Assignment struct {
	CrewID        string `json:"crew_id"`
	Salary        string `json:"salary"`
	PaymentStatus string `json:"payment_status"`
}

// CommitResult reports the outcome of committing one staged assignment.
// Results are collected in staging order, one per item, failures included.
type CommitResult struct {
	CrewID string `json:"crew_id"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}
