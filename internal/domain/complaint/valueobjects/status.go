package valueobjects

import "fmt"

type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "pending"
	StatusInProgress ComplaintStatus = "in-progress"
	StatusResolved   ComplaintStatus = "resolved"
)

// statusRank orders the lifecycle. A complaint never moves to a lower rank.
var statusRank = map[ComplaintStatus]int{
	StatusPending:    0,
	StatusInProgress: 1,
	StatusResolved:   2,
}

func (s ComplaintStatus) String() string {
	return string(s)
}

func (s ComplaintStatus) IsValid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether next is at or after s in the lifecycle.
// Same-status requests are allowed; the entity decides what they re-stamp.
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

func (s ComplaintStatus) IsPending() bool {
	return s == StatusPending
}

func (s ComplaintStatus) IsInProgress() bool {
	return s == StatusInProgress
}

func (s ComplaintStatus) IsResolved() bool {
	return s == StatusResolved
}

func NewComplaintStatus(s string) (ComplaintStatus, error) {
	cs := ComplaintStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid complaint status: %s", s)
	}
	return cs, nil
}
