package complaint

import "time"

type EventType string

const (
	EventFiled         EventType = "complaint.filed"
	EventStatusChanged EventType = "complaint.status_changed"
)

type Event struct {
	Type        EventType `json:"type"`
	ComplaintID string    `json:"complaint_id"`
	Department  string    `json:"department"`
	OldStatus   string    `json:"old_status,omitempty"`
	NewStatus   string    `json:"new_status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewFiledEvent(c *Complaint, at time.Time) Event {
	return Event{
		Type:        EventFiled,
		ComplaintID: c.ID(),
		Department:  c.Department().String(),
		NewStatus:   c.Status().String(),
		OccurredAt:  at,
	}
}

func NewStatusChangedEvent(c *Complaint, oldStatus string, at time.Time) Event {
	return Event{
		Type:        EventStatusChanged,
		ComplaintID: c.ID(),
		Department:  c.Department().String(),
		OldStatus:   oldStatus,
		NewStatus:   c.Status().String(),
		OccurredAt:  at,
	}
}
