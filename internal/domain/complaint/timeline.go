package complaint

import "time"

type TimelineStage string

const (
	StageSubmitted  TimelineStage = "submitted"
	StageInProgress TimelineStage = "in-progress"
	StageResolved   TimelineStage = "resolved"
)

type TimelineEntry struct {
	Stage TimelineStage
	Label string
	At    time.Time
}

// Timeline lists the stages the complaint has reached, oldest first.
func (c *Complaint) Timeline() []TimelineEntry {
	entries := []TimelineEntry{
		{Stage: StageSubmitted, Label: "Complaint Submitted", At: c.createdAt},
	}
	if c.inProgressAt != nil {
		entries = append(entries, TimelineEntry{Stage: StageInProgress, Label: "Work In Progress", At: *c.inProgressAt})
	}
	if c.completedAt != nil {
		entries = append(entries, TimelineEntry{Stage: StageResolved, Label: "Issue Resolved", At: *c.completedAt})
	}
	return entries
}
