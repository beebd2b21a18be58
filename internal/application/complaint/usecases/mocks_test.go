package usecases

import (
	"context"
	"time"

	rewardsapp "civicpulse/internal/application/rewards"
	"civicpulse/internal/domain/complaint"
	vo "civicpulse/internal/domain/complaint/valueobjects"
)

type mockComplaintRepository struct {
	SaveFunc         func(ctx context.Context, c *complaint.Complaint) error
	ListFunc         func(ctx context.Context) ([]*complaint.Complaint, error)
	FindByIDFunc     func(ctx context.Context, id string) (*complaint.Complaint, error)
	UpdateStatusFunc func(ctx context.Context, id string, mutate func(*complaint.Complaint) error) (*complaint.Complaint, error)
}

func (m *mockComplaintRepository) Save(ctx context.Context, c *complaint.Complaint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockComplaintRepository) List(ctx context.Context) ([]*complaint.Complaint, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*complaint.Complaint{}, nil
}

func (m *mockComplaintRepository) FindByID(ctx context.Context, id string) (*complaint.Complaint, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockComplaintRepository) UpdateStatus(ctx context.Context, id string, mutate func(*complaint.Complaint) error) (*complaint.Complaint, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, mutate)
	}
	return nil, nil
}

type mockClassifier struct {
	ClassifyFunc func(description string) vo.Department
}

func (m *mockClassifier) Classify(description string) vo.Department {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(description)
	}
	return vo.DepartmentOthers
}

type mockCrediter struct {
	CreditSubmissionFunc func(ctx context.Context, n int) (*rewardsapp.CreditResult, error)
}

func (m *mockCrediter) CreditSubmission(ctx context.Context, n int) (*rewardsapp.CreditResult, error) {
	if m.CreditSubmissionFunc != nil {
		return m.CreditSubmissionFunc(ctx, n)
	}
	return &rewardsapp.CreditResult{PointsAwarded: n, TotalPoints: n, NewBadges: []string{}}, nil
}

// recordingPublisher forwards every event to a buffered channel.
type recordingPublisher struct {
	events chan complaint.Event
	err    error
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{events: make(chan complaint.Event, 64)}
}

func (p *recordingPublisher) Publish(_ context.Context, event complaint.Event) error {
	p.events <- event
	return p.err
}

func (p *recordingPublisher) next(timeout time.Duration) (complaint.Event, bool) {
	select {
	case e := <-p.events:
		return e, true
	case <-time.After(timeout):
		return complaint.Event{}, false
	}
}

type recordingNotifier struct {
	notified chan string
	err      error
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{notified: make(chan string, 64)}
}

func (n *recordingNotifier) NotifyResolved(_ context.Context, c *complaint.Complaint) error {
	n.notified <- c.ID()
	return n.err
}
