package complaint

import "context"

// Repository persists complaints as one ordered collection.
type Repository interface {
	// Save appends c to the collection. It does not check for duplicate ids.
	Save(ctx context.Context, c *Complaint) error
	// List returns every complaint in insertion order. Unreadable stored data
	// yields an empty list rather than an error.
	List(ctx context.Context) ([]*Complaint, error)
	// FindByID returns nil, nil when no complaint has id.
	FindByID(ctx context.Context, id string) (*Complaint, error)
	// UpdateStatus applies mutate to the complaint with id and writes the
	// collection back. An unknown id is a no-op returning nil, nil.
	UpdateStatus(ctx context.Context, id string, mutate func(*Complaint) error) (*Complaint, error)
}

// Filter narrows a complaint listing. Zero values match everything.
type Filter struct {
	Status     string
	Department string
	Query      string
}

// Apply returns the complaints matching f, preserving order.
func (f Filter) Apply(in []*Complaint) []*Complaint {
	out := make([]*Complaint, 0, len(in))
	for _, c := range in {
		if f.Status != "" && c.Status().String() != f.Status {
			continue
		}
		if f.Department != "" && c.Department().String() != f.Department {
			continue
		}
		if !c.Matches(f.Query) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Notifier tells the reporter their complaint was resolved.
type Notifier interface {
	NotifyResolved(ctx context.Context, c *Complaint) error
}

// EventPublisher broadcasts lifecycle events to other processes.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
