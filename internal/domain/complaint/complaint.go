package complaint

import (
	"fmt"
	"strings"
	"time"

	vo "civicpulse/internal/domain/complaint/valueobjects"
)

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
)

type Complaint struct {
	id              string
	title           string
	description     string
	location        string
	gpsLocation     *vo.GeoPoint
	name            string
	email           string
	department      vo.Department
	status          vo.ComplaintStatus
	createdAt       time.Time
	updatedAt       time.Time
	inProgressAt    *time.Time
	completedAt     *time.Time
	completionPhoto *string
	attachments     []string
	points          int
}

// Submission carries the citizen-supplied fields of a new complaint.
type Submission struct {
	Title       string
	Description string
	Location    string
	GPSLocation *vo.GeoPoint
	Name        string
	Email       string
	Attachments []string
}

// NewComplaint creates a pending complaint routed to department.
func NewComplaint(id string, s Submission, department vo.Department, points int, now time.Time) (*Complaint, error) {
	if id == "" {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if strings.TrimSpace(s.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len([]rune(s.Title)) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if strings.TrimSpace(s.Description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if len([]rune(s.Description)) > MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if strings.TrimSpace(s.Location) == "" {
		return nil, fmt.Errorf("location is required")
	}
	if department.IsEmpty() {
		return nil, fmt.Errorf("department is required")
	}

	return &Complaint{
		id:          id,
		title:       s.Title,
		description: s.Description,
		location:    s.Location,
		gpsLocation: s.GPSLocation,
		name:        s.Name,
		email:       s.Email,
		department:  department,
		status:      vo.StatusPending,
		createdAt:   now,
		updatedAt:   now,
		attachments: copyStrings(s.Attachments),
		points:      points,
	}, nil
}

// State is the full persisted shape of a complaint, used to rebuild it from
// storage.
type State struct {
	ID              string
	Title           string
	Description     string
	Location        string
	GPSLocation     *vo.GeoPoint
	Name            string
	Email           string
	Department      vo.Department
	Status          vo.ComplaintStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
	InProgressAt    *time.Time
	CompletedAt     *time.Time
	CompletionPhoto *string
	Attachments     []string
	Points          int
}

// ReconstructComplaint rebuilds a complaint from persisted state. It checks
// only what is needed to keep the entity usable; stored records are trusted.
func ReconstructComplaint(st State) (*Complaint, error) {
	if st.ID == "" {
		return nil, fmt.Errorf("complaint ID is required")
	}
	if !st.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, st.Status)
	}

	return &Complaint{
		id:              st.ID,
		title:           st.Title,
		description:     st.Description,
		location:        st.Location,
		gpsLocation:     st.GPSLocation,
		name:            st.Name,
		email:           st.Email,
		department:      st.Department,
		status:          st.Status,
		createdAt:       st.CreatedAt,
		updatedAt:       st.UpdatedAt,
		inProgressAt:    st.InProgressAt,
		completedAt:     st.CompletedAt,
		completionPhoto: st.CompletionPhoto,
		attachments:     copyStrings(st.Attachments),
		points:          st.Points,
	}, nil
}

// Snapshot returns the complaint's current state.
func (c *Complaint) Snapshot() State {
	return State{
		ID:              c.id,
		Title:           c.title,
		Description:     c.description,
		Location:        c.location,
		GPSLocation:     c.gpsLocation,
		Name:            c.name,
		Email:           c.email,
		Department:      c.department,
		Status:          c.status,
		CreatedAt:       c.createdAt,
		UpdatedAt:       c.updatedAt,
		InProgressAt:    c.inProgressAt,
		CompletedAt:     c.completedAt,
		CompletionPhoto: c.completionPhoto,
		Attachments:     copyStrings(c.attachments),
		Points:          c.points,
	}
}

func (c *Complaint) ID() string {
	return c.id
}

func (c *Complaint) Title() string {
	return c.title
}

func (c *Complaint) Description() string {
	return c.description
}

func (c *Complaint) Location() string {
	return c.location
}

func (c *Complaint) GPSLocation() *vo.GeoPoint {
	return c.gpsLocation
}

func (c *Complaint) Name() string {
	return c.name
}

func (c *Complaint) Email() string {
	return c.email
}

func (c *Complaint) Department() vo.Department {
	return c.department
}

func (c *Complaint) Status() vo.ComplaintStatus {
	return c.status
}

func (c *Complaint) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Complaint) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Complaint) InProgressAt() *time.Time {
	return c.inProgressAt
}

func (c *Complaint) CompletedAt() *time.Time {
	return c.completedAt
}

func (c *Complaint) CompletionPhoto() *string {
	return c.completionPhoto
}

func (c *Complaint) Attachments() []string {
	return copyStrings(c.attachments)
}

func (c *Complaint) Points() int {
	return c.points
}

// ChangeStatus moves the complaint along pending -> in-progress -> resolved.
//
// Entering in-progress stamps inProgressAt only the first time. Entering
// resolved always stamps completedAt and attaches completionPhoto when it is
// non-empty. Requests that would move backwards fail with
// ErrInvalidTransition and leave the complaint untouched.
func (c *Complaint) ChangeStatus(newStatus vo.ComplaintStatus, completionPhoto *string, now time.Time) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, newStatus)
	}
	if !c.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.status, newStatus)
	}

	switch newStatus {
	case vo.StatusInProgress:
		if c.inProgressAt == nil {
			t := now
			c.inProgressAt = &t
		}
	case vo.StatusResolved:
		t := now
		c.completedAt = &t
		if completionPhoto != nil && *completionPhoto != "" {
			p := *completionPhoto
			c.completionPhoto = &p
		}
	}

	c.status = newStatus
	c.updatedAt = now
	return nil
}

// ResolutionTime is the time from filing to resolution, false if unresolved.
func (c *Complaint) ResolutionTime() (time.Duration, bool) {
	if c.completedAt == nil {
		return 0, false
	}
	return c.completedAt.Sub(c.createdAt), true
}

// Matches reports whether q occurs, ignoring case, in the title,
// description, location or id.
func (c *Complaint) Matches(q string) bool {
	q = normalize(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	for _, field := range []string{c.title, c.description, c.location, c.id} {
		if strings.Contains(normalize(field), q) {
			return true
		}
	}
	return false
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
