package mappers

import (
	"fmt"

	"civicpulse/internal/domain/complaint"
	vo "civicpulse/internal/domain/complaint/valueobjects"
	"civicpulse/internal/infrastructure/persistence/models"
)

// ComplaintMapper converts between complaint entities and stored records.
type ComplaintMapper interface {
	ToRecord(c *complaint.Complaint) models.ComplaintRecord
	ToDomain(r models.ComplaintRecord) (*complaint.Complaint, error)
}

type ComplaintMapperImpl struct{}

func NewComplaintMapper() ComplaintMapper {
	return &ComplaintMapperImpl{}
}

func (m *ComplaintMapperImpl) ToRecord(c *complaint.Complaint) models.ComplaintRecord {
	st := c.Snapshot()
	r := models.ComplaintRecord{
		ID:              st.ID,
		Title:           st.Title,
		Description:     st.Description,
		Location:        st.Location,
		Name:            st.Name,
		Email:           st.Email,
		Department:      st.Department.String(),
		Status:          st.Status.String(),
		CreatedAt:       st.CreatedAt,
		UpdatedAt:       st.UpdatedAt,
		InProgressAt:    st.InProgressAt,
		CompletionPhoto: st.CompletionPhoto,
		CompletedAt:     st.CompletedAt,
		Attachments:     st.Attachments,
		Points:          st.Points,
	}
	if st.GPSLocation != nil {
		r.GPSLocation = &models.GPSRecord{Lat: st.GPSLocation.Lat(), Lng: st.GPSLocation.Lng()}
	}
	return r
}

func (m *ComplaintMapperImpl) ToDomain(r models.ComplaintRecord) (*complaint.Complaint, error) {
	status, err := vo.NewComplaintStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("complaint %s: %w", r.ID, err)
	}

	var gps *vo.GeoPoint
	if r.GPSLocation != nil {
		p, err := vo.NewGeoPoint(r.GPSLocation.Lat, r.GPSLocation.Lng)
		if err != nil {
			return nil, fmt.Errorf("complaint %s: %w", r.ID, err)
		}
		gps = &p
	}

	return complaint.ReconstructComplaint(complaint.State{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Location:        r.Location,
		GPSLocation:     gps,
		Name:            r.Name,
		Email:           r.Email,
		Department:      vo.Department(r.Department),
		Status:          status,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
		InProgressAt:    r.InProgressAt,
		CompletedAt:     r.CompletedAt,
		CompletionPhoto: r.CompletionPhoto,
		Attachments:     r.Attachments,
		Points:          r.Points,
	})
}
