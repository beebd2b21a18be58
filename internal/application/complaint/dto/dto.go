package dto

import (
	"time"

	"civicpulse/internal/domain/complaint"
	"civicpulse/internal/shared/mapper"
)

type GPSLocationDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ComplaintDTO struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Location        string          `json:"location"`
	GPSLocation     *GPSLocationDTO `json:"gps_location,omitempty"`
	Name            string          `json:"name,omitempty"`
	Email           string          `json:"email,omitempty"`
	Department      string          `json:"department"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	InProgressAt    *time.Time      `json:"in_progress_at,omitempty"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	CompletionPhoto *string         `json:"completion_photo,omitempty"`
	Attachments     []string        `json:"attachments,omitempty"`
	Points          int             `json:"points,omitempty"`
	Timeline        []TimelineDTO   `json:"timeline,omitempty"`
}

type TimelineDTO struct {
	Stage string    `json:"stage"`
	Label string    `json:"label"`
	At    time.Time `json:"at"`
}

type DepartmentCountDTO struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

type StatsDTO struct {
	Total              int                  `json:"total"`
	Pending            int                  `json:"pending"`
	InProgress         int                  `json:"in_progress"`
	Resolved           int                  `json:"resolved"`
	ByDepartment       []DepartmentCountDTO `json:"by_department"`
	AvgResolutionHours int                  `json:"avg_resolution_hours"`
	ResolutionRate     int                  `json:"resolution_rate"`
	FiledToday         int                  `json:"filed_today"`
}

func ToComplaintDTO(c *complaint.Complaint) *ComplaintDTO {
	if c == nil {
		return nil
	}

	d := &ComplaintDTO{
		ID:              c.ID(),
		Title:           c.Title(),
		Description:     c.Description(),
		Location:        c.Location(),
		Name:            c.Name(),
		Email:           c.Email(),
		Department:      c.Department().String(),
		Status:          c.Status().String(),
		CreatedAt:       c.CreatedAt(),
		UpdatedAt:       c.UpdatedAt(),
		InProgressAt:    c.InProgressAt(),
		CompletedAt:     c.CompletedAt(),
		CompletionPhoto: c.CompletionPhoto(),
		Attachments:     c.Attachments(),
		Points:          c.Points(),
	}
	if gps := c.GPSLocation(); gps != nil {
		d.GPSLocation = &GPSLocationDTO{Lat: gps.Lat(), Lng: gps.Lng()}
	}
	return d
}

// ToComplaintDetailDTO includes the timeline.
func ToComplaintDetailDTO(c *complaint.Complaint) *ComplaintDTO {
	d := ToComplaintDTO(c)
	if d == nil {
		return nil
	}
	for _, e := range c.Timeline() {
		d.Timeline = append(d.Timeline, TimelineDTO{Stage: string(e.Stage), Label: e.Label, At: e.At})
	}
	return d
}

func ToComplaintDTOs(cs []*complaint.Complaint) []*ComplaintDTO {
	return mapper.MapSliceSkipNil(cs, ToComplaintDTO)
}

func ToStatsDTO(s complaint.Stats) *StatsDTO {
	byDept := mapper.MapSlice(s.ByDepartment, func(d complaint.DepartmentCount) DepartmentCountDTO {
		return DepartmentCountDTO{Department: d.Department.String(), Count: d.Count}
	})
	return &StatsDTO{
		Total:              s.Total,
		Pending:            s.Pending,
		InProgress:         s.InProgress,
		Resolved:           s.Resolved,
		ByDepartment:       byDept,
		AvgResolutionHours: s.AvgResolutionHours,
		ResolutionRate:     s.ResolutionRatePct,
		FiledToday:         s.FiledSinceDayStart,
	}
}
