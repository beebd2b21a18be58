package models

import "time"

// ComplaintRecord is the stored JSON shape of a complaint. Field names match
// the records written by earlier versions of the app, so existing data loads.
type ComplaintRecord struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	GPSLocation     *GPSRecord `json:"gpsLocation,omitempty"`
	Name            string     `json:"name,omitempty"`
	Email           string     `json:"email,omitempty"`
	Department      string     `json:"department"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
	InProgressAt    *time.Time `json:"inProgressAt,omitempty"`
	CompletionPhoto *string    `json:"completionPhoto,omitempty"`
	CompletedAt     *time.Time `json:"completedAt,omitempty"`
	Attachments     []string   `json:"attachments,omitempty"`
	Points          int        `json:"points,omitempty"`
}

type GPSRecord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
