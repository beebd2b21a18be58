package complaint

import (
	"civicpulse/internal/application/complaint/usecases"
)

type GPSLocationRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

type FileComplaintRequest struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description" binding:"required"`
	Location    string              `json:"location" binding:"required"`
	GPSLocation *GPSLocationRequest `json:"gps_location"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Attachments []string            `json:"attachments"`
}

func (r *FileComplaintRequest) ToCommand() usecases.FileComplaintCommand {
	cmd := usecases.FileComplaintCommand{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Name:        r.Name,
		Email:       r.Email,
		Attachments: r.Attachments,
	}
	if r.GPSLocation != nil {
		cmd.Latitude = r.GPSLocation.Lat
		cmd.Longitude = r.GPSLocation.Lng
	}
	return cmd
}

type UpdateStatusRequest struct {
	Status          string  `json:"status" binding:"required"`
	CompletionPhoto *string `json:"completion_photo"`
}

type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}
