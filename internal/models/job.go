package models

import "time"

// Job represents a careers-page posting. Postings are created by an
// administrator and listed publicly newest first; no update or delete is exposed.
type Job struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string    `json:"title" validate:"required,max=150"`
	Company     string    `json:"company" validate:"required,max=100"`
	Location    string    `json:"location" validate:"required,max=100"`
	Type        string    `json:"type" validate:"required,oneof=Full-Time Part-Time Internship"`
	Description string    `json:"description" validate:"required,max=5000"`
	PostedAt    time.Time `json:"postedAt" gorm:"autoCreateTime"`
}
