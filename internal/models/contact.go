package models

import "time"

// Contact message statuses. The transition is one-directional: pending
// messages are marked contacted by an administrator and never flip back.
const (
	ContactPending   = "pending"
	ContactContacted = "contacted"
)

// ContactMessage represents a public contact-form submission.
type ContactMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" validate:"required,max=100"`
	Company   string    `json:"company,omitempty" validate:"omitempty,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty" validate:"omitempty,max=30"`
	Message   string    `json:"message" validate:"required,max=2000"`
	Status    string    `json:"status" validate:"omitempty,oneof=pending contacted"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}
