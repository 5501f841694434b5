package entity

import (
	"time"
)

// Patient represents a person appointments are booked for.
// Patients are created by the seed routine, not through the API.
type Patient struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     *string   `gorm:"type:varchar(100);uniqueIndex" json:"email,omitempty"`
	Phone     *string   `gorm:"type:varchar(20)" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
