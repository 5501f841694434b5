package entity

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
)

// Appointment represents a scheduled slot binding a patient to a date and time.
// AppointmentTime is stored as text so the HH:MM value round-trips unchanged;
// zero-padded HH:MM also sorts chronologically.
type Appointment struct {
	ID              int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int               `gorm:"not null;index;uniqueIndex:idx_appointments_patient_slot" json:"patient_id"`
	AppointmentDate time.Time         `gorm:"type:date;not null;index;uniqueIndex:idx_appointments_patient_slot" json:"appointment_date"`
	AppointmentTime string            `gorm:"type:varchar(5);not null;uniqueIndex:idx_appointments_patient_slot" json:"appointment_time"`
	Reason          string            `gorm:"type:varchar(500);not null" json:"reason"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}
