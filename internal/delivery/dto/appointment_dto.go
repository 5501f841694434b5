package dto

import (
	"time"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID       int    `json:"PatientId" validate:"required,gte=1"`
	AppointmentDate string `json:"AppointmentDate" validate:"required,datetime=2006-01-02"` // Format: YYYY-MM-DD
	AppointmentTime string `json:"AppointmentTime" validate:"required,hhmm"`                // Format: HH:MM
	Reason          string `json:"Reason" validate:"required,max=500"`
}

// Response DTOs

type CreateAppointmentResponse struct {
	AppointmentID   int    `json:"AppointmentId"`
	PatientID       int    `json:"PatientId"`
	AppointmentDate string `json:"AppointmentDate"`
	AppointmentTime string `json:"AppointmentTime"`
	Reason          string `json:"Reason"`
	Message         string `json:"Message"`
}

type AppointmentResponse struct {
	AppointmentID   int       `json:"AppointmentId"`
	PatientID       int       `json:"PatientId"`
	PatientName     string    `json:"PatientName"`
	AppointmentDate string    `json:"AppointmentDate"`
	AppointmentTime string    `json:"AppointmentTime"`
	Reason          string    `json:"Reason"`
	Status          string    `json:"Status"`
	CreatedAt       time.Time `json:"CreatedAt"`
}

type AppointmentDetailResponse struct {
	AppointmentID   int       `json:"AppointmentId"`
	PatientID       int       `json:"PatientId"`
	PatientName     string    `json:"PatientName"`
	PatientEmail    *string   `json:"PatientEmail"`
	PatientPhone    *string   `json:"PatientPhone"`
	AppointmentDate string    `json:"AppointmentDate"`
	AppointmentTime string    `json:"AppointmentTime"`
	Reason          string    `json:"Reason"`
	Status          string    `json:"Status"`
	CreatedAt       time.Time `json:"CreatedAt"`
}
