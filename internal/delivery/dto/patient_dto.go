package dto

import (
	"time"
)

// Response DTOs
//
// Patients are created by the seed routine only, so there is no request
// side here.

type PatientResponse struct {
	PatientID int       `json:"PatientId"`
	Name      string    `json:"Name"`
	Email     *string   `json:"Email"`
	Phone     *string   `json:"Phone"`
	CreatedAt time.Time `json:"CreatedAt"`
}
