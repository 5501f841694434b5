package repository

import (
	"context"

	"patient-appointment-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error
	FindByPatientDateTime(ctx context.Context, db *gorm.DB, patientID int, date string, timeOfDay string) (*entity.Appointment, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByTextID(ctx context.Context, db *gorm.DB, id string) (*entity.Appointment, error)
}
