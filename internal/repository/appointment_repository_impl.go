package repository

import (
	"context"
	"errors"

	"patient-appointment-api/internal/domain/entity"
	domainRepo "patient-appointment-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.Appointment) error {
	return db.WithContext(ctx).Create(appointment).Error
}

// FindByPatientDateTime looks up an appointment occupying the exact
// (patient, date, time) slot. Date arrives as YYYY-MM-DD text so the
// comparison casts directly against the date column.
func (r *appointmentRepository) FindByPatientDateTime(ctx context.Context, db *gorm.DB, patientID int, date string, timeOfDay string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Where("patient_id = ? AND appointment_date = ? AND appointment_time = ?", patientID, date, timeOfDay).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	query := db.WithContext(ctx)

	if filter != nil {
		if filter.PatientID != "" {
			query = query.Where("patient_id::text = ?", filter.PatientID)
		}
		if filter.Date != "" {
			query = query.Where("appointment_date::text = ?", filter.Date)
		}
	}

	err := query.
		Preload("Patient").
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindByTextID compares the identifier as text. Lookups with values that
// never match any row, numeric or not, report not found instead of a
// cast failure from the integer column.
func (r *appointmentRepository) FindByTextID(ctx context.Context, db *gorm.DB, id string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.WithContext(ctx).
		Preload("Patient").
		Where("id::text = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}
