package repository

import (
	"context"
	"errors"

	"patient-appointment-api/internal/domain/entity"
	domainRepo "patient-appointment-api/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByTextID(ctx context.Context, db *gorm.DB, id string) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.WithContext(ctx).Where("id::text = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.WithContext(ctx).Order("id ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&count).Error
	return count, err
}

func (r *patientRepository) CreateBatch(ctx context.Context, db *gorm.DB, patients []entity.Patient) error {
	return db.WithContext(ctx).Create(&patients).Error
}
