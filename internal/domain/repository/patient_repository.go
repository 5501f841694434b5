package repository

import (
	"context"

	"patient-appointment-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	FindByID(ctx context.Context, db *gorm.DB, id int) (*entity.Patient, error)
	FindByTextID(ctx context.Context, db *gorm.DB, id string) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Patient, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	CreateBatch(ctx context.Context, db *gorm.DB, patients []entity.Patient) error
}
