package database

import (
	"context"
	"fmt"

	"patient-appointment-api/internal/domain/entity"
	domainRepo "patient-appointment-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func strPtr(s string) *string {
	return &s
}

func samplePatients() []entity.Patient {
	return []entity.Patient{
		{Name: "John Doe", Email: strPtr("john.doe@email.com"), Phone: strPtr("555-0101")},
		{Name: "Jane Smith", Email: strPtr("jane.smith@email.com"), Phone: strPtr("555-0102")},
		{Name: "Michael Johnson", Email: strPtr("michael.johnson@email.com"), Phone: strPtr("555-0103")},
	}
}

// SeedPatients inserts the sample patients only when the table is empty,
// so repeated startups never duplicate them.
func SeedPatients(ctx context.Context, db *gorm.DB, patientRepo domainRepo.PatientRepository) error {
	count, err := patientRepo.Count(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to count patients: %w", err)
	}
	if count > 0 {
		logrus.Debugf("Patients already seeded (%d rows), skipping", count)
		return nil
	}

	patients := samplePatients()
	if err := patientRepo.CreateBatch(ctx, db, patients); err != nil {
		return fmt.Errorf("failed to seed patients: %w", err)
	}

	logrus.Infof("Seeded %d sample patients", len(patients))

	return nil
}
