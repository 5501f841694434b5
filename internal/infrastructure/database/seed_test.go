package database

import (
	"context"
	"testing"

	"patient-appointment-api/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestSeedPatients_EmptyTable(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "patients"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "patients"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(3))
	mock.ExpectCommit()

	err := SeedPatients(context.Background(), db, repository.NewPatientRepository())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedPatients_AlreadySeeded(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "patients"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	err := SeedPatients(context.Background(), db, repository.NewPatientRepository())
	require.NoError(t, err, "a populated table is left untouched")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSamplePatients_HaveContactDetails(t *testing.T) {
	patients := samplePatients()

	require.Len(t, patients, 3)
	for _, p := range patients {
		assert.NotEmpty(t, p.Name)
		require.NotNil(t, p.Email)
		require.NotNil(t, p.Phone)
	}
	assert.Equal(t, "John Doe", patients[0].Name)
	assert.Equal(t, "john.doe@email.com", *patients[0].Email)
}
