package usecase

import (
	"context"
	"errors"
	"time"

	"patient-appointment-api/internal/converter"
	"patient-appointment-api/internal/delivery/dto"
	"patient-appointment-api/internal/domain/entity"
	"patient-appointment-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrSchedulingConflict  = errors.New("patient already has an appointment at this date and time")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidDate         = errors.New("appointment date must be in YYYY-MM-DD format")
)

const appointmentCreatedMessage = "Appointment created successfully"

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.CreateAppointmentResponse, error)
	ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id string) (*dto.AppointmentDetailResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
	}
}

// CreateAppointment runs the scheduling workflow for a validated request.
//
// Flow:
// 1. Verify the referenced patient exists
// 2. Check no appointment occupies the same (patient, date, time) slot
// 3. Insert with status "scheduled"
// 4. Return the populated appointment plus a success message
//
// The checks run in this order and stop at the first failure; nothing is
// written before step 3.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.CreateAppointmentResponse, error) {
	appointmentDate, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// Step 1: the patient reference must resolve
	patient, err := u.patientRepo.FindByID(ctx, u.db, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	// Step 2: the slot must be free
	existing, err := u.appointmentRepo.FindByPatientDateTime(ctx, u.db, req.PatientID, req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		u.log.Warnf("Failed to check for conflicting appointment: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSchedulingConflict
	}

	// Step 3: insert the appointment
	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		AppointmentDate: appointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
		Status:          entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		// A concurrent request can take the slot between steps 2 and 3; the
		// unique index on (patient_id, appointment_date, appointment_time)
		// turns the lost race into a duplicate-key error here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSchedulingConflict
		}
		u.log.Errorf("Failed to insert appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, patient=%d, date=%s, time=%s",
		appointment.ID, appointment.PatientID, req.AppointmentDate, appointment.AppointmentTime)

	// Step 4: return the populated appointment
	return converter.AppointmentToCreateResponse(appointment, appointmentCreatedMessage), nil
}

// ListAppointments returns all appointments with their patient names,
// optionally narrowed by the filter's exact matches.
func (u *appointmentUsecase) ListAppointments(ctx context.Context, filter *entity.AppointmentFilter) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

// GetAppointment looks up one appointment by the identifier exactly as it
// appeared in the request path.
func (u *appointmentUsecase) GetAppointment(ctx context.Context, id string) (*dto.AppointmentDetailResponse, error) {
	appointment, err := u.appointmentRepo.FindByTextID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToDetailResponse(appointment), nil
}
