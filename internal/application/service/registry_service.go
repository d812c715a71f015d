package service

import (
	"context"
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kiptoo/carebill/internal/domain/entity"
	"github.com/kiptoo/carebill/internal/domain/enum"
	"github.com/kiptoo/carebill/internal/domain/repository"
	"github.com/kiptoo/carebill/pkg/apperror"
	"github.com/kiptoo/carebill/pkg/sequence"
	"go.uber.org/zap"
)

// RegistryService manages the non-billing tables: patients, doctors,
// appointments, prescriptions and lab reports.
type RegistryService struct {
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
	appts    repository.AppointmentRepository
	prescs   repository.PrescriptionRepository
	labs     repository.LabReportRepository
	alloc    *sequence.Allocator
	logger   *zap.Logger
}

// NewRegistryService creates a new registry service
func NewRegistryService(
	patients repository.PatientRepository,
	doctors repository.DoctorRepository,
	appts repository.AppointmentRepository,
	prescs repository.PrescriptionRepository,
	labs repository.LabReportRepository,
	alloc *sequence.Allocator,
	logger *zap.Logger,
) *RegistryService {
	return &RegistryService{
		patients: patients,
		doctors:  doctors,
		appts:    appts,
		prescs:   prescs,
		labs:     labs,
		alloc:    alloc,
		logger:   logger,
	}
}

// PatientInput is the caller input for registering a patient.
type PatientInput struct {
	Name    string
	Age     int
	Gender  string
	Disease string
}

func (i PatientInput) Validate() error {
	return toValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required),
		validation.Field(&i.Age, validation.Min(0)),
	))
}

// AppointmentInput is the caller input for scheduling an appointment.
type AppointmentInput struct {
	PatientID string
	DoctorID  string
	Date      string
	Time      string
}

func (i AppointmentInput) Validate() error {
	return toValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.PatientID, validation.Required),
		validation.Field(&i.DoctorID, validation.Required),
		validation.Field(&i.Date, validation.Required, validation.Date(dateLayout)),
		validation.Field(&i.Time, validation.Required),
	))
}

// PrescriptionInput is the caller input for writing a prescription.
type PrescriptionInput struct {
	PatientID string
	DoctorID  string
	Medicine  string
	Quantity  int
}

func (i PrescriptionInput) Validate() error {
	return toValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.PatientID, validation.Required),
		validation.Field(&i.Medicine, validation.Required),
		validation.Field(&i.Quantity, validation.Min(1)),
	))
}

// LabReportInput is the caller input for recording a lab result.
type LabReportInput struct {
	PatientID string
	DoctorID  string
	Test      string
	Result    string
}

func (i LabReportInput) Validate() error {
	return toValidationError(validation.ValidateStruct(&i,
		validation.Field(&i.PatientID, validation.Required),
		validation.Field(&i.Test, validation.Required),
	))
}

// PatientDetail aggregates everything recorded against one patient.
type PatientDetail struct {
	Patient       entity.Patient
	Appointments  []entity.Appointment
	Prescriptions []entity.Prescription
	LabReports    []entity.LabReport
}

// AddPatient registers a new patient.
func (s *RegistryService) AddPatient(ctx context.Context, input PatientInput) (*entity.Patient, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	id, err := s.nextID(ctx, s.patients.IDs)
	if err != nil {
		return nil, err
	}
	patient := entity.Patient{
		ID:      id,
		Name:    input.Name,
		Age:     input.Age,
		Gender:  input.Gender,
		Disease: input.Disease,
		Created: time.Now().Format(dateLayout),
	}
	if err := s.patients.Append(ctx, patient); err != nil {
		return nil, err
	}
	s.logger.Info("patient registered", zap.String("patient_id", id))
	return &patient, nil
}

// Patients lists the patient registry.
func (s *RegistryService) Patients(ctx context.Context) ([]entity.Patient, error) {
	return s.patients.All(ctx)
}

// GetPatientDetail collects a patient's record across all tables.
func (s *RegistryService) GetPatientDetail(ctx context.Context, patientID string) (*PatientDetail, error) {
	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, apperror.NewNotFoundError("Patient")
	}

	detail := &PatientDetail{Patient: *patient}

	appts, err := s.appts.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range appts {
		if a.PatientID == patientID {
			detail.Appointments = append(detail.Appointments, a)
		}
	}

	prescs, err := s.prescs.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range prescs {
		if p.PatientID == patientID {
			detail.Prescriptions = append(detail.Prescriptions, p)
		}
	}

	labs, err := s.labs.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range labs {
		if l.PatientID == patientID {
			detail.LabReports = append(detail.LabReports, l)
		}
	}
	return detail, nil
}

// AddDoctor registers a new doctor.
func (s *RegistryService) AddDoctor(ctx context.Context, name, specialization string) (*entity.Doctor, error) {
	if name == "" {
		return nil, apperror.NewValidationError("doctor name is required")
	}
	id, err := s.nextID(ctx, s.doctors.IDs)
	if err != nil {
		return nil, err
	}
	doctor := entity.Doctor{ID: id, Name: name, Specialization: specialization}
	if err := s.doctors.Append(ctx, doctor); err != nil {
		return nil, err
	}
	s.logger.Info("doctor registered", zap.String("doctor_id", id))
	return &doctor, nil
}

// Doctors lists the doctor registry.
func (s *RegistryService) Doctors(ctx context.Context) ([]entity.Doctor, error) {
	return s.doctors.All(ctx)
}

// ScheduleAppointment books a patient with a doctor. References are not
// enforced; a dangling patient or doctor id is legal.
func (s *RegistryService) ScheduleAppointment(ctx context.Context, input AppointmentInput) (*entity.Appointment, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	id, err := s.nextID(ctx, s.appts.IDs)
	if err != nil {
		return nil, err
	}
	appt := entity.Appointment{
		ID:        id,
		PatientID: input.PatientID,
		DoctorID:  input.DoctorID,
		Date:      input.Date,
		Time:      input.Time,
		Status:    enum.AppointmentStatusScheduled,
	}
	if err := s.appts.Append(ctx, appt); err != nil {
		return nil, err
	}
	s.logger.Info("appointment scheduled", zap.String("appointment_id", id))
	return &appt, nil
}

// TodaysAppointments lists appointments scheduled for the current date.
func (s *RegistryService) TodaysAppointments(ctx context.Context) ([]entity.Appointment, error) {
	appts, err := s.appts.All(ctx)
	if err != nil {
		return nil, err
	}
	today := time.Now().Format(dateLayout)
	var out []entity.Appointment
	for _, a := range appts {
		if a.Date == today {
			out = append(out, a)
		}
	}
	return out, nil
}

// MarkAppointmentDone completes an appointment.
func (s *RegistryService) MarkAppointmentDone(ctx context.Context, apptID string) error {
	appt, err := s.appts.FindByID(ctx, apptID)
	if err != nil {
		return err
	}
	if appt == nil {
		return apperror.NewNotFoundError("Appointment")
	}
	appt.Status = enum.AppointmentStatusDone
	return s.appts.Replace(ctx, *appt)
}

// AddPrescription records a prescription written by a doctor.
func (s *RegistryService) AddPrescription(ctx context.Context, input PrescriptionInput) (*entity.Prescription, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	id, err := s.nextID(ctx, s.prescs.IDs)
	if err != nil {
		return nil, err
	}
	presc := entity.Prescription{
		ID:        id,
		PatientID: input.PatientID,
		DoctorID:  input.DoctorID,
		Date:      time.Now().Format(dateLayout),
		Medicine:  input.Medicine,
		Quantity:  input.Quantity,
	}
	if err := s.prescs.Append(ctx, presc); err != nil {
		return nil, err
	}
	return &presc, nil
}

// AddLabReport records a lab result.
func (s *RegistryService) AddLabReport(ctx context.Context, input LabReportInput) (*entity.LabReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	id, err := s.nextID(ctx, s.labs.IDs)
	if err != nil {
		return nil, err
	}
	report := entity.LabReport{
		ID:        id,
		PatientID: input.PatientID,
		DoctorID:  input.DoctorID,
		Date:      time.Now().Format(dateLayout),
		Test:      input.Test,
		Result:    input.Result,
	}
	if err := s.labs.Append(ctx, report); err != nil {
		return nil, err
	}
	return &report, nil
}

// EmergencyAdmission creates a patient on the spot and books an immediate
// appointment with the given doctor.
func (s *RegistryService) EmergencyAdmission(ctx context.Context, name, doctorID string) (*entity.Patient, *entity.Appointment, error) {
	patientID, err := s.nextID(ctx, s.patients.IDs)
	if err != nil {
		return nil, nil, err
	}
	if name == "" {
		name = "Emerg" + patientID
	}
	patient := entity.Patient{
		ID:      patientID,
		Name:    name,
		Disease: "Emergency",
		Created: time.Now().Format(dateLayout),
	}
	if err := s.patients.Append(ctx, patient); err != nil {
		return nil, nil, err
	}

	apptID, err := s.nextID(ctx, s.appts.IDs)
	if err != nil {
		return nil, nil, err
	}
	now := time.Now()
	appt := entity.Appointment{
		ID:        apptID,
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      now.Format(dateLayout),
		Time:      now.Format("15:04"),
		Status:    enum.AppointmentStatusScheduled,
	}
	if err := s.appts.Append(ctx, appt); err != nil {
		return nil, nil, err
	}
	s.logger.Info("emergency admission",
		zap.String("patient_id", patientID),
		zap.String("appointment_id", apptID),
	)
	return &patient, &appt, nil
}

// nextID allocates a table identifier from the table's current ids.
func (s *RegistryService) nextID(ctx context.Context, ids func(context.Context) ([]string, error)) (string, error) {
	current, err := ids(ctx)
	if err != nil {
		return "", err
	}
	id, err := s.alloc.Next(current)
	if err != nil {
		switch {
		case errors.Is(err, sequence.ErrInvalidIdentifier):
			return "", apperror.NewInvalidIdentifierError(err.Error())
		case errors.Is(err, sequence.ErrIdentifierCollision):
			return "", apperror.NewConflictError(err.Error())
		default:
			return "", err
		}
	}
	return id, nil
}
