package service

import (
	"context"
	"testing"
	"time"

	"github.com/kiptoo/carebill/internal/domain/enum"
	infraRepo "github.com/kiptoo/carebill/internal/infrastructure/repository"
	"github.com/kiptoo/carebill/internal/infrastructure/store"
	"github.com/kiptoo/carebill/pkg/apperror"
	"github.com/kiptoo/carebill/pkg/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRegistry(t *testing.T) *RegistryService {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	patients, err := infraRepo.NewPatientRepository(s)
	require.NoError(t, err)
	doctors, err := infraRepo.NewDoctorRepository(s)
	require.NoError(t, err)
	appts, err := infraRepo.NewAppointmentRepository(s)
	require.NoError(t, err)
	prescs, err := infraRepo.NewPrescriptionRepository(s)
	require.NoError(t, err)
	labs, err := infraRepo.NewLabReportRepository(s)
	require.NoError(t, err)
	return NewRegistryService(patients, doctors, appts, prescs, labs,
		sequence.NewAllocator(), zap.NewNop())
}

func TestAddPatientAssignsSequentialIDs(t *testing.T) {
	svc := newTestRegistry(t)
	ctx := context.Background()

	first, err := svc.AddPatient(ctx, PatientInput{Name: "Asha", Age: 30, Disease: "Flu"})
	require.NoError(t, err)
	second, err := svc.AddPatient(ctx, PatientInput{Name: "Brian", Age: 44, Disease: "Malaria"})
	require.NoError(t, err)

	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2", second.ID)
}

func TestAddPatientRequiresName(t *testing.T) {
	svc := newTestRegistry(t)

	_, err := svc.AddPatient(context.Background(), PatientInput{Age: 30})

	assert.True(t, apperror.IsValidation(err))
}

func TestGetPatientDetailAggregatesTables(t *testing.T) {
	svc := newTestRegistry(t)
	ctx := context.Background()
	patient, err := svc.AddPatient(ctx, PatientInput{Name: "Asha", Disease: "Flu"})
	require.NoError(t, err)
	doctor, err := svc.AddDoctor(ctx, "Dr. Singh", "General")
	require.NoError(t, err)

	_, err = svc.ScheduleAppointment(ctx, AppointmentInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		Date: "2026-09-01", Time: "10:00",
	})
	require.NoError(t, err)
	_, err = svc.AddPrescription(ctx, PrescriptionInput{
		PatientID: patient.ID, DoctorID: doctor.ID, Medicine: "Paracetamol", Quantity: 10,
	})
	require.NoError(t, err)
	_, err = svc.AddLabReport(ctx, LabReportInput{
		PatientID: patient.ID, DoctorID: doctor.ID, Test: "CBC", Result: "Normal",
	})
	require.NoError(t, err)

	detail, err := svc.GetPatientDetail(ctx, patient.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", detail.Patient.Name)
	assert.Len(t, detail.Appointments, 1)
	assert.Len(t, detail.Prescriptions, 1)
	assert.Len(t, detail.LabReports, 1)
}

func TestGetPatientDetailUnknownPatient(t *testing.T) {
	svc := newTestRegistry(t)

	_, err := svc.GetPatientDetail(context.Background(), "99")

	assert.True(t, apperror.IsNotFound(err))
}

func TestScheduleAppointmentRejectsBadDate(t *testing.T) {
	svc := newTestRegistry(t)

	_, err := svc.ScheduleAppointment(context.Background(), AppointmentInput{
		PatientID: "1", DoctorID: "1", Date: "01/09/2026", Time: "10:00",
	})

	assert.True(t, apperror.IsValidation(err))
}

func TestMarkAppointmentDone(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	patients, err := infraRepo.NewPatientRepository(s)
	require.NoError(t, err)
	doctors, err := infraRepo.NewDoctorRepository(s)
	require.NoError(t, err)
	appts, err := infraRepo.NewAppointmentRepository(s)
	require.NoError(t, err)
	prescs, err := infraRepo.NewPrescriptionRepository(s)
	require.NoError(t, err)
	labs, err := infraRepo.NewLabReportRepository(s)
	require.NoError(t, err)
	svc := NewRegistryService(patients, doctors, appts, prescs, labs,
		sequence.NewAllocator(), zap.NewNop())
	ctx := context.Background()

	appt, err := svc.ScheduleAppointment(ctx, AppointmentInput{
		PatientID: "1", DoctorID: "1", Date: "2026-09-01", Time: "10:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.MarkAppointmentDone(ctx, appt.ID))

	updated, err := appts.FindByID(ctx, appt.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, enum.AppointmentStatusDone, updated.Status)
}

func TestMarkAppointmentDoneUnknownID(t *testing.T) {
	svc := newTestRegistry(t)

	err := svc.MarkAppointmentDone(context.Background(), "99")

	assert.True(t, apperror.IsNotFound(err))
}

func TestTodaysAppointmentsFiltersByDate(t *testing.T) {
	svc := newTestRegistry(t)
	ctx := context.Background()
	today := time.Now().Format("2006-01-02")

	_, err := svc.ScheduleAppointment(ctx, AppointmentInput{
		PatientID: "1", DoctorID: "1", Date: today, Time: "10:00",
	})
	require.NoError(t, err)
	_, err = svc.ScheduleAppointment(ctx, AppointmentInput{
		PatientID: "2", DoctorID: "1", Date: "2099-01-01", Time: "10:00",
	})
	require.NoError(t, err)

	appts, err := svc.TodaysAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 1)
	assert.Equal(t, today, appts[0].Date)
}

func TestEmergencyAdmission(t *testing.T) {
	svc := newTestRegistry(t)
	ctx := context.Background()
	doctor, err := svc.AddDoctor(ctx, "Dr. Singh", "General")
	require.NoError(t, err)

	patient, appt, err := svc.EmergencyAdmission(ctx, "", doctor.ID)

	require.NoError(t, err)
	assert.Equal(t, "Emerg"+patient.ID, patient.Name)
	assert.Equal(t, "Emergency", patient.Disease)
	assert.Equal(t, patient.ID, appt.PatientID)
	assert.Equal(t, doctor.ID, appt.DoctorID)
	assert.Equal(t, enum.AppointmentStatusScheduled, appt.Status)
	assert.Equal(t, time.Now().Format("2006-01-02"), appt.Date)
}
