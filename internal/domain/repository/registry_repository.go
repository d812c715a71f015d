package repository

import (
	"context"

	"github.com/kiptoo/carebill/internal/domain/entity"
)

// PatientRepository defines the interface for the patients table.
type PatientRepository interface {
	All(ctx context.Context) ([]entity.Patient, error)
	IDs(ctx context.Context) ([]string, error)
	// FindByID returns (nil, nil) for a dangling reference; readers must
	// not fail on it.
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
	Append(ctx context.Context, patient entity.Patient) error
}

// DoctorRepository defines the interface for the doctors table.
type DoctorRepository interface {
	All(ctx context.Context) ([]entity.Doctor, error)
	IDs(ctx context.Context) ([]string, error)
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	Append(ctx context.Context, doctor entity.Doctor) error
}

// AppointmentRepository defines the interface for the appointments table.
type AppointmentRepository interface {
	All(ctx context.Context) ([]entity.Appointment, error)
	IDs(ctx context.Context) ([]string, error)
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	Append(ctx context.Context, appt entity.Appointment) error
	Replace(ctx context.Context, appt entity.Appointment) error
}

// LabReportRepository defines the interface for the lab reports table.
type LabReportRepository interface {
	All(ctx context.Context) ([]entity.LabReport, error)
	IDs(ctx context.Context) ([]string, error)
	Append(ctx context.Context, report entity.LabReport) error
}
