package repository

import (
	"context"

	"github.com/kiptoo/carebill/internal/domain/entity"
	domainRepo "github.com/kiptoo/carebill/internal/domain/repository"
	"github.com/kiptoo/carebill/internal/infrastructure/store"
)

// --- Patients ---

type patientRepository struct {
	tbl *table[entity.Patient]
}

// NewPatientRepository loads the patients table and returns a repository
// over it.
func NewPatientRepository(s *store.Store) (domainRepo.PatientRepository, error) {
	tbl, err := loadTable[entity.Patient](s, store.PatientsTable)
	if err != nil {
		return nil, err
	}
	return &patientRepository{tbl: tbl}, nil
}

func (r *patientRepository) All(ctx context.Context) ([]entity.Patient, error) {
	return r.tbl.all(), nil
}

func (r *patientRepository) IDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.tbl.rows))
	for _, p := range r.tbl.rows {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	for _, p := range r.tbl.rows {
		if p.ID == id {
			patient := p
			return &patient, nil
		}
	}
	return nil, nil
}

func (r *patientRepository) Append(ctx context.Context, patient entity.Patient) error {
	return r.tbl.mutate(func(rows []entity.Patient) []entity.Patient {
		return append(rows, patient)
	})
}

// --- Doctors ---

type doctorRepository struct {
	tbl *table[entity.Doctor]
}

// NewDoctorRepository loads the doctors table and returns a repository
// over it.
func NewDoctorRepository(s *store.Store) (domainRepo.DoctorRepository, error) {
	tbl, err := loadTable[entity.Doctor](s, store.DoctorsTable)
	if err != nil {
		return nil, err
	}
	return &doctorRepository{tbl: tbl}, nil
}

func (r *doctorRepository) All(ctx context.Context) ([]entity.Doctor, error) {
	return r.tbl.all(), nil
}

func (r *doctorRepository) IDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.tbl.rows))
	for _, d := range r.tbl.rows {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	for _, d := range r.tbl.rows {
		if d.ID == id {
			doctor := d
			return &doctor, nil
		}
	}
	return nil, nil
}

func (r *doctorRepository) Append(ctx context.Context, doctor entity.Doctor) error {
	return r.tbl.mutate(func(rows []entity.Doctor) []entity.Doctor {
		return append(rows, doctor)
	})
}

// --- Appointments ---

type appointmentRepository struct {
	tbl *table[entity.Appointment]
}

// NewAppointmentRepository loads the appointments table and returns a
// repository over it.
func NewAppointmentRepository(s *store.Store) (domainRepo.AppointmentRepository, error) {
	tbl, err := loadTable[entity.Appointment](s, store.AppointmentsTable)
	if err != nil {
		return nil, err
	}
	return &appointmentRepository{tbl: tbl}, nil
}

func (r *appointmentRepository) All(ctx context.Context) ([]entity.Appointment, error) {
	return r.tbl.all(), nil
}

func (r *appointmentRepository) IDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.tbl.rows))
	for _, a := range r.tbl.rows {
		ids = append(ids, a.ID)
	}
	return ids, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	for _, a := range r.tbl.rows {
		if a.ID == id {
			appt := a
			return &appt, nil
		}
	}
	return nil, nil
}

func (r *appointmentRepository) Append(ctx context.Context, appt entity.Appointment) error {
	return r.tbl.mutate(func(rows []entity.Appointment) []entity.Appointment {
		return append(rows, appt)
	})
}

func (r *appointmentRepository) Replace(ctx context.Context, appt entity.Appointment) error {
	return r.tbl.mutate(func(rows []entity.Appointment) []entity.Appointment {
		for i := range rows {
			if rows[i].ID == appt.ID {
				rows[i] = appt
			}
		}
		return rows
	})
}

// --- Lab reports ---

type labReportRepository struct {
	tbl *table[entity.LabReport]
}

// NewLabReportRepository loads the lab reports table and returns a
// repository over it.
func NewLabReportRepository(s *store.Store) (domainRepo.LabReportRepository, error) {
	tbl, err := loadTable[entity.LabReport](s, store.LabReportsTable)
	if err != nil {
		return nil, err
	}
	return &labReportRepository{tbl: tbl}, nil
}

func (r *labReportRepository) All(ctx context.Context) ([]entity.LabReport, error) {
	return r.tbl.all(), nil
}

func (r *labReportRepository) IDs(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(r.tbl.rows))
	for _, l := range r.tbl.rows {
		ids = append(ids, l.ID)
	}
	return ids, nil
}

func (r *labReportRepository) Append(ctx context.Context, report entity.LabReport) error {
	return r.tbl.mutate(func(rows []entity.LabReport) []entity.LabReport {
		return append(rows, report)
	})
}
