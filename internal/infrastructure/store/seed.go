package store

import (
	"fmt"
	"time"

	"github.com/kiptoo/carebill/internal/domain/entity"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Seed writes sample rows for any registry table that is still empty.
// Bills, prescriptions and lab reports are never seeded; they only come
// from real operations.
func Seed(s *Store, logger *zap.Logger) error {
	doctors, err := LoadTable[entity.Doctor](s, DoctorsTable)
	if err != nil {
		return err
	}
	if len(doctors) == 0 {
		doctors = []entity.Doctor{
			{ID: "1", Name: "Dr. Asha Singh", Specialization: "Cardiology"},
			{ID: "2", Name: "Dr. Rohit Verma", Specialization: "Orthopedics"},
			{ID: "3", Name: "Dr. Meera Patel", Specialization: "Pediatrics"},
			{ID: "4", Name: "Dr. Akbar Khan", Specialization: "General"},
		}
		if err := SaveTable(s, DoctorsTable, doctors); err != nil {
			return err
		}
		logger.Info("seeded doctors", zap.Int("count", len(doctors)))
	}

	patients, err := LoadTable[entity.Patient](s, PatientsTable)
	if err != nil {
		return err
	}
	if len(patients) == 0 {
		created := time.Now().Format("2006-01-02")
		diseases := []string{"Fever", "Fracture", "Diabetes", "Flu", "Hypertension"}
		genders := []string{"M", "F"}
		for i := 1; i <= 8; i++ {
			patients = append(patients, entity.Patient{
				ID:      fmt.Sprintf("%d", i),
				Name:    fmt.Sprintf("Patient %d", i),
				Age:     20 + i,
				Gender:  genders[i%len(genders)],
				Disease: diseases[i%len(diseases)],
				Created: created,
			})
		}
		if err := SaveTable(s, PatientsTable, patients); err != nil {
			return err
		}
		logger.Info("seeded patients", zap.Int("count", len(patients)))
	}

	stock, err := LoadTable[entity.StockItem](s, PharmacyTable)
	if err != nil {
		return err
	}
	if len(stock) == 0 {
		stock = []entity.StockItem{
			{Medicine: "Paracetamol", Quantity: 120, Price: decimal.NewFromInt(5)},
			{Medicine: "Amoxicillin", Quantity: 60, Price: decimal.NewFromInt(12)},
			{Medicine: "Ibuprofen", Quantity: 90, Price: decimal.NewFromInt(8)},
		}
		if err := SaveTable(s, PharmacyTable, stock); err != nil {
			return err
		}
		logger.Info("seeded pharmacy stock", zap.Int("count", len(stock)))
	}

	appts, err := LoadTable[entity.Appointment](s, AppointmentsTable)
	if err != nil {
		return err
	}
	if len(appts) == 0 {
		date := time.Now().Format("2006-01-02")
		for i, p := range patients {
			appts = append(appts, entity.Appointment{
				ID:        fmt.Sprintf("%d", i+1),
				PatientID: p.ID,
				DoctorID:  doctors[i%len(doctors)].ID,
				Date:      date,
				Time:      fmt.Sprintf("%02d:%02d", 9+i%8, 30*(i%2)),
			})
		}
		if err := SaveTable(s, AppointmentsTable, appts); err != nil {
			return err
		}
		logger.Info("seeded appointments", zap.Int("count", len(appts)))
	}

	return nil
}
