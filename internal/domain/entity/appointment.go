package entity

import "github.com/kiptoo/carebill/internal/domain/enum"

type Appointment struct {
	ID        string                 `csv:"id" json:"id"`
	PatientID string                 `csv:"patientId" json:"patient_id"`
	DoctorID  string                 `csv:"doctorId" json:"doctor_id"`
	Date      string                 `csv:"date" json:"date"`
	Time      string                 `csv:"time" json:"time"`
	Status    enum.AppointmentStatus `csv:"status" json:"status"`
}
