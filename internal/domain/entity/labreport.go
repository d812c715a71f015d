package entity

type LabReport struct {
	ID        string `csv:"reportId" json:"report_id"`
	PatientID string `csv:"patientId" json:"patient_id"`
	DoctorID  string `csv:"doctorId" json:"doctor_id"`
	Date      string `csv:"date" json:"date"`
	Test      string `csv:"test" json:"test"`
	Result    string `csv:"result" json:"result"`
}
