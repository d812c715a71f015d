package entity

// Prescription is read-only with respect to billing; fulfilling one drives
// a stock decrement and nothing else.
type Prescription struct {
	ID        string `csv:"prescId" json:"presc_id"`
	PatientID string `csv:"patientId" json:"patient_id"`
	DoctorID  string `csv:"doctorId" json:"doctor_id"`
	Date      string `csv:"date" json:"date"`
	Medicine  string `csv:"medicine" json:"medicine"`
	Quantity  int    `csv:"quantity" json:"quantity"`
}
