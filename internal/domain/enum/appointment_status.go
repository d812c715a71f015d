package enum

import "fmt"

// AppointmentStatus represents the lifecycle of an appointment.
type AppointmentStatus int

const (
	AppointmentStatusScheduled AppointmentStatus = 0
	AppointmentStatusDone      AppointmentStatus = 1
)

func (s AppointmentStatus) String() string {
	return [...]string{"Scheduled", "Done"}[s]
}

func (s AppointmentStatus) MarshalCSV() (string, error) {
	if s != AppointmentStatusScheduled && s != AppointmentStatusDone {
		return "", fmt.Errorf("unknown appointment status %d", int(s))
	}
	return s.String(), nil
}

func (s *AppointmentStatus) UnmarshalCSV(str string) error {
	switch str {
	case "Scheduled":
		*s = AppointmentStatusScheduled
	case "Done":
		*s = AppointmentStatusDone
	default:
		return fmt.Errorf("unknown appointment status %q", str)
	}
	return nil
}
