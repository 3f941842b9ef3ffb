package entity

// AppointmentFilter is a domain-level filter for listing a patient's appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	Date       string            // Format: YYYY-MM-DD
	DoctorName string            // Substring, case-insensitive
	Status     AppointmentStatus // Empty means any status
}
