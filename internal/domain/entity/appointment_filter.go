package entity

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
// Values are kept as opaque text and compared exactly; an unmatchable
// value yields an empty result rather than a query error.
type AppointmentFilter struct {
	PatientID string // exact match on the patient reference
	Date      string // Format: YYYY-MM-DD, exact match
}
