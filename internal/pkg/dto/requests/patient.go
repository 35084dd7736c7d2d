package requests

// SearchPatient carries the optional search criteria; empty fields are
// excluded from the store filter.
type SearchPatient struct {
	LastName    string `json:"last_name"`
	FirstName   string `json:"first_name"`
	DateOfBirth string `json:"dob"`
}

// ResolvePatient is the simplified lookup variant taking a combined
// "Last, First" name and/or a date of birth.
type ResolvePatient struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"dob"`
}

type CreatePatient struct {
	LastName    string `json:"last_name" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	DateOfBirth string `json:"dob" validate:"required"`
}

type SelectPatient struct {
	PatientID string `json:"patient_id" validate:"required"`
}
