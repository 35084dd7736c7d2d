package responses

// PatientOption is one entry of a search result: the display label shown in
// the patient dropdown plus the identifier behind it.
type PatientOption struct {
	Label     string `json:"label"`
	PatientID string `json:"patient_id"`
}

type CreatePatient struct {
	PatientID string `json:"patient_id"`
}
