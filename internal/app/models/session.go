package models

import "time"

// PatientOption mirrors one cached search result: display label plus the
// patient identifier behind it.
type PatientOption struct {
	Label     string `json:"label"`
	PatientID string `json:"patient_id"`
}

// Session threads user identity, patient selection and the last search's
// results across a sequence of otherwise stateless calls. Stored in Redis,
// never process-global.
type Session struct {
	SessionID   string          `json:"session_id"`
	User        string          `json:"user"`
	PatientID   string          `json:"patient_id,omitempty"`
	PatientList []PatientOption `json:"patient_list,omitempty"`
	ExpiresAt   time.Time       `json:"expires_at"`
}
