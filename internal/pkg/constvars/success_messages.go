package constvars

const (
	LoginSuccessMessage          = "Login successful"
	LogoutSuccessMessage         = "Logout successful"
	PatientAddedMessage          = "Patient added"
	PatientFoundMessage          = "Patient found"
	PatientSearchSuccessMessage  = "Patient search completed"
	PatientSelectedMessage       = "Patient selected"
	NoteAddedMessage             = "Note added"
	DenialListSuccessMessage     = "Denials retrieved"
	DenialRenderSuccessMessage   = "Denial report rendered"
)
