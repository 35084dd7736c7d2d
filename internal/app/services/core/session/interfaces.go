package session

import (
	"context"

	"denials-tracker-service/internal/app/models"
)

// SessionService owns the interaction-scoped state: user identity, selected
// patient and cached search results. All transitions are unconditional
// overwrites.
type SessionService interface {
	Create(ctx context.Context, user string) (*models.Session, error)
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	SetUser(ctx context.Context, sessionID, user string) error
	SetSelectedPatient(ctx context.Context, sessionID, patientID string) error
	SetSearchResults(ctx context.Context, sessionID string, options []models.PatientOption) error
	Delete(ctx context.Context, sessionID string) error
}
