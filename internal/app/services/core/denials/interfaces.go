package denials

import (
	"context"
	"time"

	"denials-tracker-service/internal/app/models"
	"denials-tracker-service/internal/pkg/dto/requests"
	"denials-tracker-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DenialRepository interface {
	// FindByPatientID returns denials ordered by date of service descending.
	FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Denial, error)
	FindByPatientAndDate(ctx context.Context, patientID primitive.ObjectID, dateOfService time.Time) (*models.Denial, error)
	// Upsert applies the field set and appends the note id on the record
	// keyed by (patientID, dateOfService), creating it when absent.
	Upsert(ctx context.Context, patientID primitive.ObjectID, dateOfService time.Time, fields bson.M, noteID primitive.ObjectID) error
}

type DenialUsecase interface {
	Upsert(ctx context.Context, patientID string, request *requests.UpsertDenial, user string) (string, error)
	ListForPatient(ctx context.Context, patientID string) ([]responses.DenialRow, error)
	Render(ctx context.Context, patientID string) (*responses.RenderedDenials, error)
}
