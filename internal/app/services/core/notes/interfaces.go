package notes

import (
	"context"

	"denials-tracker-service/internal/app/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NoteRepository is append-only: notes are never mutated or removed once
// created.
type NoteRepository interface {
	Insert(ctx context.Context, note *models.Note) (primitive.ObjectID, error)
	// FindByIDs resolves notes sorted by creation timestamp descending, the
	// canonical display order.
	FindByIDs(ctx context.Context, noteIDs []primitive.ObjectID) ([]models.Note, error)
}
