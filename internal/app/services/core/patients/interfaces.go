package patients

import (
	"context"

	"denials-tracker-service/internal/app/models"
	"denials-tracker-service/internal/pkg/dto/requests"
	"denials-tracker-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson"
)

type PatientRepository interface {
	FindByFilter(ctx context.Context, filter bson.M) ([]models.Patient, error)
	FindOneByFilter(ctx context.Context, filter bson.M) (*models.Patient, error)
	Insert(ctx context.Context, patient *models.Patient) (string, error)
}

type PatientUsecase interface {
	// Search resolves patients by partial criteria; sessionID may be empty,
	// in which case the result list is not cached on any session.
	Search(ctx context.Context, request *requests.SearchPatient, sessionID string) ([]responses.PatientOption, error)
	ResolveExact(ctx context.Context, request *requests.ResolvePatient) (*responses.PatientOption, error)
	Create(ctx context.Context, request *requests.CreatePatient) (*responses.CreatePatient, error)
}
