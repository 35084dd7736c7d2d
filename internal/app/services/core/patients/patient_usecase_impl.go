package patients

import (
	"context"
	"sort"
	"strings"

	"denials-tracker-service/internal/app/models"
	"denials-tracker-service/internal/app/services/core/session"
	"denials-tracker-service/internal/pkg/constvars"
	"denials-tracker-service/internal/pkg/dto/requests"
	"denials-tracker-service/internal/pkg/dto/responses"
	"denials-tracker-service/internal/pkg/exceptions"
	"denials-tracker-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository PatientRepository
	SessionService    session.SessionService
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientMongoRepository PatientRepository,
	sessionService session.SessionService,
	logger *zap.Logger,
) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientMongoRepository,
		SessionService:    sessionService,
		Log:               logger,
	}
}

func (uc *patientUsecase) Search(ctx context.Context, request *requests.SearchPatient, sessionID string) ([]responses.PatientOption, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	filter, err := buildPatientFilter(request.LastName, request.FirstName, request.DateOfBirth)
	if err != nil {
		return nil, err
	}

	patients, err := uc.PatientRepository.FindByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	options := make([]responses.PatientOption, len(patients))
	for i, patient := range patients {
		options[i] = responses.PatientOption{
			Label:     patient.DisplayLabel(),
			PatientID: patient.ID.Hex(),
		}
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i].Label < options[j].Label
	})

	if sessionID != "" {
		cached := make([]models.PatientOption, len(options))
		for i, option := range options {
			cached[i] = models.PatientOption{Label: option.Label, PatientID: option.PatientID}
		}
		err = uc.SessionService.SetSearchResults(ctx, sessionID, cached)
		if err != nil {
			return nil, err
		}
	}

	uc.Log.Info("patientUsecase.Search succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientsCountKey, len(options)),
	)
	return options, nil
}

func (uc *patientUsecase) ResolveExact(ctx context.Context, request *requests.ResolvePatient) (*responses.PatientOption, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.ResolveExact called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	lastName, firstName := splitCombinedName(request.Name)
	filter, err := buildPatientFilter(lastName, firstName, request.DateOfBirth)
	if err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindOneByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	return &responses.PatientOption{
		Label:     patient.DisplayLabel(),
		PatientID: patient.ID.Hex(),
	}, nil
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*responses.CreatePatient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	dateOfBirth, err := utils.ParseStrictDate(request.DateOfBirth)
	if err != nil {
		return nil, exceptions.ErrInvalidDateOfBirth(err)
	}

	patient := &models.Patient{
		LastName:    strings.ToUpper(request.LastName),
		FirstName:   strings.ToUpper(request.FirstName),
		DateOfBirth: dateOfBirth,
	}

	// Check-then-insert; racing writers are accepted here, the unique index
	// created by the seed tool closes the window at the store.
	existing, err := uc.PatientRepository.FindOneByFilter(ctx, bson.M{
		"last_name":  patient.LastName,
		"first_name": patient.FirstName,
		"dob":        patient.DateOfBirth,
	})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPatientAlreadyExists()
	}

	patientID, err := uc.PatientRepository.Insert(ctx, patient)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &responses.CreatePatient{PatientID: patientID}, nil
}

// buildPatientFilter folds only the criteria that were actually supplied into
// the store filter; all-empty input yields the match-everything filter.
func buildPatientFilter(lastName, firstName, dateOfBirth string) (bson.M, error) {
	filter := bson.M{}
	for field, value := range map[string]string{
		"last_name":  strings.ToUpper(strings.TrimSpace(lastName)),
		"first_name": strings.ToUpper(strings.TrimSpace(firstName)),
	} {
		if value != "" {
			filter[field] = value
		}
	}
	if dateOfBirth != "" {
		parsed, err := utils.ParseFlexibleDate(dateOfBirth)
		if err != nil {
			return nil, exceptions.ErrInvalidDateFormat(err)
		}
		filter["dob"] = parsed
	}
	return filter, nil
}

// splitCombinedName breaks a "Last, First" lookup string into its parts; a
// string without a comma is treated as a last name only.
func splitCombinedName(name string) (string, string) {
	parts := strings.SplitN(name, ",", 2)
	lastName := strings.TrimSpace(parts[0])
	firstName := ""
	if len(parts) == 2 {
		firstName = strings.TrimSpace(parts[1])
	}
	return lastName, firstName
}
