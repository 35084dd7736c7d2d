package patients

import (
	"context"
	"errors"
	"testing"
	"time"

	"denials-tracker-service/internal/app/models"
	"denials-tracker-service/internal/pkg/dto/requests"
	"denials-tracker-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindByFilter(ctx context.Context, filter bson.M) ([]models.Patient, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindOneByFilter(ctx context.Context, filter bson.M) (*models.Patient, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Insert(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func TestSearchFoldsOnlySuppliedCriteria(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, nil, zap.NewNop())

	repo.On("FindByFilter", mock.Anything, bson.M{"last_name": "SMITH"}).
		Return([]models.Patient{}, nil).Once()

	_, err := uc.Search(context.Background(), &requests.SearchPatient{LastName: "smith"}, "")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSearchEmptyCriteriaMatchesAll(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, nil, zap.NewNop())

	repo.On("FindByFilter", mock.Anything, bson.M{}).
		Return([]models.Patient{}, nil).Once()

	_, err := uc.Search(context.Background(), &requests.SearchPatient{}, "")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestSearchSortsByDisplayLabel(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, nil, zap.NewNop())

	dob := time.Date(1980, time.January, 15, 0, 0, 0, 0, time.UTC)
	repo.On("FindByFilter", mock.Anything, mock.Anything).Return([]models.Patient{
		{ID: primitive.NewObjectID(), LastName: "ZIMMER", FirstName: "ANNA", DateOfBirth: dob},
		{ID: primitive.NewObjectID(), LastName: "ADAMS", FirstName: "BEN", DateOfBirth: dob},
	}, nil).Once()

	options, err := uc.Search(context.Background(), &requests.SearchPatient{}, "")
	assert.NoError(t, err)
	assert.Len(t, options, 2)
	assert.Equal(t, "ADAMS, BEN (01/15/1980)", options[0].Label)
	assert.Equal(t, "ZIMMER, ANNA (01/15/1980)", options[1].Label)
}

func TestSearchInvalidDateOfBirth(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, nil, zap.NewNop())

	_, err := uc.Search(context.Background(), &requests.SearchPatient{DateOfBirth: "not-a-date"}, "")
	assert.Error(t, err)

	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, 400, customErr.StatusCode)
	repo.AssertNotCalled(t, "FindByFilter", mock.Anything, mock.Anything)
}

func TestResolveExactSplitsCombinedName(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, nil, zap.NewNop())

	dob := time.Date(1980, time.January, 15, 0, 0, 0, 0, time.UTC)
	patient := &models.Patient{ID: primitive.NewObjectID(), LastName: "SMITH", FirstName: "JOHN", DateOfBirth: dob}
	repo.On("FindOneByFilter", mock.Anything, bson.M{"last_name": "SMITH", "first_name": "JOHN"}).
		Return(patient, nil).Once()

	option, err := uc.ResolveExact(context.Background(), &requests.ResolvePatient{Name: "Smith, John"})
	assert.NoError(t, err)
	assert.Equal(t, "SMITH, JOHN (01/15/1980)", option.Label)
	assert.Equal(t, patient.ID.Hex(), option.PatientID)
	repo.AssertExpectations(t)
}

func TestResolveExactNotFound(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, nil, zap.NewNop())

	repo.On("FindOneByFilter", mock.Anything, mock.Anything).Return(nil, nil).Once()

	_, err := uc.ResolveExact(context.Background(), &requests.ResolvePatient{Name: "Nobody, Here"})
	assert.Error(t, err)

	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, 404, customErr.StatusCode)
}

func TestCreateRejectsDuplicate(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, nil, zap.NewNop())

	dob := time.Date(1980, time.January, 15, 0, 0, 0, 0, time.UTC)
	existing := &models.Patient{ID: primitive.NewObjectID(), LastName: "SMITH", FirstName: "JOHN", DateOfBirth: dob}
	repo.On("FindOneByFilter", mock.Anything, bson.M{"last_name": "SMITH", "first_name": "JOHN", "dob": dob}).
		Return(existing, nil).Once()

	_, err := uc.Create(context.Background(), &requests.CreatePatient{
		LastName:    "smith",
		FirstName:   "john",
		DateOfBirth: "01/15/1980",
	})
	assert.Error(t, err)

	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, "Patient already exists", customErr.ClientMessage)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateInsertsUppercased(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, nil, zap.NewNop())

	repo.On("FindOneByFilter", mock.Anything, mock.Anything).Return(nil, nil).Once()
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(p *models.Patient) bool {
		return p.LastName == "SMITH" && p.FirstName == "JOHN"
	})).Return("generated-id", nil).Once()

	result, err := uc.Create(context.Background(), &requests.CreatePatient{
		LastName:    "smith",
		FirstName:   "john",
		DateOfBirth: "01/15/1980",
	})
	assert.NoError(t, err)
	assert.Equal(t, "generated-id", result.PatientID)
	repo.AssertExpectations(t)
}

func TestCreateRejectsLooseDateOfBirth(t *testing.T) {
	repo := new(MockPatientRepository)
	uc := NewPatientUsecase(repo, nil, zap.NewNop())

	// Dates of birth are strictly MM/DD/YYYY; the flexible formats accepted
	// elsewhere are not enough here.
	_, err := uc.Create(context.Background(), &requests.CreatePatient{
		LastName:    "smith",
		FirstName:   "john",
		DateOfBirth: "1/15/80",
	})
	assert.Error(t, err)
	repo.AssertNotCalled(t, "FindOneByFilter", mock.Anything, mock.Anything)
}
