package denials

import (
	"context"
	"errors"
	"strings"
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

type MockDenialRepository struct {
	mock.Mock
}

func (m *MockDenialRepository) FindByPatientID(ctx context.Context, patientID primitive.ObjectID) ([]models.Denial, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Denial), args.Error(1)
}

func (m *MockDenialRepository) FindByPatientAndDate(ctx context.Context, patientID primitive.ObjectID, dateOfService time.Time) (*models.Denial, error) {
	args := m.Called(ctx, patientID, dateOfService)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Denial), args.Error(1)
}

func (m *MockDenialRepository) Upsert(ctx context.Context, patientID primitive.ObjectID, dateOfService time.Time, fields bson.M, noteID primitive.ObjectID) error {
	args := m.Called(ctx, patientID, dateOfService, fields, noteID)
	return args.Error(0)
}

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Insert(ctx context.Context, note *models.Note) (primitive.ObjectID, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockNoteRepository) FindByIDs(ctx context.Context, noteIDs []primitive.ObjectID) ([]models.Note, error) {
	args := m.Called(ctx, noteIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func TestUpsertMissingDateOfService(t *testing.T) {
	denialRepo := new(MockDenialRepository)
	noteRepo := new(MockNoteRepository)
	uc := NewDenialUsecase(denialRepo, noteRepo, zap.NewNop())

	_, err := uc.Upsert(context.Background(), primitive.NewObjectID().Hex(), &requests.UpsertDenial{
		Status: "Denied",
		Note:   "first contact",
	}, "alice")
	assert.Error(t, err)

	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, "Date of Service cannot be blank", customErr.ClientMessage)
	noteRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUpsertInvalidPaidAmount(t *testing.T) {
	denialRepo := new(MockDenialRepository)
	noteRepo := new(MockNoteRepository)
	uc := NewDenialUsecase(denialRepo, noteRepo, zap.NewNop())

	_, err := uc.Upsert(context.Background(), primitive.NewObjectID().Hex(), &requests.UpsertDenial{
		DateOfService: "01/15/2024",
		PaidAmount:    "abc",
		Status:        "Paid",
	}, "alice")
	assert.Error(t, err)
	noteRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUpsertInvalidDateOfService(t *testing.T) {
	denialRepo := new(MockDenialRepository)
	noteRepo := new(MockNoteRepository)
	uc := NewDenialUsecase(denialRepo, noteRepo, zap.NewNop())

	_, err := uc.Upsert(context.Background(), primitive.NewObjectID().Hex(), &requests.UpsertDenial{
		DateOfService: "not-a-date",
		Status:        "Denied",
	}, "alice")
	assert.Error(t, err)

	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr))
	assert.Equal(t, "No valid date format found", customErr.ClientMessage)
}

func TestUpsertCreatesWhenAbsent(t *testing.T) {
	denialRepo := new(MockDenialRepository)
	noteRepo := new(MockNoteRepository)
	uc := NewDenialUsecase(denialRepo, noteRepo, zap.NewNop())

	patientID := primitive.NewObjectID()
	dos := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	noteID := primitive.NewObjectID()

	denialRepo.On("FindByPatientAndDate", mock.Anything, patientID, dos).Return(nil, nil).Once()
	noteRepo.On("Insert", mock.Anything, mock.MatchedBy(func(n *models.Note) bool {
		return n.InputUser == "alice" && n.Body == "initial denial"
	})).Return(noteID, nil).Once()
	denialRepo.On("Upsert", mock.Anything, patientID, dos, bson.M{
		"bill_amt": 250.00,
		"status":   "Denied",
		"paid_amt": 0.00,
	}, noteID).Return(nil).Once()

	message, err := uc.Upsert(context.Background(), patientID.Hex(), &requests.UpsertDenial{
		DateOfService: "1/15/24",
		BillAmount:    "250",
		Status:        "Denied",
		Note:          "initial denial",
	}, "alice")
	assert.NoError(t, err)
	assert.Equal(t, "Note added", message)
	denialRepo.AssertExpectations(t)
	noteRepo.AssertExpectations(t)
}

func TestUpsertBlankBillKeepsPriorValue(t *testing.T) {
	denialRepo := new(MockDenialRepository)
	noteRepo := new(MockNoteRepository)
	uc := NewDenialUsecase(denialRepo, noteRepo, zap.NewNop())

	patientID := primitive.NewObjectID()
	dos := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	noteID := primitive.NewObjectID()
	existing := &models.Denial{
		ID:            primitive.NewObjectID(),
		PatientID:     patientID,
		DateOfService: dos,
		BillAmount:    123.45,
		Status:        "Denied",
	}

	denialRepo.On("FindByPatientAndDate", mock.Anything, patientID, dos).Return(existing, nil).Once()
	noteRepo.On("Insert", mock.Anything, mock.Anything).Return(noteID, nil).Once()
	denialRepo.On("Upsert", mock.Anything, patientID, dos, bson.M{
		"bill_amt": 123.45,
		"status":   "Appealed",
		"paid_amt": 0.00,
	}, noteID).Return(nil).Once()

	_, err := uc.Upsert(context.Background(), patientID.Hex(), &requests.UpsertDenial{
		DateOfService: "01/15/2024",
		Status:        "Appealed",
		Note:          "appeal filed",
	}, "alice")
	assert.NoError(t, err)
	denialRepo.AssertExpectations(t)
}

func TestUpsertBlankUserAttributedToGuest(t *testing.T) {
	denialRepo := new(MockDenialRepository)
	noteRepo := new(MockNoteRepository)
	uc := NewDenialUsecase(denialRepo, noteRepo, zap.NewNop())

	patientID := primitive.NewObjectID()
	dos := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	noteID := primitive.NewObjectID()

	denialRepo.On("FindByPatientAndDate", mock.Anything, patientID, dos).Return(nil, nil).Once()
	noteRepo.On("Insert", mock.Anything, mock.MatchedBy(func(n *models.Note) bool {
		return n.InputUser == "Guest"
	})).Return(noteID, nil).Once()
	denialRepo.On("Upsert", mock.Anything, patientID, dos, mock.Anything, noteID).Return(nil).Once()

	_, err := uc.Upsert(context.Background(), patientID.Hex(), &requests.UpsertDenial{
		DateOfService: "01/15/2024",
		Status:        "Denied",
	}, "")
	assert.NoError(t, err)
	noteRepo.AssertExpectations(t)
}

func TestListForPatientResolvesNotesNewestFirst(t *testing.T) {
	denialRepo := new(MockDenialRepository)
	noteRepo := new(MockNoteRepository)
	uc := NewDenialUsecase(denialRepo, noteRepo, zap.NewNop())

	patientID := primitive.NewObjectID()
	firstNoteID := primitive.NewObjectID()
	secondNoteID := primitive.NewObjectID()
	denial := models.Denial{
		ID:            primitive.NewObjectID(),
		PatientID:     patientID,
		DateOfService: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		BillAmount:    250,
		Status:        "Appealed",
		NoteIDs:       []primitive.ObjectID{firstNoteID, secondNoteID},
	}

	denialRepo.On("FindByPatientID", mock.Anything, patientID).Return([]models.Denial{denial}, nil).Once()
	// Repository contract: notes come back sorted by input_date descending.
	noteRepo.On("FindByIDs", mock.Anything, denial.NoteIDs).Return([]models.Note{
		{ID: secondNoteID, InputDate: time.Date(2024, time.February, 2, 10, 0, 0, 0, time.UTC), InputUser: "bob", Body: "appeal filed"},
		{ID: firstNoteID, InputDate: time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC), InputUser: "alice", Body: "initial denial"},
	}, nil).Once()

	rows, err := uc.ListForPatient(context.Background(), patientID.Hex())
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "01/15/2024", rows[0].DateOfService)
	assert.Equal(t, "250.00", rows[0].BillAmount)
	assert.Len(t, rows[0].Notes, 2)
	assert.Equal(t, "appeal filed", rows[0].Notes[0].Note)
	assert.Equal(t, "initial denial", rows[0].Notes[1].Note)
}

func TestRenderOrdersRowsByDateOfServiceDescending(t *testing.T) {
	denialRepo := new(MockDenialRepository)
	noteRepo := new(MockNoteRepository)
	uc := NewDenialUsecase(denialRepo, noteRepo, zap.NewNop())

	patientID := primitive.NewObjectID()
	february := models.Denial{
		PatientID:     patientID,
		DateOfService: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		BillAmount:    300,
		Status:        "Denied",
	}
	january := models.Denial{
		PatientID:     patientID,
		DateOfService: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		BillAmount:    100,
		Status:        "Paid",
	}

	denialRepo.On("FindByPatientID", mock.Anything, patientID).Return([]models.Denial{february, january}, nil).Once()
	noteRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.Note{}, nil).Twice()

	rendered, err := uc.Render(context.Background(), patientID.Hex())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(rendered.HTML, "<table"))
	februaryIndex := strings.Index(rendered.HTML, "02/01/2024")
	januaryIndex := strings.Index(rendered.HTML, "01/01/2024")
	assert.True(t, februaryIndex >= 0 && januaryIndex >= 0)
	assert.Less(t, februaryIndex, januaryIndex)
}

func TestRenderIsIdempotent(t *testing.T) {
	denialRepo := new(MockDenialRepository)
	noteRepo := new(MockNoteRepository)
	uc := NewDenialUsecase(denialRepo, noteRepo, zap.NewNop())

	patientID := primitive.NewObjectID()
	denial := models.Denial{
		PatientID:     patientID,
		DateOfService: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
		BillAmount:    250,
		Status:        "Denied",
	}

	denialRepo.On("FindByPatientID", mock.Anything, patientID).Return([]models.Denial{denial}, nil).Twice()
	noteRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]models.Note{}, nil).Twice()

	first, err := uc.Render(context.Background(), patientID.Hex())
	assert.NoError(t, err)
	second, err := uc.Render(context.Background(), patientID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, first.HTML, second.HTML)
}
