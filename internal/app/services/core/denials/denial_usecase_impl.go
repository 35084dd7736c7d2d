package denials

import (
	"context"
	"fmt"
	"strings"
	"time"

	"denials-tracker-service/internal/app/models"
	"denials-tracker-service/internal/app/services/core/notes"
	"denials-tracker-service/internal/pkg/constvars"
	"denials-tracker-service/internal/pkg/dto/requests"
	"denials-tracker-service/internal/pkg/dto/responses"
	"denials-tracker-service/internal/pkg/exceptions"
	"denials-tracker-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type denialUsecase struct {
	DenialRepository DenialRepository
	NoteRepository   notes.NoteRepository
	Log              *zap.Logger
}

func NewDenialUsecase(
	denialMongoRepository DenialRepository,
	noteMongoRepository notes.NoteRepository,
	logger *zap.Logger,
) DenialUsecase {
	return &denialUsecase{
		DenialRepository: denialMongoRepository,
		NoteRepository:   noteMongoRepository,
		Log:              logger,
	}
}

// Upsert records a submission against the denial keyed by (patient, date of
// service), creating the record when absent. A note is appended on every
// call; bill amount, status and paid amount are overwritten, except that a
// blank bill amount keeps the prior value on an existing record.
func (uc *denialUsecase) Upsert(ctx context.Context, patientID string, request *requests.UpsertDenial, user string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("denialUsecase.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingDateOfServiceKey, request.DateOfService),
	)

	if request.DateOfService == "" {
		return "", exceptions.ErrMissingDateOfService()
	}

	paidAmount := 0.00
	if request.PaidAmount != "" {
		parsed, err := utils.ParseAmount(request.PaidAmount)
		if err != nil {
			return "", exceptions.ErrInvalidAmount(err)
		}
		paidAmount = parsed
	}

	dateOfService, err := utils.ParseFlexibleDate(request.DateOfService)
	if err != nil {
		return "", exceptions.ErrInvalidDateFormat(err)
	}

	patientObjectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return "", exceptions.ErrMongoDBNotObjectID(err)
	}

	existing, err := uc.DenialRepository.FindByPatientAndDate(ctx, patientObjectID, dateOfService)
	if err != nil {
		return "", err
	}

	billAmount := 0.00
	if request.BillAmount == "" {
		if existing != nil {
			billAmount = existing.BillAmount
		}
	} else {
		billAmount, err = utils.ParseAmount(request.BillAmount)
		if err != nil {
			return "", exceptions.ErrInvalidAmount(err)
		}
	}

	if user == "" {
		user = constvars.SessionGuestUser
	}
	noteID, err := uc.NoteRepository.Insert(ctx, &models.Note{
		InputDate: time.Now(),
		InputUser: user,
		Body:      request.Note,
	})
	if err != nil {
		return "", err
	}

	err = uc.DenialRepository.Upsert(ctx, patientObjectID, dateOfService, bson.M{
		"bill_amt": billAmount,
		"status":   request.Status,
		"paid_amt": paidAmount,
	}, noteID)
	if err != nil {
		return "", err
	}

	uc.Log.Info("denialUsecase.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return constvars.NoteAddedMessage, nil
}

func (uc *denialUsecase) ListForPatient(ctx context.Context, patientID string) ([]responses.DenialRow, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("denialUsecase.ListForPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patientObjectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	denials, err := uc.DenialRepository.FindByPatientID(ctx, patientObjectID)
	if err != nil {
		return nil, err
	}

	rows := make([]responses.DenialRow, len(denials))
	for i, denial := range denials {
		noteList, err := uc.NoteRepository.FindByIDs(ctx, denial.NoteIDs)
		if err != nil {
			return nil, err
		}

		lines := make([]responses.NoteLine, len(noteList))
		for j, note := range noteList {
			lines[j] = responses.NoteLine{
				InputDate: utils.FormatDateShort(note.InputDate),
				InputUser: note.InputUser,
				Note:      note.Body,
			}
		}

		rows[i] = responses.DenialRow{
			DateOfService: utils.FormatDate(denial.DateOfService),
			BillAmount:    utils.FormatAmount(denial.BillAmount),
			PaidAmount:    utils.FormatAmount(denial.PaidAmount),
			Status:        denial.Status,
			Notes:         lines,
		}
	}

	uc.Log.Info("denialUsecase.ListForPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDenialsCountKey, len(rows)),
	)
	return rows, nil
}

// Render produces the display-ready denial history: one table row per denial
// (newest date of service first), each carrying its notes newest-first.
func (uc *denialUsecase) Render(ctx context.Context, patientID string) (*responses.RenderedDenials, error) {
	rows, err := uc.ListForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	var builder strings.Builder
	builder.WriteString("<table style='width: 100%'><tr><th style='width:10%'>Date of Service</th><th style='width:10%'>Bill Amount</th><th style='width:10%'>Status</th><th style='width:70%'>Notes</th></tr>")
	for _, row := range rows {
		builder.WriteString(fmt.Sprintf("<tr valign='top'><td>%s</td><td>%s</td><td>%s</td>", row.DateOfService, row.BillAmount, row.Status))
		builder.WriteString("<td><ul>")
		for _, line := range row.Notes {
			builder.WriteString(fmt.Sprintf("<li>(%s) <b>%s</b>: %s</li>", line.InputDate, line.InputUser, line.Note))
		}
		builder.WriteString("</ul></td></tr>")
	}
	builder.WriteString("</table>")

	return &responses.RenderedDenials{HTML: builder.String()}, nil
}
