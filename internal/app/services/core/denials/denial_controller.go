package denials

import (
	"context"
	"net/http"
	"time"

	"denials-tracker-service/internal/app/models"
	"denials-tracker-service/internal/pkg/constvars"
	"denials-tracker-service/internal/pkg/dto/requests"
	"denials-tracker-service/internal/pkg/exceptions"
	"denials-tracker-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DenialController struct {
	Log           *zap.Logger
	DenialUsecase DenialUsecase
}

func NewDenialController(logger *zap.Logger, denialUsecase DenialUsecase) *DenialController {
	return &DenialController{
		Log:           logger,
		DenialUsecase: denialUsecase,
	}
}

func (ctrl *DenialController) Upsert(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "patientID"))
		return
	}

	request := new(requests.UpsertDenial)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidDenialStatus(err))
		return
	}

	// Submissions are attributed to the session user; callers without a
	// session write as Guest.
	user := constvars.SessionGuestUser
	if sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session); ok {
		user = sessionData.User
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	message, err := ctrl.DenialUsecase.Upsert(ctx, patientID, request, user)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, message, nil)
}

func (ctrl *DenialController) ListForPatient(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "patientID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DenialUsecase.ListForPatient(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DenialListSuccessMessage, result)
}

func (ctrl *DenialController) Render(w http.ResponseWriter, r *http.Request) {
	patientID := chi.URLParam(r, "patientID")
	if patientID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "patientID"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DenialUsecase.Render(ctx, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DenialRenderSuccessMessage, result)
}
