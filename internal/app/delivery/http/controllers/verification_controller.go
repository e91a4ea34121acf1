package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"ogec-service/internal/app/contracts"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/exceptions"
	"ogec-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// VerificationController serves the director's account-approval screen:
// listing inactive accounts, activating one, or removing one.
type VerificationController struct {
	Log           *zap.Logger
	EntityUsecase contracts.EntityUsecase
}

var (
	verificationControllerInstance *VerificationController
	onceVerificationController     sync.Once
)

func NewVerificationController(logger *zap.Logger, entityUsecase contracts.EntityUsecase) *VerificationController {
	onceVerificationController.Do(func() {
		verificationControllerInstance = &VerificationController{
			Log:           logger,
			EntityUsecase: entityUsecase,
		}
	})
	return verificationControllerInstance
}

func (ctrl *VerificationController) ListInactive(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestContext(w, r, "ListInactive")
	if !ok {
		return
	}

	data, err := ctrl.EntityUsecase.List(r.Context(), session, constvars.ResourceUsersInactive)
	if err != nil {
		ctrl.Log.Error("VerificationController.ListInactive error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, data)
}

func (ctrl *VerificationController) Activate(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestContext(w, r, "Activate")
	if !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, constvars.URLParamID))
	if err != nil || id <= 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	data, err := ctrl.EntityUsecase.Create(r.Context(), session, fmt.Sprintf(constvars.ResourceUserActivateFmt, id), nil)
	if err != nil {
		ctrl.Log.Error("VerificationController.Activate error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUserIDKey, id),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("VerificationController.Activate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, id),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, data)
}

func (ctrl *VerificationController) Remove(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.requestContext(w, r, "Remove")
	if !ok {
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, constvars.URLParamID))
	if err != nil || id <= 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID))
		return
	}

	if err := ctrl.EntityUsecase.Delete(r.Context(), session, constvars.ResourceUsers, id); err != nil {
		ctrl.Log.Error("VerificationController.Remove error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUserIDKey, id),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("VerificationController.Remove succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUserIDKey, id),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, nil)
}

func (ctrl *VerificationController) requestContext(w http.ResponseWriter, r *http.Request, method string) (string, *models.Session, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("VerificationController." + method + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", nil, false
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return "", nil, false
	}
	return requestID, session, true
}
