package controllers

import (
	"net/http"
	"sync"

	"ogec-service/internal/app/contracts"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/dto/requests"
	"ogec-service/internal/pkg/dto/responses"
	"ogec-service/internal/pkg/exceptions"
	"ogec-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PreferenceController struct {
	Log               *zap.Logger
	PreferenceUsecase contracts.PreferenceUsecase
}

var (
	preferenceControllerInstance *PreferenceController
	oncePreferenceController     sync.Once
)

func NewPreferenceController(logger *zap.Logger, preferenceUsecase contracts.PreferenceUsecase) *PreferenceController {
	oncePreferenceController.Do(func() {
		preferenceControllerInstance = &PreferenceController{
			Log:               logger,
			PreferenceUsecase: preferenceUsecase,
		}
	})
	return preferenceControllerInstance
}

func (ctrl *PreferenceController) SetLanguage(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PreferenceController.SetLanguage requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	request := new(requests.SetLanguage)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("PreferenceController.SetLanguage error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	direction, err := ctrl.PreferenceUsecase.SetLanguage(r.Context(), session, request.Language)
	if err != nil {
		ctrl.Log.Error("PreferenceController.SetLanguage error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PreferenceController.SetLanguage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLanguageKey, request.Language),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LanguageUpdatedSuccess, responses.LanguagePreference{
		Language:  request.Language,
		Direction: direction,
	})
}

func (ctrl *PreferenceController) SetTheme(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PreferenceController.SetTheme requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	request := new(requests.SetTheme)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("PreferenceController.SetTheme error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	theme, err := ctrl.PreferenceUsecase.SetTheme(r.Context(), session, request.Theme, request.PlatformPreference)
	if err != nil {
		ctrl.Log.Error("PreferenceController.SetTheme error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PreferenceController.SetTheme succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("theme", theme),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ThemeUpdatedSuccess, responses.ThemePreference{
		Theme: theme,
	})
}
