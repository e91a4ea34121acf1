package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

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

type AuthController struct {
	Log               *zap.Logger
	AuthUsecase       contracts.AuthUsecase
	PreferenceUsecase contracts.PreferenceUsecase
	Translator        contracts.Translator
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(
	logger *zap.Logger,
	authUsecase contracts.AuthUsecase,
	preferenceUsecase contracts.PreferenceUsecase,
	translator contracts.Translator,
) *AuthController {
	onceAuthController.Do(func() {
		authControllerInstance = &AuthController{
			Log:               logger,
			AuthUsecase:       authUsecase,
			PreferenceUsecase: preferenceUsecase,
			Translator:        translator,
		}
	})
	return authControllerInstance
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("AuthController.Login requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Login)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("AuthController.Login error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("AuthController.Login validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	result, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Login error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if result.Pending {
		ctrl.Log.Info("AuthController.Login account pending",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildSuccessResponse(w, constvars.StatusOK,
			ctrl.Translator.Translate(constvars.LanguageEnglish, "accountPending.error"),
			responses.Login{Pending: true},
		)
		return
	}

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildRedirectResponse(w, constvars.StatusOK, constvars.LoginSuccess, constvars.DashboardPath, responses.Login{
		Token: result.Token,
		User:  result.User,
	})
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("AuthController.Register requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AuthController.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.Register)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("AuthController.Register error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("AuthController.Register validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	if err := ctrl.AuthUsecase.Register(ctx, request); err != nil {
		ctrl.Log.Error("AuthController.Register error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	// Registration never signs the caller in; the client lands on the
	// login screen with the pending notice.
	utils.BuildRedirectResponse(w, constvars.StatusCreated, constvars.RegisterSuccess, constvars.LoginPath, responses.Register{
		Pending: true,
	})
}

func (ctrl *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("AuthController.ForgotPassword requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AuthController.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.ForgotPassword)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("AuthController.ForgotPassword error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("AuthController.ForgotPassword validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	if err := ctrl.AuthUsecase.ForgotPassword(ctx, request); err != nil {
		ctrl.Log.Error("AuthController.ForgotPassword error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.ForgotPassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PasswordResetSuccess, nil)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("AuthController.Logout requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, session); err != nil {
		ctrl.Log.Error("AuthController.Logout error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildRedirectResponse(w, constvars.StatusOK, constvars.LogoutSuccess, constvars.LoginPath, nil)
}

// Resume restores a browser session after a reload: it revalidates the
// stored token upstream and returns the refreshed profile together with the
// UI preferences the client must apply before first paint.
func (ctrl *AuthController) Resume(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("AuthController.Resume requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AuthController.Resume called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID, ok := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if !ok || sessionID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	session, err := ctrl.AuthUsecase.Resume(ctx, sessionID)
	if err != nil {
		ctrl.Log.Error("AuthController.Resume error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	language := ctrl.PreferenceUsecase.Language(session)
	ctrl.Log.Info("AuthController.Resume succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionResumedSuccess, responses.Profile{
		User:      session.User,
		Language:  language,
		Direction: ctrl.Translator.Direction(language),
		Theme:     ctrl.PreferenceUsecase.Theme(session),
	})
}

func (ctrl *AuthController) GetProfile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("AuthController.GetProfile requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	language := ctrl.PreferenceUsecase.Language(session)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, responses.Profile{
		User:      session.User,
		Language:  language,
		Direction: ctrl.Translator.Direction(language),
		Theme:     ctrl.PreferenceUsecase.Theme(session),
	})
}

func (ctrl *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("AuthController.UpdateProfile requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AuthController.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	request := new(requests.UpdateProfile)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("AuthController.UpdateProfile error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("AuthController.UpdateProfile validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	user, err := ctrl.AuthUsecase.UpdateProfile(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("AuthController.UpdateProfile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	// A nil user with no error means the upstream update did not go
	// through; the client keeps its current profile.
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdateSuccess, user)
}

func (ctrl *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("AuthController.ChangePassword requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AuthController.ChangePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	request := new(requests.ChangePassword)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("AuthController.ChangePassword error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("AuthController.ChangePassword validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	if err := ctrl.AuthUsecase.ChangePassword(ctx, session, request); err != nil {
		ctrl.Log.Error("AuthController.ChangePassword error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.ChangePassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PasswordChangedSuccess, nil)
}
