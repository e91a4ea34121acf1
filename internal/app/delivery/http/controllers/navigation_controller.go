package controllers

import (
	"net/http"
	"sync"

	"ogec-service/internal/app/contracts"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/exceptions"
	"ogec-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type NavigationController struct {
	Log               *zap.Logger
	NavigationUsecase contracts.NavigationUsecase
	PreferenceUsecase contracts.PreferenceUsecase
}

var (
	navigationControllerInstance *NavigationController
	onceNavigationController     sync.Once
)

func NewNavigationController(
	logger *zap.Logger,
	navigationUsecase contracts.NavigationUsecase,
	preferenceUsecase contracts.PreferenceUsecase,
) *NavigationController {
	onceNavigationController.Do(func() {
		navigationControllerInstance = &NavigationController{
			Log:               logger,
			NavigationUsecase: navigationUsecase,
			PreferenceUsecase: preferenceUsecase,
		}
	})
	return navigationControllerInstance
}

// GetMenu returns the sidebar entries for the session's role, labels
// resolved in the session's language.
func (ctrl *NavigationController) GetMenu(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("NavigationController.GetMenu requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil || session.User == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	language := ctrl.PreferenceUsecase.Language(session)
	menu := ctrl.NavigationUsecase.MenuForRole(session.User.Role, language)

	ctrl.Log.Info("NavigationController.GetMenu succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, session.User.Role),
		zap.Int("items", len(menu)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.NavigationGetSuccess, menu)
}
