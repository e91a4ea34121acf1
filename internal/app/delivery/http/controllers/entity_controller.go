package controllers

import (
	"io"
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

// EntityController proxies one upstream CRUD resource. The same controller
// instance serves every gated resource; the resource name is fixed per
// route at mount time.
type EntityController struct {
	Log           *zap.Logger
	EntityUsecase contracts.EntityUsecase
}

var (
	entityControllerInstance *EntityController
	onceEntityController     sync.Once
)

func NewEntityController(logger *zap.Logger, entityUsecase contracts.EntityUsecase) *EntityController {
	onceEntityController.Do(func() {
		entityControllerInstance = &EntityController{
			Log:           logger,
			EntityUsecase: entityUsecase,
		}
	})
	return entityControllerInstance
}

func (ctrl *EntityController) List(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID, session, ok := ctrl.requestContext(w, r, "List")
		if !ok {
			return
		}

		data, err := ctrl.EntityUsecase.List(r.Context(), session, resource)
		if err != nil {
			ctrl.Log.Error("EntityController.List error from usecase",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, resource),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, data)
	}
}

func (ctrl *EntityController) Get(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID, session, ok := ctrl.requestContext(w, r, "Get")
		if !ok {
			return
		}

		id, err := ctrl.pathID(r)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		data, err := ctrl.EntityUsecase.Get(r.Context(), session, resource, id)
		if err != nil {
			ctrl.Log.Error("EntityController.Get error from usecase",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, resource),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, data)
	}
}

func (ctrl *EntityController) Create(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID, session, ok := ctrl.requestContext(w, r, "Create")
		if !ok {
			return
		}

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}

		data, err := ctrl.EntityUsecase.Create(r.Context(), session, resource, payload)
		if err != nil {
			ctrl.Log.Error("EntityController.Create error from usecase",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, resource),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseSuccess, data)
	}
}

func (ctrl *EntityController) Update(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID, session, ok := ctrl.requestContext(w, r, "Update")
		if !ok {
			return
		}

		id, err := ctrl.pathID(r)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}

		data, err := ctrl.EntityUsecase.Update(r.Context(), session, resource, id, payload)
		if err != nil {
			ctrl.Log.Error("EntityController.Update error from usecase",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, resource),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, data)
	}
}

func (ctrl *EntityController) Delete(resource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requestID, session, ok := ctrl.requestContext(w, r, "Delete")
		if !ok {
			return
		}

		id, err := ctrl.pathID(r)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		if err := ctrl.EntityUsecase.Delete(r.Context(), session, resource, id); err != nil {
			ctrl.Log.Error("EntityController.Delete error from usecase",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, resource),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, nil)
	}
}

func (ctrl *EntityController) requestContext(w http.ResponseWriter, r *http.Request, method string) (string, *models.Session, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("EntityController." + method + " requestID not found in context")
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

func (ctrl *EntityController) pathID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, constvars.URLParamID)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, exceptions.ErrURLParamIDValidation(err, constvars.URLParamID)
	}
	return id, nil
}
