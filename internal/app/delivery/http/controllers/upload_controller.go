package controllers

import (
	"net/http"
	"strconv"
	"sync"

	"ogec-service/internal/app/config"
	"ogec-service/internal/app/contracts"
	"ogec-service/internal/app/models"
	"ogec-service/internal/pkg/constvars"
	"ogec-service/internal/pkg/dto/responses"
	"ogec-service/internal/pkg/exceptions"
	"ogec-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type UploadController struct {
	Log            *zap.Logger
	UploadUsecase  contracts.UploadUsecase
	InternalConfig *config.InternalConfig
}

var (
	uploadControllerInstance *UploadController
	onceUploadController     sync.Once
)

func NewUploadController(logger *zap.Logger, uploadUsecase contracts.UploadUsecase, internalConfig *config.InternalConfig) *UploadController {
	onceUploadController.Do(func() {
		uploadControllerInstance = &UploadController{
			Log:            logger,
			UploadUsecase:  uploadUsecase,
			InternalConfig: internalConfig,
		}
	})
	return uploadControllerInstance
}

// UploadImage accepts a multipart form with an "image" part and answers
// with the stored object's public URL.
func (ctrl *UploadController) UploadImage(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("UploadController.UploadImage requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("UploadController.UploadImage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok || session == nil || session.User == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSession(nil))
		return
	}

	maxSize := ctrl.InternalConfig.App.UploadMaxSizeInMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	url, err := ctrl.UploadUsecase.UploadImage(
		r.Context(),
		strconv.Itoa(session.User.ID),
		header.Filename,
		header.Header.Get(constvars.HeaderContentType),
		header.Size,
		file,
	)
	if err != nil {
		ctrl.Log.Error("UploadController.UploadImage error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("UploadController.UploadImage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadImageSuccess, responses.Upload{URL: url})
}
