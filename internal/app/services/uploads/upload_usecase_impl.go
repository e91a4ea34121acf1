package uploads

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"ogec-service/internal/app/config"
	"ogec-service/internal/app/contracts"
	"ogec-service/internal/pkg/exceptions"
	"ogec-service/internal/pkg/utils"

	"io"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type uploadUsecase struct {
	minioClient  *minio.Client
	driverConfig *config.DriverConfig
	log          *zap.Logger
}

var (
	uploadUsecaseInstance contracts.UploadUsecase
	onceUploadUsecase     sync.Once
)

func NewUploadUsecase(minioClient *minio.Client, driverConfig *config.DriverConfig, log *zap.Logger) contracts.UploadUsecase {
	onceUploadUsecase.Do(func() {
		uploadUsecaseInstance = &uploadUsecase{
			minioClient:  minioClient,
			driverConfig: driverConfig,
			log:          log,
		}
	})
	return uploadUsecaseInstance
}

func (uc *uploadUsecase) UploadImage(ctx context.Context, owner, fileName, contentType string, size int64, reader io.Reader) (string, error) {
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return "", exceptions.ErrImageValidation(fmt.Errorf("unsupported content type %s", contentType))
	}

	bucketName := uc.driverConfig.Minio.BucketName
	objectName := utils.GenerateFileName("img", owner, filepath.Ext(fileName))

	_, err := uc.minioClient.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioUploadObject(err, bucketName)
	}

	publicURL := fmt.Sprintf("%s/%s/%s", strings.TrimRight(uc.driverConfig.Minio.PublicURL, "/"), bucketName, objectName)
	uc.log.Info("UploadUsecase.UploadImage succeeded",
		zap.String("object_name", objectName),
		zap.String("bucket_name", bucketName),
	)
	return publicURL, nil
}
