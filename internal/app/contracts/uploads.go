package contracts

import (
	"context"
	"io"
)

type UploadUsecase interface {
	// UploadImage stores an image object and returns its public URL. The
	// caller hands the URL to the upstream on the follow-up update.
	UploadImage(ctx context.Context, owner, fileName, contentType string, size int64, reader io.Reader) (string, error)
}
