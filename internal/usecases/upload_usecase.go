package usecases

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	domainerrors "luyona.backend/internal/domain/errors"
	"luyona.backend/internal/infrastructure/media"
	"luyona.backend/pkg/logger"
)

// MaxUploadSize caps accepted image payloads at 20MB
const MaxUploadSize = 20 << 20

// UploadUsecase validates image uploads and relays them to the media host
type UploadUsecase struct {
	store media.Store
	now   func() time.Time
}

// NewUploadUsecase creates a new upload usecase
func NewUploadUsecase(store media.Store) *UploadUsecase {
	return &UploadUsecase{
		store: store,
		now:   time.Now,
	}
}

// Upload validates the file and relays it to the media host. Size and type
// are checked before any bytes leave the process; nothing is persisted here,
// the caller writes the returned URL into the profile in a follow-up update.
func (u *UploadUsecase) Upload(ctx context.Context, userID uuid.UUID, kind media.Kind, file io.Reader, size int64, contentType string) (*media.Result, error) {
	if size > MaxUploadSize {
		return nil, domainerrors.ErrPayloadTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domainerrors.ErrUnsupportedMedia
	}

	params := media.ParamsFor(kind, userID, u.now())
	params.ContentType = contentType

	result, err := u.store.Upload(ctx, file, params)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "image uploaded",
		zap.String("user_id", userID.String()),
		zap.String("kind", string(kind)),
		zap.String("public_id", result.PublicID),
	)
	return result, nil
}
