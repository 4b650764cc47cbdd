package service

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"

	"jobboard/internal/model"
	"jobboard/internal/ratelimit"
	"jobboard/internal/repository"
	"jobboard/internal/storage"
)

const (
	presignRateKey    = "presign"
	presignRateLimit  = 10
	presignRateWindow = time.Minute

	presignExpiry = 15 * time.Minute
)

// PresignInput describes an upcoming direct upload.
type PresignInput struct {
	Filename string `json:"filename"`
	Mime     string `json:"mime"`
	Size     int64  `json:"size,omitempty"`
	Purpose  string `json:"purpose,omitempty"`
}

// PresignResult carries the issued upload URL and the pre-registered
// media record's coordinates.
type PresignResult struct {
	UploadURL string `json:"upload_url"`
	MediaID   string `json:"media_id"`
	Path      string `json:"path"`
}

// MediaService issues presigned upload URLs backed by media records.
type MediaService interface {
	// PresignUpload registers a media record and returns a time-limited
	// upload URL. The record is deleted again if URL issuance fails.
	PresignUpload(ctx context.Context, clientIP string, in PresignInput) (*PresignResult, error)
}

type mediaService struct {
	media   repository.MediaRepository
	store   storage.Storage
	limiter *ratelimit.Limiter
}

// NewMediaService constructs a new MediaService.
func NewMediaService(media repository.MediaRepository, store storage.Storage, limiter *ratelimit.Limiter) MediaService {
	return &mediaService{media: media, store: store, limiter: limiter}
}

func (s *mediaService) PresignUpload(ctx context.Context, clientIP string, in PresignInput) (*PresignResult, error) {
	if in.Filename == "" || in.Mime == "" {
		return nil, fmt.Errorf("%w: filename and mime are required", ErrInvalidInput)
	}

	if !s.limiter.Allow(presignRateKey, clientIP, presignRateLimit, presignRateWindow) {
		return nil, ErrRateLimited
	}

	mediaID := uuid.NewString()
	key := path.Join("uploads", mediaID, in.Filename)
	storagePath := fmt.Sprintf("s3://%s/%s", s.store.Bucket(), key)

	// The record is created before the physical object exists. An upload
	// that never completes leaves it orphaned.
	rec := &model.Media{
		ID:             mediaID,
		Path:           storagePath,
		Mime:           in.Mime,
		Size:           in.Size,
		Sensitive:      in.Purpose == "resume",
		StorageBackend: "s3",
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := s.media.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("save media record: %w", err)
	}

	url, err := s.store.PresignPut(ctx, key, in.Mime, presignExpiry)
	if err != nil {
		// Compensating delete: the record must not outlive a failed presign.
		if delErr := s.media.Delete(ctx, mediaID); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; cleanup failed: %w", err, delErr)
		}
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &PresignResult{UploadURL: url, MediaID: mediaID, Path: storagePath}, nil
}
