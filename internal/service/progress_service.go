package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"dmarins/fittrack/internal/domain"
	"dmarins/fittrack/internal/repository"
	"dmarins/fittrack/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWeightLogNotFound = errors.New("weight log not found")
	ErrInvalidWeight     = errors.New("weight must be positive")
	ErrInvalidPhotoType  = errors.New("photo content type must be image/*")
)

// WeightLogEntry is a stored log decorated with a presigned photo URL when a
// photo has been uploaded for it.
type WeightLogEntry struct {
	domain.WeightLog
	PhotoURL string `json:"photoUrl,omitempty"`
}

// PhotoUploadTarget is what the client needs to PUT a progress photo.
type PhotoUploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// ProgressService manages weight logs and their progress photos. Photos live
// in object storage; only presigned URLs cross the API boundary.
type ProgressService interface {
	LogWeight(ctx context.Context, userID primitive.ObjectID, weightKg float64, loggedAt time.Time, notes string) (*domain.WeightLog, error)
	History(ctx context.Context, userID primitive.ObjectID) ([]WeightLogEntry, error)
	DeleteLog(ctx context.Context, userID, logID primitive.ObjectID) error
	PhotoUploadURL(ctx context.Context, userID, logID primitive.ObjectID, contentType string) (*PhotoUploadTarget, error)
}

type progressService struct {
	weightLogRepo repository.WeightLogRepository
	fileStorage   storage.FileStorage
}

// NewProgressService creates a new instance of progressService.
func NewProgressService(weightLogRepo repository.WeightLogRepository, fileStorage storage.FileStorage) ProgressService {
	return &progressService{weightLogRepo: weightLogRepo, fileStorage: fileStorage}
}

// LogWeight stores a new weight entry. A zero loggedAt means "today".
func (s *progressService) LogWeight(ctx context.Context, userID primitive.ObjectID, weightKg float64, loggedAt time.Time, notes string) (*domain.WeightLog, error) {
	if weightKg <= 0 {
		return nil, ErrInvalidWeight
	}
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	entry := &domain.WeightLog{
		UserID:   userID,
		WeightKg: weightKg,
		LoggedAt: loggedAt,
		Notes:    strings.TrimSpace(notes),
	}
	logID, err := s.weightLogRepo.Create(ctx, entry)
	if err != nil {
		return nil, err
	}
	entry.ID = logID
	return entry, nil
}

// History returns the user's logs newest first, each with a short-lived
// download URL when a photo exists. A presign failure downgrades to an entry
// without a URL instead of failing the whole listing.
func (s *progressService) History(ctx context.Context, userID primitive.ObjectID) ([]WeightLogEntry, error) {
	logs, err := s.weightLogRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]WeightLogEntry, 0, len(logs))
	for _, weightLog := range logs {
		entry := WeightLogEntry{WeightLog: weightLog}
		if weightLog.PhotoKey != "" {
			url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, weightLog.PhotoKey, storage.DefaultPresignedURLExpiry)
			if err != nil {
				log.Printf("WARN: could not presign photo for weight log %s: %v", weightLog.ID.Hex(), err)
			} else {
				entry.PhotoURL = url
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// DeleteLog removes the entry and, when present, its photo object. The photo
// delete runs first so a storage failure leaves the log (and the retry path)
// intact.
func (s *progressService) DeleteLog(ctx context.Context, userID, logID primitive.ObjectID) error {
	entry, err := s.ownedLog(ctx, userID, logID)
	if err != nil {
		return err
	}
	if entry.PhotoKey != "" {
		if err := s.fileStorage.DeleteObject(ctx, entry.PhotoKey); err != nil {
			return fmt.Errorf("failed to delete progress photo: %w", err)
		}
	}
	if err := s.weightLogRepo.Delete(ctx, logID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrDeleteFailed) {
			return ErrWeightLogNotFound
		}
		return err
	}
	return nil
}

// PhotoUploadURL allocates a fresh object key for the log's photo, records it,
// and returns a presigned PUT URL. Re-requesting replaces the key, so the old
// object is deleted when one exists.
func (s *progressService) PhotoUploadURL(ctx context.Context, userID, logID primitive.ObjectID, contentType string) (*PhotoUploadTarget, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrInvalidPhotoType
	}
	entry, err := s.ownedLog(ctx, userID, logID)
	if err != nil {
		return nil, err
	}

	objectKey := fmt.Sprintf("progress-photos/%s/%s/%s", userID.Hex(), logID.Hex(), uuid.NewString())
	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign photo upload: %w", err)
	}

	if err := s.weightLogRepo.SetPhotoKey(ctx, logID, userID, objectKey); err != nil {
		return nil, err
	}

	if entry.PhotoKey != "" && entry.PhotoKey != objectKey {
		if err := s.fileStorage.DeleteObject(ctx, entry.PhotoKey); err != nil {
			log.Printf("WARN: could not delete replaced photo %s: %v", entry.PhotoKey, err)
		}
	}

	return &PhotoUploadTarget{UploadURL: uploadURL, ObjectKey: objectKey}, nil
}

func (s *progressService) ownedLog(ctx context.Context, userID, logID primitive.ObjectID) (*domain.WeightLog, error) {
	entry, err := s.weightLogRepo.GetByID(ctx, logID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWeightLogNotFound
		}
		return nil, err
	}
	if entry.UserID != userID {
		return nil, ErrWeightLogNotFound
	}
	return entry, nil
}
