package account

import (
	"context"
	"log/slog"

	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
)

// mediaSubdirAvatars is where avatar images land under the media root.
const mediaSubdirAvatars = "avatars"

// ImageStore persists intake images. Satisfied by media.Store.
type ImageStore interface {
	SaveDataURI(subdir, dataURI string) (string, error)
	Remove(reference string) error
}

type Service struct {
	repo   Repository
	images ImageStore
	logger *slog.Logger
}

func NewService(repo Repository, images ImageStore, logger *slog.Logger) *Service {
	return &Service{repo: repo, images: images, logger: logger}
}

func (service *Service) GetProfile(context context.Context, id, viewerID int64) (*Profile, error) {
	return service.repo.FindProfile(context, id, viewerID)
}

func (service *Service) ListProfiles(context context.Context, viewerID int64, limit, offset int) ([]*Profile, int, error) {
	return service.repo.ListProfiles(context, viewerID, limit, offset)
}

// SetAvatar stores a new avatar image from a base64 data URI and replaces
// the previous file.
func (service *Service) SetAvatar(context context.Context, userID int64, dataURI string) (string, error) {
	if dataURI == "" {
		return "", apperr.ValidationError("Avatar image is required")
	}

	previous, err := service.repo.FindProfile(context, userID, 0)
	if err != nil {
		return "", err
	}

	avatarPath, err := service.images.SaveDataURI(mediaSubdirAvatars, dataURI)
	if err != nil {
		return "", err
	}

	if err := service.repo.UpdateAvatar(context, userID, avatarPath); err != nil {
		service.images.Remove(avatarPath)
		return "", err
	}
	if previous.Avatar != "" {
		service.images.Remove(previous.Avatar)
	}

	service.logger.Info("avatar_updated", slog.Int64("user_id", userID))

	return avatarPath, nil
}

// DeleteAvatar clears the avatar and removes the stored file.
func (service *Service) DeleteAvatar(context context.Context, userID int64) error {
	previous, err := service.repo.FindProfile(context, userID, 0)
	if err != nil {
		return err
	}

	if err := service.repo.UpdateAvatar(context, userID, ""); err != nil {
		return err
	}
	if previous.Avatar != "" {
		service.images.Remove(previous.Avatar)
	}

	service.logger.Info("avatar_removed", slog.Int64("user_id", userID))

	return nil
}
