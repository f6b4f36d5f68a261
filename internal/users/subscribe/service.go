package subscribe

import (
	"context"
	"log/slog"

	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Subscribe follows an author. Following yourself is rejected outright;
// following twice is a conflict; the author must exist.
func (service *Service) Subscribe(context context.Context, followerID, authorID int64, recipeLimit int) (*Author, error) {
	if followerID == authorID {
		return nil, apperr.SelfSubscription()
	}

	entry, err := service.repo.Subscription(context, followerID, authorID, normalizeLimit(recipeLimit))
	if err != nil {
		return nil, err
	}

	if err := service.repo.Add(context, followerID, authorID); err != nil {
		return nil, err
	}
	entry.IsSubscribed = true

	service.logger.Info("subscription_created",
		slog.Int64("follower_id", followerID),
		slog.Int64("author_id", authorID),
	)

	return entry, nil
}

// Unsubscribe removes the follow edge. Unfollowing someone never followed
// is an error.
func (service *Service) Unsubscribe(context context.Context, followerID, authorID int64) error {
	removed, err := service.repo.Remove(context, followerID, authorID)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound("subscription")
	}

	service.logger.Info("subscription_removed",
		slog.Int64("follower_id", followerID),
		slog.Int64("author_id", authorID),
	)

	return nil
}

// ListSubscriptions pages through the follower's feed.
func (service *Service) ListSubscriptions(context context.Context, followerID int64, recipeLimit, limit, offset int) ([]*Author, int, error) {
	return service.repo.List(context, followerID, normalizeLimit(recipeLimit), limit, offset)
}

func normalizeLimit(recipeLimit int) int {
	if recipeLimit <= 0 {
		return DefaultRecipePreviewLimit
	}
	return recipeLimit
}
