package ingredient

import (
	"context"
	"log/slog"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListIngredients(context context.Context, namePrefix string) ([]*Ingredient, error) {
	return service.repo.List(context, namePrefix)
}

func (service *Service) GetIngredient(context context.Context, id int64) (*Ingredient, error) {
	return service.repo.GetByID(context, id)
}
