package tag

import (
	"context"
	"log/slog"

	"github.com/IvanZabelin/foodgram/internal/platform/constants"
	"github.com/IvanZabelin/foodgram/internal/platform/validate"
	"github.com/IvanZabelin/foodgram/pkg/slug"
)

// Validation field identifiers.
const (
	FieldName  = "name"
	FieldSlug  = "slug"
	FieldColor = "color"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (service *Service) ListTags(context context.Context) ([]*Tag, error) {
	return service.repo.List(context)
}

func (service *Service) GetTag(context context.Context, id int64) (*Tag, error) {
	return service.repo.GetByID(context, id)
}

// CreateTag adds a tag to the catalog. Reserved for administrators; the
// route guard enforces the role.
func (service *Service) CreateTag(context context.Context, input CreateTagInput) (*Tag, error) {
	tagSlug := input.Slug
	if tagSlug == "" {
		tagSlug = slug.From(input.Name)
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, input.Name)
	validator.MaxLen(FieldName, input.Name, constants.MaxNameLength)
	validator.Slug(FieldSlug, tagSlug)
	validator.MaxLen(FieldSlug, tagSlug, constants.MaxNameLength)
	validator.Required(FieldColor, input.Color)
	validator.HexColor(FieldColor, input.Color)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	tag := &Tag{
		Name:  input.Name,
		Slug:  tagSlug,
		Color: input.Color,
	}
	if err := service.repo.Create(context, tag); err != nil {
		return nil, err
	}

	service.logger.Info("tag_created",
		slog.Int64("tag_id", tag.ID),
		slog.String("slug", tag.Slug),
	)

	return tag, nil
}
