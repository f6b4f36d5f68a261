package favorite

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IvanZabelin/foodgram/internal/platform/database/schema"
	"github.com/IvanZabelin/foodgram/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Add(context context.Context, userID, recipeID int64) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.Favorite.Table, schema.Favorite.UserID, schema.Favorite.RecipeID)

	if _, err := repository.db.Exec(context, query, userID, recipeID); err != nil {
		return dberr.Wrap(err, "add_favorite")
	}

	return nil
}

func (repository *PostgresRepository) Remove(context context.Context, userID, recipeID int64) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.Favorite.Table, schema.Favorite.UserID, schema.Favorite.RecipeID)

	response, err := repository.db.Exec(context, query, userID, recipeID)
	if err != nil {
		return false, dberr.Wrap(err, "remove_favorite")
	}

	return response.RowsAffected() > 0, nil
}

func (repository *PostgresRepository) RecipeCard(context context.Context, recipeID int64) (*Item, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.Recipe.ID, schema.Recipe.Name, schema.Recipe.Image, schema.Recipe.CookingTime,
		schema.Recipe.Table, schema.Recipe.ID)

	item := &Item{}
	err := repository.db.QueryRow(context, query, recipeID).Scan(
		&item.ID, &item.Name, &item.Image, &item.CookingTime)
	if err != nil {
		return nil, dberr.Wrap(err, "get_recipe_card")
	}

	return item, nil
}
