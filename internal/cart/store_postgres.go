package cart

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
		schema.ShoppingCart.Table, schema.ShoppingCart.UserID, schema.ShoppingCart.RecipeID)

	if _, err := repository.db.Exec(context, query, userID, recipeID); err != nil {
		return dberr.Wrap(err, "add_cart_entry")
	}

	return nil
}

func (repository *PostgresRepository) Remove(context context.Context, userID, recipeID int64) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.ShoppingCart.Table, schema.ShoppingCart.UserID, schema.ShoppingCart.RecipeID)

	response, err := repository.db.Exec(context, query, userID, recipeID)
	if err != nil {
		return false, dberr.Wrap(err, "remove_cart_entry")
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

// IngredientRows joins the cart through recipe compositions down to the
// catalog. The merge happens in Go; the query only flattens.
func (repository *PostgresRepository) IngredientRows(context context.Context, userID int64) ([]Row, error) {
	query := fmt.Sprintf(`
		SELECT i.%s, i.%s, ri.%s
		FROM %s sc
		JOIN %s ri ON ri.%s = sc.%s
		JOIN %s i ON i.%s = ri.%s
		WHERE sc.%s = $1`,
		schema.RefIngredient.Name, schema.RefIngredient.MeasurementUnit, schema.RecipeIngredient.Amount,
		schema.ShoppingCart.Table,
		schema.RecipeIngredient.Table, schema.RecipeIngredient.RecipeID, schema.ShoppingCart.RecipeID,
		schema.RefIngredient.Table, schema.RefIngredient.ID, schema.RecipeIngredient.IngredientID,
		schema.ShoppingCart.UserID)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_cart_ingredient_rows")
	}
	defer rows.Close()

	out := make([]Row, 0)
	for rows.Next() {
		var row Row
		if err := rows.Scan(&row.Name, &row.MeasurementUnit, &row.Amount); err != nil {
			return nil, dberr.Wrap(err, "scan_cart_ingredient_row")
		}
		out = append(out, row)
	}

	return out, nil
}
