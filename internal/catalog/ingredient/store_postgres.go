package ingredient

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

func (repository *PostgresRepository) List(context context.Context, namePrefix string) ([]*Ingredient, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s`,
		schema.RefIngredient.ID, schema.RefIngredient.Name, schema.RefIngredient.MeasurementUnit,
		schema.RefIngredient.Table)

	var args []any
	if namePrefix != "" {
		query += fmt.Sprintf(" WHERE %s ILIKE $1 || '%%'", schema.RefIngredient.Name)
		args = append(args, namePrefix)
	}
	query += fmt.Sprintf(" ORDER BY %s ASC", schema.RefIngredient.Name)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_ingredients")
	}
	defer rows.Close()

	ingredients := make([]*Ingredient, 0)
	for rows.Next() {
		ing := &Ingredient{}
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit); err != nil {
			return nil, dberr.Wrap(err, "scan_ingredient")
		}
		ingredients = append(ingredients, ing)
	}

	return ingredients, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id int64) (*Ingredient, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.RefIngredient.ID, schema.RefIngredient.Name, schema.RefIngredient.MeasurementUnit,
		schema.RefIngredient.Table, schema.RefIngredient.ID)

	ing := &Ingredient{}
	err := repository.db.QueryRow(context, query, id).Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit)
	if err != nil {
		return nil, dberr.Wrap(err, "get_ingredient_by_id")
	}

	return ing, nil
}

// ResolveIDs fetches the rows for the requested ids and returns them in the
// input order. The query matches by id only, so rows with duplicate names in
// the catalog always resolve to exactly the row the caller named.
func (repository *PostgresRepository) ResolveIDs(context context.Context, ids []int64) ([]*Ingredient, error) {
	if len(ids) == 0 {
		return []*Ingredient{}, nil
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = ANY($1)`,
		schema.RefIngredient.ID, schema.RefIngredient.Name, schema.RefIngredient.MeasurementUnit,
		schema.RefIngredient.Table, schema.RefIngredient.ID)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "resolve_ingredient_ids")
	}
	defer rows.Close()

	byID := make(map[int64]*Ingredient, len(ids))
	for rows.Next() {
		ing := &Ingredient{}
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit); err != nil {
			return nil, dberr.Wrap(err, "scan_ingredient")
		}
		byID[ing.ID] = ing
	}

	resolved := make([]*Ingredient, 0, len(ids))
	for _, id := range ids {
		if ing, ok := byID[id]; ok {
			resolved = append(resolved, ing)
		}
	}

	return resolved, nil
}
