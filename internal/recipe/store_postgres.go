/*
Package recipe's PostgreSQL store keeps a recipe and its junction rows
consistent under a single transaction per mutation.

Read queries hydrate the full response shape in one round-trip:
  - JSON aggregation (json_agg / json_build_object) folds tags and
    ingredient amounts into the root row.
  - A window COUNT(*) OVER() returns the total alongside each page.
  - EXISTS sub-queries compute the viewer-relative flags without joins
    that would multiply rows.
*/
package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IvanZabelin/foodgram/internal/platform/apperr"
	"github.com/IvanZabelin/foodgram/internal/platform/database/schema"
	"github.com/IvanZabelin/foodgram/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// hydrateColumns is the shared SELECT body for FindByID and List. $1 binds
// the viewer id; a zero viewer never matches a userid so every flag
// collapses to false for anonymous requests.
const hydrateColumns = `
	r.id, r.authorid, r.name, r.text, r.image, r.cookingtime, r.createdat,
	a.username, a.firstname, a.lastname, COALESCE(a.avatar, ''),
	EXISTS(
		SELECT 1 FROM users.subscribe sub
		WHERE sub.followerid = $1 AND sub.authorid = r.authorid
	) AS is_subscribed,
	EXISTS(
		SELECT 1 FROM recipes.favorite f
		WHERE f.userid = $1 AND f.recipeid = r.id
	) AS is_favorited,
	EXISTS(
		SELECT 1 FROM recipes.shoppingcart sc
		WHERE sc.userid = $1 AND sc.recipeid = r.id
	) AS is_in_shopping_cart,
	COALESCE((
		SELECT json_agg(json_build_object(
			'id', t.id, 'name', t.name, 'slug', t.slug, 'color', t.color))
		FROM refs.tag t
		JOIN recipes.recipetag rt ON t.id = rt.tagid
		WHERE rt.recipeid = r.id
	), '[]') AS tags,
	COALESCE((
		SELECT json_agg(json_build_object(
			'id', i.id, 'name', i.name,
			'measurement_unit', i.measurementunit, 'amount', ri.amount))
		FROM refs.ingredient i
		JOIN recipes.recipeingredient ri ON i.id = ri.ingredientid
		WHERE ri.recipeid = r.id
	), '[]') AS ingredients
`

func scanRecipe(row pgx.Row, extra ...any) (*Recipe, error) {
	recipe := &Recipe{}
	var tagsJSON, ingredientsJSON []byte

	dest := []any{
		&recipe.ID, &recipe.Author.ID, &recipe.Name, &recipe.Text,
		&recipe.Image, &recipe.CookingTime, &recipe.CreatedAt,
		&recipe.Author.Username, &recipe.Author.FirstName,
		&recipe.Author.LastName, &recipe.Author.Avatar,
		&recipe.Author.IsSubscribed,
		&recipe.IsFavorited, &recipe.IsInShoppingCart,
		&tagsJSON, &ingredientsJSON,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tagsJSON, &recipe.Tags); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal recipe tags: %w", err)
	}
	if err := json.Unmarshal(ingredientsJSON, &recipe.Ingredients); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal recipe ingredients: %w", err)
	}

	return recipe, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id, viewerID int64) (*Recipe, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s r
		JOIN %s a ON a.%s = r.%s
		WHERE r.%s = $2`,
		hydrateColumns,
		schema.Recipe.Table,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.Recipe.AuthorID,
		schema.Recipe.ID)

	recipe, err := scanRecipe(repository.db.QueryRow(context, query, viewerID, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_recipe_by_id")
	}

	return recipe, nil
}

func (repository *PostgresRepository) List(context context.Context, filter Filter, viewerID int64, limit, offset int) ([]*Recipe, int, error) {
	var queryBuilder strings.Builder
	args := []any{viewerID}
	argID := 2

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s r
		JOIN %s a ON a.%s = r.%s
		WHERE TRUE`,
		hydrateColumns,
		schema.Recipe.Table,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.Recipe.AuthorID))

	if filter.AuthorID != 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND r.%s = $%d", schema.Recipe.AuthorID, argID))
		args = append(args, filter.AuthorID)
		argID++
	}

	// Tag filtering is OR semantics: a recipe matches when it carries any
	// of the requested slugs.
	if len(filter.TagSlugs) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(`
			AND EXISTS(
				SELECT 1 FROM recipes.recipetag rt
				JOIN refs.tag t ON t.id = rt.tagid
				WHERE rt.recipeid = r.id AND t.slug = ANY($%d)
			)`, argID))
		args = append(args, filter.TagSlugs)
		argID++
	}

	// Viewer-relative filters reuse the $1 viewer binding.
	if filter.OnlyFavorited {
		queryBuilder.WriteString(`
			AND EXISTS(
				SELECT 1 FROM recipes.favorite f
				WHERE f.userid = $1 AND f.recipeid = r.id
			)`)
	}
	if filter.OnlyInCart {
		queryBuilder.WriteString(`
			AND EXISTS(
				SELECT 1 FROM recipes.shoppingcart sc
				WHERE sc.userid = $1 AND sc.recipeid = r.id
			)`)
	}

	// Newest first, id as tiebreak for a stable page order.
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY r.%s DESC, r.%s DESC", schema.Recipe.CreatedAt, schema.Recipe.ID))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_recipes")
	}
	defer rows.Close()

	recipes := make([]*Recipe, 0)
	var totalCount int
	for rows.Next() {
		recipe, err := scanRecipe(rows, &totalCount)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_recipe")
		}
		recipes = append(recipes, recipe)
	}

	return recipes, totalCount, nil
}

// Create inserts the core row and both junction sets in one transaction.
func (repository *PostgresRepository) Create(context context.Context, recipe *Recipe, ingredients []IngredientRef, tagIDs []int64) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_recipe")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s, %s`,
		schema.Recipe.Table,
		schema.Recipe.AuthorID, schema.Recipe.Name, schema.Recipe.Text,
		schema.Recipe.Image, schema.Recipe.CookingTime,
		schema.Recipe.ID, schema.Recipe.CreatedAt)

	err = transaction.QueryRow(context, query,
		recipe.Author.ID, recipe.Name, recipe.Text, recipe.Image, recipe.CookingTime,
	).Scan(&recipe.ID, &recipe.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "insert_recipe")
	}

	if err := insertIngredients(context, transaction, recipe.ID, ingredients); err != nil {
		return err
	}
	if err := insertTags(context, transaction, recipe.ID, tagIDs); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_recipe")
	}

	return nil
}

// Update rewrites the core row, then reconciles the junctions: ingredient
// amounts are upserted in place and rows absent from the payload removed,
// while tags are cleared and reinserted. Concurrent updates resolve
// last-write-wins under the transaction.
func (repository *PostgresRepository) Update(context context.Context, recipe *Recipe, ingredients []IngredientRef, tagIDs []int64) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_recipe")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = $2, %s = $3, %s = $4
		WHERE %s = $5`,
		schema.Recipe.Table,
		schema.Recipe.Name, schema.Recipe.Text, schema.Recipe.Image, schema.Recipe.CookingTime,
		schema.Recipe.ID)

	response, err := transaction.Exec(context, query,
		recipe.Name, recipe.Text, recipe.Image, recipe.CookingTime, recipe.ID)
	if err != nil {
		return dberr.Wrap(err, "update_recipe")
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound("recipe")
	}

	// Upsert keeps amounts for ingredients the payload retains, then the
	// delete clears whatever the payload dropped.
	batch := &pgx.Batch{}
	keptIDs := make([]int64, 0, len(ingredients))
	upsert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s`,
		schema.RecipeIngredient.Table,
		schema.RecipeIngredient.RecipeID, schema.RecipeIngredient.IngredientID, schema.RecipeIngredient.Amount,
		schema.RecipeIngredient.RecipeID, schema.RecipeIngredient.IngredientID,
		schema.RecipeIngredient.Amount, schema.RecipeIngredient.Amount)
	for _, ref := range ingredients {
		batch.Queue(upsert, recipe.ID, ref.ID, ref.Amount)
		keptIDs = append(keptIDs, ref.ID)
	}
	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "upsert_recipe_ingredients")
	}

	pruneQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s != ALL($2)`,
		schema.RecipeIngredient.Table,
		schema.RecipeIngredient.RecipeID, schema.RecipeIngredient.IngredientID)
	if _, err := transaction.Exec(context, pruneQuery, recipe.ID, keptIDs); err != nil {
		return dberr.Wrap(err, "prune_recipe_ingredients")
	}

	clearTags := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RecipeTag.Table, schema.RecipeTag.RecipeID)
	if _, err := transaction.Exec(context, clearTags, recipe.ID); err != nil {
		return dberr.Wrap(err, "clear_recipe_tags")
	}
	if err := insertTags(context, transaction, recipe.ID, tagIDs); err != nil {
		return err
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_update_recipe")
	}

	return nil
}

// Delete removes everything referencing the recipe before the core row.
// Favorites and cart entries of other users vanish with the recipe.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_recipe")
	}
	defer transaction.Rollback(context)

	referencing := []struct{ table, column string }{
		{schema.Favorite.Table, schema.Favorite.RecipeID},
		{schema.ShoppingCart.Table, schema.ShoppingCart.RecipeID},
		{schema.RecipeIngredient.Table, schema.RecipeIngredient.RecipeID},
		{schema.RecipeTag.Table, schema.RecipeTag.RecipeID},
	}
	for _, ref := range referencing {
		query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, ref.table, ref.column)
		if _, err := transaction.Exec(context, query, id); err != nil {
			return dberr.Wrap(err, "delete_recipe_references")
		}
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Recipe.Table, schema.Recipe.ID)
	response, err := transaction.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_recipe")
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound("recipe")
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_delete_recipe")
	}

	return nil
}

// # Junction Helpers

func insertIngredients(context context.Context, transaction pgx.Tx, recipeID int64, ingredients []IngredientRef) error {
	if len(ingredients) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
		schema.RecipeIngredient.Table,
		schema.RecipeIngredient.RecipeID, schema.RecipeIngredient.IngredientID, schema.RecipeIngredient.Amount)
	for _, ref := range ingredients {
		batch.Queue(query, recipeID, ref.ID, ref.Amount)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "insert_recipe_ingredients")
	}

	return nil
}

func insertTags(context context.Context, transaction pgx.Tx, recipeID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.RecipeTag.Table, schema.RecipeTag.RecipeID, schema.RecipeTag.TagID)
	for _, tagID := range tagIDs {
		batch.Queue(query, recipeID, tagID)
	}

	if err := transaction.SendBatch(context, batch).Close(); err != nil {
		return dberr.Wrap(err, "insert_recipe_tags")
	}

	return nil
}
