package subscribe

import (
	"context"
	"encoding/json"
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

func (repository *PostgresRepository) Add(context context.Context, followerID, authorID int64) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.UserSubscribe.Table, schema.UserSubscribe.FollowerID, schema.UserSubscribe.AuthorID)

	if _, err := repository.db.Exec(context, query, followerID, authorID); err != nil {
		return dberr.Wrap(err, "add_subscription")
	}

	return nil
}

func (repository *PostgresRepository) Remove(context context.Context, followerID, authorID int64) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.UserSubscribe.Table, schema.UserSubscribe.FollowerID, schema.UserSubscribe.AuthorID)

	response, err := repository.db.Exec(context, query, followerID, authorID)
	if err != nil {
		return false, dberr.Wrap(err, "remove_subscription")
	}

	return response.RowsAffected() > 0, nil
}

// authorColumns hydrates one feed entry. $1 binds the follower, $2 the
// recipe preview limit.
const authorColumns = `
	a.id, a.username, a.email, a.firstname, a.lastname, COALESCE(a.avatar, ''),
	EXISTS(
		SELECT 1 FROM users.subscribe sub
		WHERE sub.followerid = $1 AND sub.authorid = a.id
	) AS is_subscribed,
	COALESCE((
		SELECT json_agg(card)
		FROM (
			SELECT r.id, r.name, r.image, r.cookingtime AS cooking_time
			FROM recipes.recipe r
			WHERE r.authorid = a.id
			ORDER BY r.createdat DESC, r.id DESC
			LIMIT $2
		) card
	), '[]') AS recipes,
	(SELECT COUNT(*) FROM recipes.recipe r WHERE r.authorid = a.id) AS recipes_count
`

func scanAuthor(scanner interface{ Scan(...any) error }, extra ...any) (*Author, error) {
	author := &Author{}
	var recipesJSON []byte

	dest := []any{
		&author.ID, &author.Username, &author.Email,
		&author.FirstName, &author.LastName, &author.Avatar,
		&author.IsSubscribed, &recipesJSON, &author.RecipesCount,
	}
	dest = append(dest, extra...)

	if err := scanner.Scan(dest...); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(recipesJSON, &author.Recipes); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal subscription recipes: %w", err)
	}

	return author, nil
}

func (repository *PostgresRepository) Subscription(context context.Context, followerID, authorID int64, recipeLimit int) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s a
		WHERE a.%s = $3`,
		authorColumns,
		schema.UserAccount.Table,
		schema.UserAccount.ID)

	author, err := scanAuthor(repository.db.QueryRow(context, query, followerID, recipeLimit, authorID))
	if err != nil {
		return nil, dberr.Wrap(err, "get_subscription_entry")
	}

	return author, nil
}

func (repository *PostgresRepository) List(context context.Context, followerID int64, recipeLimit, limit, offset int) ([]*Author, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s sub_edge
		JOIN %s a ON a.%s = sub_edge.%s
		WHERE sub_edge.%s = $1
		ORDER BY sub_edge.%s DESC
		LIMIT $3 OFFSET $4`,
		authorColumns,
		schema.UserSubscribe.Table,
		schema.UserAccount.Table, schema.UserAccount.ID, schema.UserSubscribe.AuthorID,
		schema.UserSubscribe.FollowerID,
		schema.UserSubscribe.CreatedAt)

	rows, err := repository.db.Query(context, query, followerID, recipeLimit, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_subscriptions")
	}
	defer rows.Close()

	authors := make([]*Author, 0)
	var totalCount int
	for rows.Next() {
		author, err := scanAuthor(rows, &totalCount)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_subscription")
		}
		authors = append(authors, author)
	}

	return authors, totalCount, nil
}
