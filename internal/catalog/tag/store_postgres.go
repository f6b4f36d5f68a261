package tag

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

func (repository *PostgresRepository) Create(context context.Context, tag *Tag) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s`,
		schema.RefTag.Table,
		schema.RefTag.Name, schema.RefTag.Slug, schema.RefTag.Color,
		schema.RefTag.ID)

	err := repository.db.QueryRow(context, query, tag.Name, tag.Slug, tag.Color).Scan(&tag.ID)
	if err != nil {
		return dberr.Wrap(err, "create_tag")
	}

	return nil
}

func (repository *PostgresRepository) List(context context.Context) ([]*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefTag.ID, schema.RefTag.Name, schema.RefTag.Slug, schema.RefTag.Color,
		schema.RefTag.Table, schema.RefTag.ID)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	tags := make([]*Tag, 0)
	for rows.Next() {
		tag := &Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.Color); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id int64) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.RefTag.ID, schema.RefTag.Name, schema.RefTag.Slug, schema.RefTag.Color,
		schema.RefTag.Table, schema.RefTag.ID)

	tag := &Tag{}
	err := repository.db.QueryRow(context, query, id).Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.Color)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag_by_id")
	}

	return tag, nil
}

func (repository *PostgresRepository) ResolveIDs(context context.Context, ids []int64) ([]*Tag, error) {
	if len(ids) == 0 {
		return []*Tag{}, nil
	}

	query := fmt.Sprintf(`SELECT %s, %s, %s, %s FROM %s WHERE %s = ANY($1)`,
		schema.RefTag.ID, schema.RefTag.Name, schema.RefTag.Slug, schema.RefTag.Color,
		schema.RefTag.Table, schema.RefTag.ID)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "resolve_tag_ids")
	}
	defer rows.Close()

	byID := make(map[int64]*Tag, len(ids))
	for rows.Next() {
		tag := &Tag{}
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Slug, &tag.Color); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}
		byID[tag.ID] = tag
	}

	resolved := make([]*Tag, 0, len(ids))
	for _, id := range ids {
		if tag, ok := byID[id]; ok {
			resolved = append(resolved, tag)
		}
	}

	return resolved, nil
}
