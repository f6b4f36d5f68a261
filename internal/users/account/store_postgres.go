package account

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

func (repository *PostgresRepository) FindProfile(context context.Context, id, viewerID int64) (*Profile, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, COALESCE(a.%s, ''),
			EXISTS(
				SELECT 1 FROM %s sub
				WHERE sub.%s = $2 AND sub.%s = a.%s
			) AS is_subscribed
		FROM %s a
		WHERE a.%s = $1`,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Email,
		schema.UserAccount.FirstName, schema.UserAccount.LastName, schema.UserAccount.Avatar,
		schema.UserSubscribe.Table,
		schema.UserSubscribe.FollowerID, schema.UserSubscribe.AuthorID, schema.UserAccount.ID,
		schema.UserAccount.Table,
		schema.UserAccount.ID)

	profile := &Profile{}
	err := repository.db.QueryRow(context, query, id, viewerID).Scan(
		&profile.ID, &profile.Username, &profile.Email,
		&profile.FirstName, &profile.LastName, &profile.Avatar,
		&profile.IsSubscribed)
	if err != nil {
		return nil, dberr.Wrap(err, "find_profile")
	}

	return profile, nil
}

func (repository *PostgresRepository) ListProfiles(context context.Context, viewerID int64, limit, offset int) ([]*Profile, int, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, COALESCE(a.%s, ''),
			EXISTS(
				SELECT 1 FROM %s sub
				WHERE sub.%s = $1 AND sub.%s = a.%s
			) AS is_subscribed,
			COUNT(*) OVER() AS total_count
		FROM %s a
		ORDER BY a.%s ASC
		LIMIT $2 OFFSET $3`,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Email,
		schema.UserAccount.FirstName, schema.UserAccount.LastName, schema.UserAccount.Avatar,
		schema.UserSubscribe.Table,
		schema.UserSubscribe.FollowerID, schema.UserSubscribe.AuthorID, schema.UserAccount.ID,
		schema.UserAccount.Table,
		schema.UserAccount.ID)

	rows, err := repository.db.Query(context, query, viewerID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_profiles")
	}
	defer rows.Close()

	profiles := make([]*Profile, 0)
	var totalCount int
	for rows.Next() {
		profile := &Profile{}
		err := rows.Scan(
			&profile.ID, &profile.Username, &profile.Email,
			&profile.FirstName, &profile.LastName, &profile.Avatar,
			&profile.IsSubscribed, &totalCount)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_profile")
		}
		profiles = append(profiles, profile)
	}

	return profiles, totalCount, nil
}

func (repository *PostgresRepository) UpdateAvatar(context context.Context, id int64, avatar string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NULLIF($1, '') WHERE %s = $2`,
		schema.UserAccount.Table, schema.UserAccount.Avatar, schema.UserAccount.ID)

	response, err := repository.db.Exec(context, query, avatar, id)
	if err != nil {
		return dberr.Wrap(err, "update_avatar")
	}
	if response.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
