package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IvanZabelin/foodgram/internal/platform/database/schema"
	"github.com/IvanZabelin/foodgram/internal/platform/dberr"
)

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s`,
		schema.UserAccount.Table,
		schema.UserAccount.Username, schema.UserAccount.Email,
		schema.UserAccount.FirstName, schema.UserAccount.LastName,
		schema.UserAccount.PasswordHash, schema.UserAccount.Role,
		schema.UserAccount.ID, schema.UserAccount.CreatedAt)

	err := repository.db.QueryRow(context, query,
		user.Username, user.Email, user.FirstName, user.LastName,
		user.PasswordHash, string(user.Role),
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_user")
	}

	return nil
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	return repository.findBy(context, schema.UserAccount.ID, id)
}

func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.Email, email)
}

func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.Username, username)
}

func (repository *PostgresUserRepository) findBy(context context.Context, column string, value any) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, COALESCE(%s, ''), %s, %s
		FROM %s WHERE %s = $1`,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Email,
		schema.UserAccount.FirstName, schema.UserAccount.LastName,
		schema.UserAccount.PasswordHash, schema.UserAccount.Avatar,
		schema.UserAccount.Role, schema.UserAccount.CreatedAt,
		schema.UserAccount.Table, column)

	user := &User{}
	err := repository.db.QueryRow(context, query, value).Scan(
		&user.ID, &user.Username, &user.Email,
		&user.FirstName, &user.LastName,
		&user.PasswordHash, &user.Avatar,
		&user.Role, &user.CreatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user")
	}

	return user, nil
}

func (repository *PostgresUserRepository) UpdatePassword(context context.Context, id int64, passwordHash string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		schema.UserAccount.Table, schema.UserAccount.PasswordHash, schema.UserAccount.ID)

	response, err := repository.db.Exec(context, query, passwordHash, id)
	if err != nil {
		return dberr.Wrap(err, "update_password")
	}
	if response.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
