package user_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"yatube/internal/custom_errors"
	"yatube/internal/logger"
	"yatube/internal/metrics"
	"yatube/internal/model"
	"yatube/internal/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewUserRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *UserRepository {
	return &UserRepository{db: db, log: log, metrics: metrics}
}

func (u *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	start := time.Now()
	u.log.Debug("Creating new user", slog.String("username", user.Username))

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"username":      user.Username,
		"password_hash": user.PasswordHash,
		"created_at":    now,
	}

	query := `
		INSERT INTO users (username, password_hash, created_at)
		VALUES (@username, @password_hash, @created_at)
		RETURNING id, username, password_hash, created_at`

	var createdUser model.User
	err := u.db.QueryRow(ctx, query, args).Scan(
		&createdUser.ID,
		&createdUser.Username,
		&createdUser.PasswordHash,
		&createdUser.CreatedAt,
	)

	if err != nil {
		u.metrics.RecordDatabaseQueryDuration("user_create", time.Since(start))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			u.metrics.IncrementDatabaseQueries("user_create", true)
			u.log.Debug("Username already taken", slog.String("username", user.Username))
			return nil, custom_errors.ErrUsernameExists
		}
		u.metrics.IncrementDatabaseQueries("user_create", false)
		u.log.Error("Error creating user", slog.String("username", user.Username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.metrics.IncrementDatabaseQueries("user_create", true)
	u.metrics.RecordDatabaseQueryDuration("user_create", time.Since(start))
	return &createdUser, nil
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	start := time.Now()

	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, username, password_hash, created_at FROM users WHERE id = @id`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.metrics.IncrementDatabaseQueries("user_get_by_id", true)
			u.metrics.RecordDatabaseQueryDuration("user_get_by_id", time.Since(start))
			u.log.Debug("User not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrUserNotFound
		}
		u.metrics.IncrementDatabaseQueries("user_get_by_id", false)
		u.metrics.RecordDatabaseQueryDuration("user_get_by_id", time.Since(start))
		u.log.Error("Error getting user by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.metrics.IncrementDatabaseQueries("user_get_by_id", true)
	u.metrics.RecordDatabaseQueryDuration("user_get_by_id", time.Since(start))
	return user, nil
}

func (u *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	start := time.Now()

	args := pgx.NamedArgs{"username": username}
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = @username`

	user := &model.User{}
	err := u.db.QueryRow(ctx, query, args).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			u.metrics.IncrementDatabaseQueries("user_get_by_username", true)
			u.metrics.RecordDatabaseQueryDuration("user_get_by_username", time.Since(start))
			u.log.Debug("User not found by username", slog.String("username", username))
			return nil, custom_errors.ErrUserNotFound
		}
		u.metrics.IncrementDatabaseQueries("user_get_by_username", false)
		u.metrics.RecordDatabaseQueryDuration("user_get_by_username", time.Since(start))
		u.log.Error("Error getting user by username", slog.String("username", username), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	u.metrics.IncrementDatabaseQueries("user_get_by_username", true)
	u.metrics.RecordDatabaseQueryDuration("user_get_by_username", time.Since(start))
	return user, nil
}
