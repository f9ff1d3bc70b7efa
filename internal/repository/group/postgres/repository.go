package group_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"yatube/internal/custom_errors"
	"yatube/internal/logger"
	"yatube/internal/metrics"
	"yatube/internal/model"
	"yatube/internal/repository/postgres/db"
)

const uniqueViolationCode = "23505"

type GroupRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.Provider
}

func NewGroupRepository(db db.PgDB, log *logger.Logger, metrics metrics.Provider) *GroupRepository {
	return &GroupRepository{db: db, log: log, metrics: metrics}
}

func (g *GroupRepository) Create(ctx context.Context, group *model.Group) (*model.Group, error) {
	start := time.Now()
	g.log.Debug("Creating new group", slog.String("slug", group.Slug))

	args := pgx.NamedArgs{
		"title":       group.Title,
		"slug":        group.Slug,
		"description": group.Description,
	}

	query := `
		INSERT INTO post_groups (title, slug, description)
		VALUES (@title, @slug, @description)
		RETURNING id, title, slug, description`

	var createdGroup model.Group
	err := g.db.QueryRow(ctx, query, args).Scan(
		&createdGroup.ID,
		&createdGroup.Title,
		&createdGroup.Slug,
		&createdGroup.Description,
	)

	if err != nil {
		g.metrics.RecordDatabaseQueryDuration("group_create", time.Since(start))
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			g.metrics.IncrementDatabaseQueries("group_create", true)
			g.log.Debug("Group slug already taken", slog.String("slug", group.Slug))
			return nil, custom_errors.ErrGroupSlugExists
		}
		g.metrics.IncrementDatabaseQueries("group_create", false)
		g.log.Error("Error creating group", slog.String("slug", group.Slug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	g.metrics.IncrementDatabaseQueries("group_create", true)
	g.metrics.RecordDatabaseQueryDuration("group_create", time.Since(start))
	return &createdGroup, nil
}

func (g *GroupRepository) GetByID(ctx context.Context, id int64) (*model.Group, error) {
	start := time.Now()

	args := pgx.NamedArgs{"id": id}
	query := `SELECT id, title, slug, description FROM post_groups WHERE id = @id`

	group := &model.Group{}
	err := g.db.QueryRow(ctx, query, args).Scan(
		&group.ID,
		&group.Title,
		&group.Slug,
		&group.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			g.metrics.IncrementDatabaseQueries("group_get_by_id", true)
			g.metrics.RecordDatabaseQueryDuration("group_get_by_id", time.Since(start))
			g.log.Debug("Group not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrGroupNotFound
		}
		g.metrics.IncrementDatabaseQueries("group_get_by_id", false)
		g.metrics.RecordDatabaseQueryDuration("group_get_by_id", time.Since(start))
		g.log.Error("Error getting group by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	g.metrics.IncrementDatabaseQueries("group_get_by_id", true)
	g.metrics.RecordDatabaseQueryDuration("group_get_by_id", time.Since(start))
	return group, nil
}

func (g *GroupRepository) GetBySlug(ctx context.Context, slug string) (*model.Group, error) {
	start := time.Now()

	args := pgx.NamedArgs{"slug": slug}
	query := `SELECT id, title, slug, description FROM post_groups WHERE slug = @slug`

	group := &model.Group{}
	err := g.db.QueryRow(ctx, query, args).Scan(
		&group.ID,
		&group.Title,
		&group.Slug,
		&group.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			g.metrics.IncrementDatabaseQueries("group_get_by_slug", true)
			g.metrics.RecordDatabaseQueryDuration("group_get_by_slug", time.Since(start))
			g.log.Debug("Group not found by slug", slog.String("slug", slug))
			return nil, custom_errors.ErrGroupNotFound
		}
		g.metrics.IncrementDatabaseQueries("group_get_by_slug", false)
		g.metrics.RecordDatabaseQueryDuration("group_get_by_slug", time.Since(start))
		g.log.Error("Error getting group by slug", slog.String("slug", slug), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	g.metrics.IncrementDatabaseQueries("group_get_by_slug", true)
	g.metrics.RecordDatabaseQueryDuration("group_get_by_slug", time.Since(start))
	return group, nil
}

func (g *GroupRepository) List(ctx context.Context) ([]*model.Group, error) {
	start := time.Now()

	query := `SELECT id, title, slug, description FROM post_groups ORDER BY title`

	rows, err := g.db.Query(ctx, query)
	if err != nil {
		g.metrics.IncrementDatabaseQueries("group_list", false)
		g.metrics.RecordDatabaseQueryDuration("group_list", time.Since(start))
		g.log.Error("Error listing groups", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var groups []*model.Group
	for rows.Next() {
		var group model.Group
		err := rows.Scan(
			&group.ID,
			&group.Title,
			&group.Slug,
			&group.Description,
		)
		if err != nil {
			g.metrics.IncrementDatabaseQueries("group_list", false)
			g.metrics.RecordDatabaseQueryDuration("group_list", time.Since(start))
			g.log.Error("Error scanning group during List", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		groups = append(groups, &group)
	}

	if err = rows.Err(); err != nil {
		g.metrics.IncrementDatabaseQueries("group_list", false)
		g.metrics.RecordDatabaseQueryDuration("group_list", time.Since(start))
		g.log.Error("Error iterating rows during List", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	g.metrics.IncrementDatabaseQueries("group_list", true)
	g.metrics.RecordDatabaseQueryDuration("group_list", time.Since(start))
	return groups, nil
}
