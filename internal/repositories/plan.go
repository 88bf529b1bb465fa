package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dreamcatcher-app/dreamcatcher-server/internal/logger"
	"github.com/dreamcatcher-app/dreamcatcher-server/internal/models"
)

// PlanReadRepository handles plan read operations
type PlanReadRepository struct {
	db *sqlx.DB
}

func NewPlanReadRepository(db *sqlx.DB) *PlanReadRepository {
	return &PlanReadRepository{db: db}
}

// GetByIDAndUser returns the plan only when it exists AND is owned by the
// given user; both cases collapse to nil. Filtering on id and owner in one
// query keeps existence and permission indistinguishable to callers.
func (r *PlanReadRepository) GetByIDAndUser(ctx context.Context, planID, userID uuid.UUID) (*models.PlanDB, error) {
	const query = `
		SELECT plan_id, name, description, start_time, camera, tileset_url, user_id, created_at, updated_at
		FROM plans
		WHERE plan_id = $1 AND user_id = $2
	`

	var plan models.PlanDB
	err := r.db.GetContext(ctx, &plan, query, planID, userID)

	logger.Log.Infow("plan get",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{planID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// GetByID returns a plan regardless of owner, or nil when absent. Used by
// the render relay, which is keyed by plan id alone.
func (r *PlanReadRepository) GetByID(ctx context.Context, planID uuid.UUID) (*models.PlanDB, error) {
	const query = `
		SELECT plan_id, name, description, start_time, camera, tileset_url, user_id, created_at, updated_at
		FROM plans
		WHERE plan_id = $1
	`

	var plan models.PlanDB
	err := r.db.GetContext(ctx, &plan, query, planID)

	logger.Log.Infow("plan get by id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{planID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// ListByUser returns the user's plans in storage order with numeric
// offset/limit pagination.
func (r *PlanReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.PlanDB, error) {
	const query = `
		SELECT plan_id, name, description, start_time, camera, tileset_url, user_id, created_at, updated_at
		FROM plans
		WHERE user_id = $1
		ORDER BY created_at
		OFFSET $2 LIMIT $3
	`

	plans := []models.PlanDB{}
	err := r.db.SelectContext(ctx, &plans, query, userID, offset, limit)

	logger.Log.Infow("plan list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, offset, limit},
		"count", len(plans),
		"error", err,
	)

	return plans, err
}

// PlanWriteRepository handles plan write operations
type PlanWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPlanWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PlanWriteRepository {
	return &PlanWriteRepository{db: db, txGetter: txGetter}
}

func (r *PlanWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save performs an UPSERT keyed by plan id. On conflict the mutable fields
// are replaced and updated_at refreshed; user_id and created_at keep their
// stored values, so ownership cannot change through this path.
func (r *PlanWriteRepository) Save(ctx context.Context, plan models.PlanDB) error {
	query := `
		INSERT INTO plans (plan_id, name, description, start_time, camera, tileset_url, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (plan_id) DO UPDATE
		SET name = EXCLUDED.name,
		    description = EXCLUDED.description,
		    start_time = EXCLUDED.start_time,
		    camera = EXCLUDED.camera,
		    tileset_url = EXCLUDED.tileset_url,
		    updated_at = NOW()
	`
	args := []any{plan.PlanID, plan.Name, plan.Description, plan.StartTime, plan.Camera, plan.TilesetURL, plan.UserID}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow("plan save",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{plan.PlanID, plan.Name, plan.UserID},
		"error", err,
	)

	return err
}

// Delete removes the plan only under the given ownership. Returns true
// when a row was actually removed.
func (r *PlanWriteRepository) Delete(ctx context.Context, planID, userID uuid.UUID) (bool, error) {
	query := `
		DELETE FROM plans
		WHERE plan_id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, planID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("plan delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{planID, userID},
		"rows", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
