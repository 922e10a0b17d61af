package repository

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, reset *entity.PasswordReset) error
	FindByToken(ctx context.Context, token uuid.UUID) (*entity.PasswordReset, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type passwordResetRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPasswordResetRepository(db database.PgxIface, log *zap.Logger) PasswordResetRepository {
	return &passwordResetRepository{
		db:  db,
		log: log.With(zap.String("repository", "password_reset")),
	}
}

func (r *passwordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO password_resets (id, user_id, token, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		reset.ID,
		reset.UserID,
		reset.Token,
		reset.ExpiresAt,
		reset.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create password reset",
			zap.Error(err),
			zap.String("user_id", reset.UserID.String()),
		)
		return fmt.Errorf("create password reset for user %s: %w", reset.UserID.String(), err)
	}

	return nil
}

func (r *passwordResetRepository) FindByToken(ctx context.Context, token uuid.UUID) (*entity.PasswordReset, error) {
	var reset entity.PasswordReset
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, token, expires_at, used_at, created_at
		 FROM password_resets WHERE token = $1`,
		token,
	).Scan(
		&reset.ID,
		&reset.UserID,
		&reset.Token,
		&reset.ExpiresAt,
		&reset.UsedAt,
		&reset.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find password reset by token", zap.Error(err))
		return nil, fmt.Errorf("find password reset by token: %w", err)
	}
	return &reset, nil
}

func (r *passwordResetRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		`UPDATE password_resets SET used_at = NOW() WHERE id = $1 AND used_at IS NULL`, id)
	if err != nil {
		r.log.Error("Failed to mark password reset used",
			zap.Error(err),
			zap.String("reset_id", id.String()),
		)
		return fmt.Errorf("mark password reset %s used: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("password reset %s: %w", id.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *passwordResetRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.Exec(ctx,
		`DELETE FROM password_resets WHERE expires_at < $1`, before)
	if err != nil {
		r.log.Error("Failed to delete expired password resets", zap.Error(err))
		return 0, fmt.Errorf("delete expired password resets: %w", err)
	}

	return result.RowsAffected(), nil
}
