package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/saas-platform/internal/domain"
)

// SubscriptionRepository defines persistence access for subscriptions.
// Rows are keyed by user_id for lookups since the relation is one-to-one.
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) error
	Update(ctx context.Context, sub *domain.Subscription) error
	GetByUserID(ctx context.Context, userID string) (*domain.Subscription, error)
	List(ctx context.Context, limit, offset int) ([]domain.SubscriptionWithOwner, error)
	Count(ctx context.Context) (int64, error)
}

type subscriptionRepository struct {
	pool *pgxpool.Pool
}

// NewSubscriptionRepository returns a Postgres-backed implementation.
func NewSubscriptionRepository(pool *pgxpool.Pool) SubscriptionRepository {
	return &subscriptionRepository{pool: pool}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	const query = `
        INSERT INTO subscriptions (user_id, plan, status, start_date, end_date)
        VALUES ($1, $2, $3, NOW(), $4)
        RETURNING id, start_date, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		sub.UserID,
		sub.Plan,
		sub.Status,
		sub.EndDate,
	).Scan(&sub.ID, &sub.StartDate, &sub.CreatedAt, &sub.UpdatedAt)
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	const query = `
        UPDATE subscriptions SET plan=$1, status=$2, end_date=$3, updated_at=NOW()
        WHERE user_id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		sub.Plan,
		sub.Status,
		sub.EndDate,
		sub.UserID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *subscriptionRepository) GetByUserID(ctx context.Context, userID string) (*domain.Subscription, error) {
	const query = `
        SELECT id, user_id, plan, status, start_date, end_date, created_at, updated_at
        FROM subscriptions WHERE user_id=$1`

	var sub domain.Subscription
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&sub.ID,
		&sub.UserID,
		&sub.Plan,
		&sub.Status,
		&sub.StartDate,
		&sub.EndDate,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) List(ctx context.Context, limit, offset int) ([]domain.SubscriptionWithOwner, error) {
	const query = `
        SELECT s.id, s.user_id, s.plan, s.status, s.start_date, s.end_date, s.created_at, s.updated_at,
               u.id, u.name, u.email
        FROM subscriptions s
        JOIN users u ON u.id = s.user_id
        ORDER BY s.created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]domain.SubscriptionWithOwner, 0)
	for rows.Next() {
		var sub domain.SubscriptionWithOwner
		if err := rows.Scan(
			&sub.ID,
			&sub.UserID,
			&sub.Plan,
			&sub.Status,
			&sub.StartDate,
			&sub.EndDate,
			&sub.CreatedAt,
			&sub.UpdatedAt,
			&sub.User.ID,
			&sub.User.Name,
			&sub.User.Email,
		); err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func (r *subscriptionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscriptions`).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
