package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/saas-platform/internal/domain"
)

// FAQRepository defines persistence access for knowledge-base entries.
type FAQRepository interface {
	Create(ctx context.Context, faq *domain.FAQ) error
	Update(ctx context.Context, faq *domain.FAQ) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.FAQ, error)
	// List filters by category when non-nil, newest first.
	List(ctx context.Context, category *string, limit, offset int) ([]domain.FAQ, error)
	Count(ctx context.Context, category *string) (int64, error)
}

type faqRepository struct {
	pool *pgxpool.Pool
}

// NewFAQRepository returns a Postgres-backed implementation.
func NewFAQRepository(pool *pgxpool.Pool) FAQRepository {
	return &faqRepository{pool: pool}
}

func (r *faqRepository) Create(ctx context.Context, faq *domain.FAQ) error {
	const query = `
        INSERT INTO faqs (question, answer, category)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		faq.Question,
		faq.Answer,
		faq.Category,
	).Scan(&faq.ID, &faq.CreatedAt, &faq.UpdatedAt)
}

func (r *faqRepository) Update(ctx context.Context, faq *domain.FAQ) error {
	const query = `
        UPDATE faqs SET question=$1, answer=$2, category=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		faq.Question,
		faq.Answer,
		faq.Category,
		faq.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *faqRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM faqs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *faqRepository) GetByID(ctx context.Context, id string) (*domain.FAQ, error) {
	const query = `
        SELECT id, question, answer, category, created_at, updated_at
        FROM faqs WHERE id=$1`

	var faq domain.FAQ
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&faq.ID,
		&faq.Question,
		&faq.Answer,
		&faq.Category,
		&faq.CreatedAt,
		&faq.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *faqRepository) List(ctx context.Context, category *string, limit, offset int) ([]domain.FAQ, error) {
	const query = `
        SELECT id, question, answer, category, created_at, updated_at
        FROM faqs
        WHERE ($1::text IS NULL OR category=$1)
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, category, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	faqs := make([]domain.FAQ, 0)
	for rows.Next() {
		var faq domain.FAQ
		if err := rows.Scan(
			&faq.ID,
			&faq.Question,
			&faq.Answer,
			&faq.Category,
			&faq.CreatedAt,
			&faq.UpdatedAt,
		); err != nil {
			return nil, err
		}
		faqs = append(faqs, faq)
	}
	return faqs, rows.Err()
}

func (r *faqRepository) Count(ctx context.Context, category *string) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM faqs WHERE ($1::text IS NULL OR category=$1)`,
		category,
	).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
