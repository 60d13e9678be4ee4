package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Skbaji74/scan-nourish-ai/internal/domain"
)

// ScanRepository guarda el historial de analisis por usuario.
type ScanRepository interface {
	Create(ctx context.Context, record domain.ScanRecord) error
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]domain.ScanRecord, error)
}

type PgScanRepository struct {
	pool *pgxpool.Pool
}

func NewPgScanRepository(pool *pgxpool.Pool) *PgScanRepository {
	return &PgScanRepository{pool: pool}
}

func (r *PgScanRepository) Create(ctx context.Context, record domain.ScanRecord) error {
	const query = `
		INSERT INTO scans (id, user_id, score, ingredients, highlights, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		record.ID,
		record.UserID,
		record.Score,
		record.Ingredients,
		record.Highlights,
		record.Summary,
		record.CreatedAt,
	)
	return err
}

func (r *PgScanRepository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]domain.ScanRecord, error) {
	const query = `
		SELECT id, user_id, score, ingredients, highlights, summary, created_at
		FROM scans
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.ScanRecord, 0, limit)
	for rows.Next() {
		var record domain.ScanRecord
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Score,
			&record.Ingredients,
			&record.Highlights,
			&record.Summary,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
