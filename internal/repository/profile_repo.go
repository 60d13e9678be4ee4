package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Skbaji74/scan-nourish-ai/internal/domain"
)

// HealthProfileRepository persiste el perfil de salud por usuario.
// Cada escritura sobrescribe el registro completo: no hay merge.
type HealthProfileRepository interface {
	Upsert(ctx context.Context, profile domain.HealthProfile) error
	GetByUserID(ctx context.Context, userID string) (domain.HealthProfile, error)
}

type PgHealthProfileRepository struct {
	pool *pgxpool.Pool
}

func NewPgHealthProfileRepository(pool *pgxpool.Pool) *PgHealthProfileRepository {
	return &PgHealthProfileRepository{pool: pool}
}

func (r *PgHealthProfileRepository) Upsert(ctx context.Context, profile domain.HealthProfile) error {
	const query = `
		INSERT INTO health_profiles (user_id, name, age, weight, height, allergies, conditions, preferences, other_allergies, other_conditions, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			weight = EXCLUDED.weight,
			height = EXCLUDED.height,
			allergies = EXCLUDED.allergies,
			conditions = EXCLUDED.conditions,
			preferences = EXCLUDED.preferences,
			other_allergies = EXCLUDED.other_allergies,
			other_conditions = EXCLUDED.other_conditions,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Age,
		profile.Weight,
		profile.Height,
		profile.Allergies,
		profile.Conditions,
		profile.Preferences,
		profile.OtherAllergies,
		profile.OtherConditions,
		profile.UpdatedAt,
	)
	return err
}

func (r *PgHealthProfileRepository) GetByUserID(ctx context.Context, userID string) (domain.HealthProfile, error) {
	const query = `
		SELECT user_id, name, age, weight, height, allergies, conditions, preferences, other_allergies, other_conditions, updated_at
		FROM health_profiles
		WHERE user_id = $1
	`
	var profile domain.HealthProfile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Age,
		&profile.Weight,
		&profile.Height,
		&profile.Allergies,
		&profile.Conditions,
		&profile.Preferences,
		&profile.OtherAllergies,
		&profile.OtherConditions,
		&profile.UpdatedAt,
	)
	if err != nil {
		return domain.HealthProfile{}, err
	}
	return profile, nil
}
