package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/meltforce/ironlog/internal/models"
)

// GetBodyMetrics returns the user's gender and bodyweight. A user without a
// profile row, or with the fields unfilled, gets zero-value metrics — the
// classifier treats missing fields as "cannot classify", not an error.
func (db *DB) GetBodyMetrics(ctx context.Context, userID int) (models.BodyMetrics, error) {
	var metrics models.BodyMetrics
	var gender *string
	err := db.Pool.QueryRow(ctx,
		`SELECT gender, body_weight_kg FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&gender, &metrics.BodyWeightKg)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.BodyMetrics{}, nil
	}
	if err != nil {
		return models.BodyMetrics{}, fmt.Errorf("querying body metrics: %w", err)
	}
	if gender != nil {
		g := models.Gender(*gender)
		if g.Valid() {
			metrics.Gender = &g
		}
	}
	return metrics, nil
}

// UpsertBodyMetrics stores or updates a user's profile fields. Nil fields
// clear the stored value.
func (db *DB) UpsertBodyMetrics(ctx context.Context, userID int, metrics models.BodyMetrics) error {
	var gender *string
	if metrics.Gender != nil {
		g := string(*metrics.Gender)
		gender = &g
	}
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO profiles (user_id, gender, body_weight_kg, updated_at)
		 VALUES ($1, $2, $3, NOW())
		 ON CONFLICT (user_id) DO UPDATE
		   SET gender = $2, body_weight_kg = $3, updated_at = NOW()`,
		userID, gender, metrics.BodyWeightKg)
	if err != nil {
		return fmt.Errorf("upserting body metrics: %w", err)
	}
	return nil
}
