package store

import (
	"context"

	"remitmatch/internal/models"
)

type RatingStore struct {
	db DB
}

func NewRatingStore(db DB) *RatingStore {
	return &RatingStore{db: db}
}

func (s *RatingStore) Create(ctx context.Context, rating models.Rating) error {
	query := `
		INSERT INTO ratings (id, rater_id, rated_user_id, transaction_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		rating.ID, rating.RaterID, rating.RatedUserID, rating.TransactionID,
		rating.Rating, rating.Comment, rating.CreatedAt,
	)
	return err
}

func (s *RatingStore) ListByRatedUser(ctx context.Context, userID string, limit int) ([]models.Rating, error) {
	ratings := []models.Rating{}
	err := s.db.SelectContext(ctx, &ratings,
		`SELECT id, rater_id, rated_user_id, transaction_id, rating, comment, created_at FROM ratings WHERE rated_user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	return ratings, err
}

// ScoresForUser returns every score ever recorded against the user, the
// full history the aggregate is recomputed from.
func (s *RatingStore) ScoresForUser(ctx context.Context, userID string) ([]int64, error) {
	scores := []int64{}
	err := s.db.SelectContext(ctx, &scores,
		`SELECT rating FROM ratings WHERE rated_user_id = $1`, userID)
	return scores, err
}
