package services

import (
	"context"
	"time"

	"remitmatch/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RatingStore interface {
	Create(ctx context.Context, rating models.Rating) error
	ScoresForUser(ctx context.Context, userID string) ([]int64, error)
}

type RatedUserStore interface {
	UpdateRating(ctx context.Context, userID string, rating decimal.Decimal) error
}

// RatingService records rating events and keeps the rated user's
// aggregate score consistent with the full rating history. The aggregate
// is recomputed from scratch on every write rather than maintained
// incrementally.
type RatingService struct {
	ratings RatingStore
	users   RatedUserStore
	now     func() time.Time
}

func NewRatingService(ratings RatingStore, users RatedUserStore) *RatingService {
	return &RatingService{
		ratings: ratings,
		users:   users,
		now:     time.Now,
	}
}

type SubmitRatingRequest struct {
	RaterID       string
	RatedUserID   string
	TransactionID string
	Score         int
	Comment       string
}

// Submit appends the rating and rewrites the rated user's aggregate as
// the mean of every score ever recorded for them. The same rater may
// rate the same user for the same transaction again; each event counts.
func (s *RatingService) Submit(ctx context.Context, req SubmitRatingRequest) (models.Rating, error) {
	rating := models.Rating{
		ID:            uuid.NewString(),
		RaterID:       req.RaterID,
		RatedUserID:   req.RatedUserID,
		TransactionID: req.TransactionID,
		Rating:        req.Score,
		Comment:       req.Comment,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.ratings.Create(ctx, rating); err != nil {
		return models.Rating{}, err
	}
	scores, err := s.ratings.ScoresForUser(ctx, req.RatedUserID)
	if err != nil {
		return models.Rating{}, err
	}
	if err := s.users.UpdateRating(ctx, req.RatedUserID, averageScore(scores)); err != nil {
		return models.Rating{}, err
	}
	return rating, nil
}

// averageScore is the aggregate: the exact arithmetic mean of the scores,
// banker-rounded to one decimal place.
func averageScore(scores []int64) decimal.Decimal {
	if len(scores) == 0 {
		return decimal.NewFromInt(5)
	}
	sum := decimal.Zero
	for _, score := range scores {
		sum = sum.Add(decimal.NewFromInt(score))
	}
	return sum.Div(decimal.NewFromInt(int64(len(scores)))).RoundBank(1)
}
