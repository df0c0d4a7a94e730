package services

import (
	"context"
	"testing"

	"remitmatch/internal/models"

	"github.com/shopspring/decimal"
)

func TestAverageScore(t *testing.T) {
	cases := []struct {
		name   string
		scores []int64
		want   string
	}{
		{"two scores", []int64{5, 4}, "4.5"},
		{"repeating third rounds down", []int64{5, 4, 4}, "4.3"},
		{"single score", []int64{3}, "3"},
		{"all fives", []int64{5, 5, 5, 5}, "5"},
		{"repeating up", []int64{5, 5, 4}, "4.7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := averageScore(tc.scores)
			if !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("averageScore(%v) = %s, want %s", tc.scores, got, tc.want)
			}
		})
	}
}

func TestSubmitRecomputesAggregateFromFullHistory(t *testing.T) {
	ctx := context.Background()
	var created models.Rating
	var updatedUser string
	var updatedRating decimal.Decimal
	service := NewRatingService(stubRatingStore{
		createFn: func(_ context.Context, rating models.Rating) error {
			created = rating
			return nil
		},
		scoresFn: func(_ context.Context, userID string) ([]int64, error) {
			if userID != "user-2" {
				t.Fatalf("unexpected rated user: %s", userID)
			}
			return []int64{5, 4}, nil
		},
	}, stubRatedUserStore{
		updateRatingFn: func(_ context.Context, userID string, rating decimal.Decimal) error {
			updatedUser = userID
			updatedRating = rating
			return nil
		},
	})

	rating, err := service.Submit(ctx, SubmitRatingRequest{
		RaterID:       "user-1",
		RatedUserID:   "user-2",
		TransactionID: "tx-1",
		Score:         4,
		Comment:       "smooth settlement",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rating.ID == "" || rating.CreatedAt.IsZero() {
		t.Fatalf("rating must get an id and timestamp: %#v", rating)
	}
	if created.RaterID != "user-1" || created.RatedUserID != "user-2" || created.Rating != 4 {
		t.Fatalf("unexpected stored rating: %#v", created)
	}
	if updatedUser != "user-2" {
		t.Fatalf("unexpected aggregate target: %s", updatedUser)
	}
	if !updatedRating.Equal(decimal.RequireFromString("4.5")) {
		t.Fatalf("unexpected aggregate: %s", updatedRating)
	}
}

func TestSubmitAllowsRepeatRatings(t *testing.T) {
	ctx := context.Background()
	creates := 0
	service := NewRatingService(stubRatingStore{
		createFn: func(_ context.Context, _ models.Rating) error {
			creates++
			return nil
		},
		scoresFn: func(_ context.Context, _ string) ([]int64, error) {
			return []int64{5, 5}, nil
		},
	}, stubRatedUserStore{})
	req := SubmitRatingRequest{RaterID: "user-1", RatedUserID: "user-2", TransactionID: "tx-1", Score: 5}
	if _, err := service.Submit(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.Submit(ctx, req); err != nil {
		t.Fatalf("repeat rating must be accepted: %v", err)
	}
	if creates != 2 {
		t.Fatalf("expected 2 rating records, got %d", creates)
	}
}
