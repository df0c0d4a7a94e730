package services

import (
	"context"
	"time"

	"remitmatch/internal/models"

	"github.com/shopspring/decimal"
)

type stubTransactionStore struct {
	getByIDFn      func(ctx context.Context, transactionID string) (models.Transaction, error)
	findOppositeFn func(ctx context.Context, fromCity, toCity, excludeID string, limit int) ([]models.Transaction, error)
	markMatchedFn  func(ctx context.Context, transactionID, matchedTransactionID string, matchedUserID *string) error
	setStatusFn    func(ctx context.Context, transactionID, status string) error
	approveFn      func(ctx context.Context, transactionID, moderatorID string, approvedAt time.Time) error
}

func (s stubTransactionStore) GetByID(ctx context.Context, transactionID string) (models.Transaction, error) {
	if s.getByIDFn == nil {
		return models.Transaction{}, nil
	}
	return s.getByIDFn(ctx, transactionID)
}

func (s stubTransactionStore) FindOpposite(ctx context.Context, fromCity, toCity, excludeID string, limit int) ([]models.Transaction, error) {
	if s.findOppositeFn == nil {
		return nil, nil
	}
	return s.findOppositeFn(ctx, fromCity, toCity, excludeID, limit)
}

func (s stubTransactionStore) MarkMatched(ctx context.Context, transactionID, matchedTransactionID string, matchedUserID *string) error {
	if s.markMatchedFn == nil {
		return nil
	}
	return s.markMatchedFn(ctx, transactionID, matchedTransactionID, matchedUserID)
}

func (s stubTransactionStore) SetStatus(ctx context.Context, transactionID, status string) error {
	if s.setStatusFn == nil {
		return nil
	}
	return s.setStatusFn(ctx, transactionID, status)
}

func (s stubTransactionStore) Approve(ctx context.Context, transactionID, moderatorID string, approvedAt time.Time) error {
	if s.approveFn == nil {
		return nil
	}
	return s.approveFn(ctx, transactionID, moderatorID, approvedAt)
}

type stubUserStore struct {
	getByIDFn func(ctx context.Context, userID string) (models.User, error)
}

func (s stubUserStore) GetByID(ctx context.Context, userID string) (models.User, error) {
	if s.getByIDFn == nil {
		return models.User{}, nil
	}
	return s.getByIDFn(ctx, userID)
}

type stubRatingStore struct {
	createFn func(ctx context.Context, rating models.Rating) error
	scoresFn func(ctx context.Context, userID string) ([]int64, error)
}

func (s stubRatingStore) Create(ctx context.Context, rating models.Rating) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, rating)
}

func (s stubRatingStore) ScoresForUser(ctx context.Context, userID string) ([]int64, error) {
	if s.scoresFn == nil {
		return nil, nil
	}
	return s.scoresFn(ctx, userID)
}

type stubRatedUserStore struct {
	updateRatingFn func(ctx context.Context, userID string, rating decimal.Decimal) error
}

func (s stubRatedUserStore) UpdateRating(ctx context.Context, userID string, rating decimal.Decimal) error {
	if s.updateRatingFn == nil {
		return nil
	}
	return s.updateRatingFn(ctx, userID, rating)
}
