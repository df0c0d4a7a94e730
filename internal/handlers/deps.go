package handlers

import (
	"context"

	"remitmatch/internal/models"
	"remitmatch/internal/services"
)

type UserStore interface {
	Create(ctx context.Context, user models.User) error
	GetByID(ctx context.Context, userID string) (models.User, error)
	List(ctx context.Context, limit int) ([]models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
}

type TransactionStore interface {
	Create(ctx context.Context, transaction models.Transaction) error
	GetByID(ctx context.Context, transactionID string) (models.Transaction, error)
	List(ctx context.Context, city, status string, limit int) ([]models.Transaction, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
}

type ChatStore interface {
	Create(ctx context.Context, message models.ChatMessage) error
	ListByTransaction(ctx context.Context, transactionID string, limit int) ([]models.ChatMessage, error)
}

type RatingStore interface {
	ListByRatedUser(ctx context.Context, userID string, limit int) ([]models.Rating, error)
}

type MatchService interface {
	FindCandidates(ctx context.Context, transactionID string) ([]models.Transaction, error)
	CreateMatch(ctx context.Context, transactionID, matchID, actingUserID string) error
}

type LifecycleService interface {
	RequestApproval(ctx context.Context, transactionID, matchID string) error
	Approve(ctx context.Context, transactionID, moderatorID string) error
}

type RatingService interface {
	Submit(ctx context.Context, req services.SubmitRatingRequest) (models.Rating, error)
}
