package handlers

import (
	"context"

	"remitmatch/internal/config"
	"remitmatch/internal/models"
	"remitmatch/internal/services"
)

type stubUserStore struct {
	createFn  func(ctx context.Context, user models.User) error
	getByIDFn func(ctx context.Context, userID string) (models.User, error)
	listFn    func(ctx context.Context, limit int) ([]models.User, error)
	existsFn  func(ctx context.Context, username, email string) (bool, error)
}

func (s stubUserStore) Create(ctx context.Context, user models.User) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, user)
}

func (s stubUserStore) GetByID(ctx context.Context, userID string) (models.User, error) {
	if s.getByIDFn == nil {
		return models.User{}, nil
	}
	return s.getByIDFn(ctx, userID)
}

func (s stubUserStore) List(ctx context.Context, limit int) ([]models.User, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, limit)
}

func (s stubUserStore) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	if s.existsFn == nil {
		return false, nil
	}
	return s.existsFn(ctx, username, email)
}

type stubTransactionStore struct {
	createFn     func(ctx context.Context, transaction models.Transaction) error
	getByIDFn    func(ctx context.Context, transactionID string) (models.Transaction, error)
	listFn       func(ctx context.Context, city, status string, limit int) ([]models.Transaction, error)
	listByUserFn func(ctx context.Context, userID string, limit int) ([]models.Transaction, error)
}

func (s stubTransactionStore) Create(ctx context.Context, transaction models.Transaction) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, transaction)
}

func (s stubTransactionStore) GetByID(ctx context.Context, transactionID string) (models.Transaction, error) {
	if s.getByIDFn == nil {
		return models.Transaction{}, nil
	}
	return s.getByIDFn(ctx, transactionID)
}

func (s stubTransactionStore) List(ctx context.Context, city, status string, limit int) ([]models.Transaction, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, city, status, limit)
}

func (s stubTransactionStore) ListByUser(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	if s.listByUserFn == nil {
		return nil, nil
	}
	return s.listByUserFn(ctx, userID, limit)
}

type stubChatStore struct {
	createFn func(ctx context.Context, message models.ChatMessage) error
	listFn   func(ctx context.Context, transactionID string, limit int) ([]models.ChatMessage, error)
}

func (s stubChatStore) Create(ctx context.Context, message models.ChatMessage) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(ctx, message)
}

func (s stubChatStore) ListByTransaction(ctx context.Context, transactionID string, limit int) ([]models.ChatMessage, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, transactionID, limit)
}

type stubRatingStore struct {
	listFn func(ctx context.Context, userID string, limit int) ([]models.Rating, error)
}

func (s stubRatingStore) ListByRatedUser(ctx context.Context, userID string, limit int) ([]models.Rating, error) {
	if s.listFn == nil {
		return nil, nil
	}
	return s.listFn(ctx, userID, limit)
}

type stubMatchService struct {
	findCandidatesFn func(ctx context.Context, transactionID string) ([]models.Transaction, error)
	createMatchFn    func(ctx context.Context, transactionID, matchID, actingUserID string) error
}

func (s stubMatchService) FindCandidates(ctx context.Context, transactionID string) ([]models.Transaction, error) {
	if s.findCandidatesFn == nil {
		return nil, nil
	}
	return s.findCandidatesFn(ctx, transactionID)
}

func (s stubMatchService) CreateMatch(ctx context.Context, transactionID, matchID, actingUserID string) error {
	if s.createMatchFn == nil {
		return nil
	}
	return s.createMatchFn(ctx, transactionID, matchID, actingUserID)
}

type stubLifecycleService struct {
	requestApprovalFn func(ctx context.Context, transactionID, matchID string) error
	approveFn         func(ctx context.Context, transactionID, moderatorID string) error
}

func (s stubLifecycleService) RequestApproval(ctx context.Context, transactionID, matchID string) error {
	if s.requestApprovalFn == nil {
		return nil
	}
	return s.requestApprovalFn(ctx, transactionID, matchID)
}

func (s stubLifecycleService) Approve(ctx context.Context, transactionID, moderatorID string) error {
	if s.approveFn == nil {
		return nil
	}
	return s.approveFn(ctx, transactionID, moderatorID)
}

type stubRatingService struct {
	submitFn func(ctx context.Context, req services.SubmitRatingRequest) (models.Rating, error)
}

func (s stubRatingService) Submit(ctx context.Context, req services.SubmitRatingRequest) (models.Rating, error) {
	if s.submitFn == nil {
		return models.Rating{}, nil
	}
	return s.submitFn(ctx, req)
}

func newTestHandler(users UserStore, transactions TransactionStore, chat ChatStore, ratings RatingStore, matcher MatchService, lifecycle LifecycleService, rater RatingService) *Handler {
	cfg := config.Config{
		AppEnv:         "test",
		Port:           "0",
		AllowedOrigins: "*",
	}
	return New(cfg, users, transactions, chat, ratings, matcher, lifecycle, rater)
}
