package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"remitmatch/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrAccessDenied        = errors.New("access denied")
)

// candidateLimit caps the result of a candidate search.
const candidateLimit = 50

type TransactionStore interface {
	GetByID(ctx context.Context, transactionID string) (models.Transaction, error)
	FindOpposite(ctx context.Context, fromCity, toCity, excludeID string, limit int) ([]models.Transaction, error)
	MarkMatched(ctx context.Context, transactionID, matchedTransactionID string, matchedUserID *string) error
	SetStatus(ctx context.Context, transactionID, status string) error
	Approve(ctx context.Context, transactionID, moderatorID string, approvedAt time.Time) error
}

type UserStore interface {
	GetByID(ctx context.Context, userID string) (models.User, error)
}

// MatchService discovers counterparty transactions and binds matched
// pairs. Two transactions are compatible when their routes run in
// opposite directions: funds flowing A→B offset funds flowing B→A, so
// neither side needs a cross-border transfer.
type MatchService struct {
	transactions TransactionStore
}

func NewMatchService(transactions TransactionStore) *MatchService {
	return &MatchService{transactions: transactions}
}

// FindCandidates returns every other active transaction whose route is
// the exact reverse of the given transaction's, capped at 50. Amount,
// currency and owner are not constrained; reconciling those is left to
// the parties in chat.
func (s *MatchService) FindCandidates(ctx context.Context, transactionID string) ([]models.Transaction, error) {
	transaction, err := s.transactions.GetByID(ctx, transactionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return s.transactions.FindOpposite(ctx, transaction.ToCity, transaction.FromCity, transaction.ID, candidateLimit)
}

// CreateMatch binds the two transactions together: both become matched
// and reference each other, and the initiating side records the
// counterparty's acting user. The two updates are independent writes.
func (s *MatchService) CreateMatch(ctx context.Context, transactionID, matchID, actingUserID string) error {
	if err := canBindMatch(transactionID, matchID, actingUserID); err != nil {
		return err
	}
	if err := s.transactions.MarkMatched(ctx, transactionID, matchID, &actingUserID); err != nil {
		return err
	}
	return s.transactions.MarkMatched(ctx, matchID, transactionID, nil)
}
