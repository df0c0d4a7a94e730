package services

import (
	"context"
	"database/sql"
	"time"

	"remitmatch/internal/models"
)

// LifecycleService owns transaction status transitions past matching:
// the approval request and the moderator's approval. Transitions are
// unconditional field writes; callers are trusted to sequence them, so
// repeating a transition succeeds silently.
type LifecycleService struct {
	transactions TransactionStore
	users        UserStore
	now          func() time.Time
}

func NewLifecycleService(transactions TransactionStore, users UserStore) *LifecycleService {
	return &LifecycleService{
		transactions: transactions,
		users:        users,
		now:          time.Now,
	}
}

// RequestApproval moves both sides of a matched pair to pending_approval.
func (s *LifecycleService) RequestApproval(ctx context.Context, transactionID, matchID string) error {
	if err := canRequestApproval(transactionID, matchID); err != nil {
		return err
	}
	if err := s.transactions.SetStatus(ctx, transactionID, models.StatusPendingApproval); err != nil {
		return err
	}
	return s.transactions.SetStatus(ctx, matchID, models.StatusPendingApproval)
}

// Approve marks a transaction approved, recording the moderator and the
// approval time. The acting user must resolve to a moderator; anything
// else is ErrAccessDenied and the transaction is left untouched.
func (s *LifecycleService) Approve(ctx context.Context, transactionID, moderatorID string) error {
	moderator, err := s.users.GetByID(ctx, moderatorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrAccessDenied
		}
		return err
	}
	if moderator.Role != models.RoleModerator {
		return ErrAccessDenied
	}
	if err := canApprove(transactionID, moderatorID); err != nil {
		return err
	}
	return s.transactions.Approve(ctx, transactionID, moderatorID, s.now().UTC())
}
