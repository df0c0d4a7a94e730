package store

import (
	"context"
	"fmt"
	"time"

	"remitmatch/internal/models"
)

const transactionColumns = `id, user_id, title, description, amount, currency, from_city, to_city, recipient_name, recipient_details, status, matched_transaction_id, matched_user_id, created_at, approved_by, approved_at`

type TransactionStore struct {
	db DB
}

func NewTransactionStore(db DB) *TransactionStore {
	return &TransactionStore{db: db}
}

func (s *TransactionStore) Create(ctx context.Context, transaction models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, title, description, amount, currency, from_city, to_city, recipient_name, recipient_details, status, matched_transaction_id, matched_user_id, created_at, approved_by, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := s.db.ExecContext(ctx, query,
		transaction.ID, transaction.UserID, transaction.Title, transaction.Description,
		transaction.Amount, transaction.Currency, transaction.FromCity, transaction.ToCity,
		transaction.RecipientName, transaction.RecipientDetails, transaction.Status,
		transaction.MatchedTransactionID, transaction.MatchedUserID, transaction.CreatedAt,
		transaction.ApprovedBy, transaction.ApprovedAt,
	)
	return err
}

func (s *TransactionStore) GetByID(ctx context.Context, transactionID string) (models.Transaction, error) {
	var transaction models.Transaction
	err := s.db.GetContext(ctx, &transaction,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, transactionID)
	return transaction, err
}

// List returns transactions newest first, optionally narrowed to a city
// (either endpoint) and a status.
func (s *TransactionStore) List(ctx context.Context, city, status string, limit int) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	query := `SELECT ` + transactionColumns + ` FROM transactions`
	clause := " WHERE"
	args := []any{}
	if city != "" {
		args = append(args, city)
		query += clause + " (from_city = $1 OR to_city = $1)"
		clause = " AND"
	}
	if status != "" {
		args = append(args, status)
		query += clause + " status = $" + itoa(len(args))
	}
	args = append(args, limit)
	query += " ORDER BY created_at DESC LIMIT $" + itoa(len(args))
	err := s.db.SelectContext(ctx, &transactions, query, args...)
	return transactions, err
}

func (s *TransactionStore) ListByUser(ctx context.Context, userID string, limit int) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	err := s.db.SelectContext(ctx, &transactions,
		`SELECT `+transactionColumns+` FROM transactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	return transactions, err
}

// FindOpposite returns active transactions running from fromCity to toCity,
// excluding excludeID.
func (s *TransactionStore) FindOpposite(ctx context.Context, fromCity, toCity, excludeID string, limit int) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	err := s.db.SelectContext(ctx, &transactions,
		`SELECT `+transactionColumns+` FROM transactions WHERE from_city = $1 AND to_city = $2 AND status = $3 AND id <> $4 LIMIT $5`,
		fromCity, toCity, models.StatusActive, excludeID, limit)
	return transactions, err
}

// MarkMatched binds a transaction to its counterparty. matchedUserID is
// only recorded for the side that initiated the match.
func (s *TransactionStore) MarkMatched(ctx context.Context, transactionID, matchedTransactionID string, matchedUserID *string) error {
	if matchedUserID != nil {
		_, err := s.db.ExecContext(ctx,
			`UPDATE transactions SET status = $1, matched_transaction_id = $2, matched_user_id = $3 WHERE id = $4`,
			models.StatusMatched, matchedTransactionID, *matchedUserID, transactionID)
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET status = $1, matched_transaction_id = $2 WHERE id = $3`,
		models.StatusMatched, matchedTransactionID, transactionID)
	return err
}

func (s *TransactionStore) SetStatus(ctx context.Context, transactionID, status string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET status = $1 WHERE id = $2`, status, transactionID)
	return err
}

func (s *TransactionStore) Approve(ctx context.Context, transactionID, moderatorID string, approvedAt time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE transactions SET status = $1, approved_by = $2, approved_at = $3 WHERE id = $4`,
		models.StatusApproved, moderatorID, approvedAt, transactionID)
	return err
}

func itoa(value int) string {
	return fmt.Sprintf("%d", value)
}
