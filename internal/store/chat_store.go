package store

import (
	"context"

	"remitmatch/internal/models"
)

type ChatStore struct {
	db DB
}

func NewChatStore(db DB) *ChatStore {
	return &ChatStore{db: db}
}

func (s *ChatStore) Create(ctx context.Context, message models.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, transaction_id, sender_id, receiver_id, message, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		message.ID, message.TransactionID, message.SenderID, message.ReceiverID,
		message.Message, message.Timestamp,
	)
	return err
}

// ListByTransaction returns a transaction's thread oldest first.
func (s *ChatStore) ListByTransaction(ctx context.Context, transactionID string, limit int) ([]models.ChatMessage, error) {
	messages := []models.ChatMessage{}
	err := s.db.SelectContext(ctx, &messages,
		`SELECT id, transaction_id, sender_id, receiver_id, message, timestamp FROM chat_messages WHERE transaction_id = $1 ORDER BY timestamp ASC LIMIT $2`,
		transactionID, limit)
	return messages, err
}
