package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction status values. Every transaction starts as StatusActive.
// StatusCompleted and StatusCancelled are reserved terminal states with no
// producing transition in this service.
const (
	StatusActive          = "active"
	StatusMatched         = "matched"
	StatusPendingApproval = "pending_approval"
	StatusApproved        = "approved"
	StatusCompleted       = "completed"
	StatusCancelled       = "cancelled"
)

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
)

type User struct {
	ID                string    `db:"id" json:"id"`
	Username          string    `db:"username" json:"username"`
	Email             string    `db:"email" json:"email"`
	Phone             string    `db:"phone" json:"phone"`
	IDDocument        string    `db:"id_document" json:"id_document"`
	City              string    `db:"city" json:"city"`
	Rating            float64   `db:"rating" json:"rating"`
	TotalTransactions int       `db:"total_transactions" json:"total_transactions"`
	Role              string    `db:"role" json:"role"`
	Verified          bool      `db:"verified" json:"verified"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

type Transaction struct {
	ID                   string          `db:"id" json:"id"`
	UserID               string          `db:"user_id" json:"user_id"`
	Title                string          `db:"title" json:"title"`
	Description          string          `db:"description" json:"description"`
	Amount               decimal.Decimal `db:"amount" json:"amount"`
	Currency             string          `db:"currency" json:"currency"`
	FromCity             string          `db:"from_city" json:"from_city"`
	ToCity               string          `db:"to_city" json:"to_city"`
	RecipientName        string          `db:"recipient_name" json:"recipient_name"`
	RecipientDetails     string          `db:"recipient_details" json:"recipient_details"`
	Status               string          `db:"status" json:"status"`
	MatchedTransactionID *string         `db:"matched_transaction_id" json:"matched_transaction_id"`
	MatchedUserID        *string         `db:"matched_user_id" json:"matched_user_id"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
	ApprovedBy           *string         `db:"approved_by" json:"approved_by"`
	ApprovedAt           *time.Time      `db:"approved_at" json:"approved_at"`
}

type ChatMessage struct {
	ID            string    `db:"id" json:"id"`
	TransactionID string    `db:"transaction_id" json:"transaction_id"`
	SenderID      string    `db:"sender_id" json:"sender_id"`
	ReceiverID    string    `db:"receiver_id" json:"receiver_id"`
	Message       string    `db:"message" json:"message"`
	Timestamp     time.Time `db:"timestamp" json:"timestamp"`
}

type Rating struct {
	ID            string    `db:"id" json:"id"`
	RaterID       string    `db:"rater_id" json:"rater_id"`
	RatedUserID   string    `db:"rated_user_id" json:"rated_user_id"`
	TransactionID string    `db:"transaction_id" json:"transaction_id"`
	Rating        int       `db:"rating" json:"rating"`
	Comment       string    `db:"comment" json:"comment"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
