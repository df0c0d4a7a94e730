package store

import (
	"context"

	"remitmatch/internal/models"

	"github.com/shopspring/decimal"
)

const userColumns = `id, username, email, phone, id_document, city, rating, total_transactions, role, verified, created_at`

type UserStore struct {
	db DB
}

func NewUserStore(db DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(ctx context.Context, user models.User) error {
	query := `
		INSERT INTO users (id, username, email, phone, id_document, city, rating, total_transactions, role, verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Username, user.Email, user.Phone, user.IDDocument, user.City,
		user.Rating, user.TotalTransactions, user.Role, user.Verified, user.CreatedAt,
	)
	return err
}

func (s *UserStore) GetByID(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := s.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	return user, err
}

func (s *UserStore) List(ctx context.Context, limit int) ([]models.User, error) {
	users := []models.User{}
	err := s.db.SelectContext(ctx, &users, `SELECT `+userColumns+` FROM users LIMIT $1`, limit)
	return users, err
}

// ExistsByUsernameOrEmail reports whether any user already holds either
// the username or the email.
func (s *UserStore) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1 OR email = $2)`, username, email)
	return exists, err
}

func (s *UserStore) UpdateRating(ctx context.Context, userID string, rating decimal.Decimal) error {
	_, err := s.db.ExecContext(ctx, `UPDATE users SET rating = $1 WHERE id = $2`, rating, userID)
	return err
}
