package store

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"remitmatch/internal/models"

	"github.com/shopspring/decimal"
)

func TestUserStoreCreate(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(stubDB{
		execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO users") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 11 || args[0] != "user-1" || args[1] != "alice" {
				t.Fatalf("unexpected args: %#v", args)
			}
			return stubResult{rows: 1}, nil
		},
	})
	user := models.User{ID: "user-1", Username: "alice", Email: "alice@example.com", City: "London", Rating: 5.0, Role: models.RoleUser}
	if err := store.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserStoreGetByID(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(stubDB{
		getFn: func(_ context.Context, dest any, query string, args ...any) error {
			if !strings.Contains(query, "FROM users WHERE id = $1") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 1 || args[0] != "user-1" {
				t.Fatalf("unexpected args: %#v", args)
			}
			user := dest.(*models.User)
			*user = models.User{ID: "user-1", Username: "alice"}
			return nil
		},
	})
	user, err := store.GetByID(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("unexpected user: %#v", user)
	}
}

func TestUserStoreExistsByUsernameOrEmail(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(stubDB{
		getFn: func(_ context.Context, dest any, query string, args ...any) error {
			if !strings.Contains(query, "WHERE username = $1 OR email = $2") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 2 || args[0] != "alice" || args[1] != "alice@example.com" {
				t.Fatalf("unexpected args: %#v", args)
			}
			*dest.(*bool) = true
			return nil
		},
	})
	exists, err := store.ExistsByUsernameOrEmail(ctx, "alice", "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists")
	}
}

func TestUserStoreUpdateRating(t *testing.T) {
	ctx := context.Background()
	store := NewUserStore(stubDB{
		execFn: func(_ context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "UPDATE users SET rating = $1 WHERE id = $2") {
				t.Fatalf("unexpected query: %s", query)
			}
			if len(args) != 2 || args[1] != "user-1" {
				t.Fatalf("unexpected args: %#v", args)
			}
			return stubResult{rows: 1}, nil
		},
	})
	if err := store.UpdateRating(ctx, "user-1", decimal.RequireFromString("4.5")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
