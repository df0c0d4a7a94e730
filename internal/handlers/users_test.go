package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"remitmatch/internal/models"

	"github.com/go-chi/chi/v5"
)

func TestCreateUser(t *testing.T) {
	var created models.User
	handler := newTestHandler(stubUserStore{
		createFn: func(_ context.Context, user models.User) error {
			created = user
			return nil
		},
	}, stubTransactionStore{}, stubChatStore{}, stubRatingStore{}, stubMatchService{}, stubLifecycleService{}, stubRatingService{})

	body := `{"username":"alice","email":"alice@example.com","phone":"+1555","id_document":"P1234","city":"New York"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.CreateUser(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if created.ID == "" || created.Username != "alice" {
		t.Fatalf("unexpected stored user: %#v", created)
	}
	if created.Rating != 5.0 || created.Role != models.RoleUser || created.Verified {
		t.Fatalf("unexpected defaults: %#v", created)
	}
	var resp models.User
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if resp.ID != created.ID {
		t.Fatalf("response does not echo the record: %#v", resp)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	handler := newTestHandler(stubUserStore{
		existsFn: func(_ context.Context, _, _ string) (bool, error) {
			return true, nil
		},
		createFn: func(_ context.Context, _ models.User) error {
			t.Fatal("create must not be reached")
			return nil
		},
	}, stubTransactionStore{}, stubChatStore{}, stubRatingStore{}, stubMatchService{}, stubLifecycleService{}, stubRatingService{})

	body := `{"username":"alice","email":"alice@example.com","phone":"+1555","id_document":"P1234","city":"New York"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.CreateUser(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "already exists") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestCreateUserInvalidUsername(t *testing.T) {
	handler := newTestHandler(stubUserStore{}, stubTransactionStore{}, stubChatStore{}, stubRatingStore{}, stubMatchService{}, stubLifecycleService{}, stubRatingService{})
	body := `{"username":"x","email":"alice@example.com","phone":"+1555","id_document":"P1234","city":"New York"}`
	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler.CreateUser(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGetUserNotFound(t *testing.T) {
	handler := newTestHandler(stubUserStore{
		getByIDFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, sql.ErrNoRows
		},
	}, stubTransactionStore{}, stubChatStore{}, stubRatingStore{}, stubMatchService{}, stubLifecycleService{}, stubRatingService{})

	req := httptest.NewRequest(http.MethodGet, "/users/missing", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("userID", "missing")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	rr := httptest.NewRecorder()
	handler.GetUser(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestListUsersCapped(t *testing.T) {
	handler := newTestHandler(stubUserStore{
		listFn: func(_ context.Context, limit int) ([]models.User, error) {
			if limit != 100 {
				t.Fatalf("unexpected limit: %d", limit)
			}
			return []models.User{{ID: "user-1"}}, nil
		},
	}, stubTransactionStore{}, stubChatStore{}, stubRatingStore{}, stubMatchService{}, stubLifecycleService{}, stubRatingService{})

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rr := httptest.NewRecorder()
	handler.ListUsers(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
