package handlers

import (
	"net/http"

	"remitmatch/internal/config"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	cfg          config.Config
	users        UserStore
	transactions TransactionStore
	chat         ChatStore
	ratings      RatingStore
	matcher      MatchService
	lifecycle    LifecycleService
	rater        RatingService
}

func New(cfg config.Config, users UserStore, transactions TransactionStore, chat ChatStore, ratings RatingStore, matcher MatchService, lifecycle LifecycleService, rater RatingService) *Handler {
	return &Handler{
		cfg:          cfg,
		users:        users,
		transactions: transactions,
		chat:         chat,
		ratings:      ratings,
		matcher:      matcher,
		lifecycle:    lifecycle,
		rater:        rater,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()
	router.Use(chimiddleware.Logger)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{h.cfg.AllowedOrigins},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Route("/api", func(r chi.Router) {
		r.Post("/users", h.CreateUser)
		r.Get("/users", h.ListUsers)
		r.Get("/users/{userID}", h.GetUser)

		r.Get("/cities", h.GetCities)

		r.Post("/transactions", h.CreateTransaction)
		r.Get("/transactions", h.ListTransactions)
		r.Get("/transactions/user/{userID}", h.ListUserTransactions)
		r.Get("/transactions/{transactionID}", h.GetTransaction)
		r.Get("/transactions/{transactionID}/matches", h.FindMatches)
		r.Post("/transactions/{transactionID}/match/{matchID}", h.CreateMatch)

		r.Post("/chat", h.SendMessage)
		r.Get("/chat/{transactionID}", h.GetThread)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/approve/{transactionID}", h.ApproveTransaction)
			r.Post("/request-approval", h.RequestApproval)
		})

		r.Post("/ratings", h.CreateRating)
		r.Get("/ratings/{userID}", h.ListUserRatings)
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return router
}
