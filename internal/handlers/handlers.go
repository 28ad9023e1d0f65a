package handlers

import (
	"net/http"

	_ "github.com/grandbay/casino-core/docs"
	audithandlers "github.com/grandbay/casino-core/internal/handlers/audit"
	authhandlers "github.com/grandbay/casino-core/internal/handlers/auth"
	exclusionhandlers "github.com/grandbay/casino-core/internal/handlers/exclusion"
	limithandlers "github.com/grandbay/casino-core/internal/handlers/limits"
	transactionhandlers "github.com/grandbay/casino-core/internal/handlers/transactions"
	"github.com/grandbay/casino-core/internal/service"
	"github.com/grandbay/casino-core/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type LimitHandler interface {
	GetLimits(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type ExclusionHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
}

type AuditHandler interface {
	History(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	TransactionHandler TransactionHandler
	LimitHandler       LimitHandler
	ExclusionHandler   ExclusionHandler
	AuditHandler       AuditHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.PlayerService),
		TransactionHandler: transactionhandlers.New(s.TransactionService),
		LimitHandler:       limithandlers.New(s.LimitService),
		ExclusionHandler:   exclusionhandlers.New(s.ExclusionService),
		AuditHandler:       audithandlers.New(s.AuditService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api/player", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/transactions", func(r chi.Router) {
				r.Post("/", h.TransactionHandler.Process)
				r.Get("/", h.TransactionHandler.History)
			})
			r.Route("/limits", func(r chi.Router) {
				r.Get("/", h.LimitHandler.GetLimits)
				r.Patch("/", h.LimitHandler.Update)
			})
			r.Post("/self-exclusion", h.ExclusionHandler.Apply)
			r.Get("/audit", h.AuditHandler.History)
		})
	})

	return r
}
