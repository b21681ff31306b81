package handlers

import (
	"net/http"

	_ "github.com/AlexLemna/chorebank/docs"
	"github.com/AlexLemna/chorebank/internal/domain"
	authhandlers "github.com/AlexLemna/chorebank/internal/handlers/auth"
	chorehandlers "github.com/AlexLemna/chorebank/internal/handlers/chores"
	ledgerhandlers "github.com/AlexLemna/chorebank/internal/handlers/ledger"
	submissionhandlers "github.com/AlexLemna/chorebank/internal/handlers/submissions"
	"github.com/AlexLemna/chorebank/internal/metrics"
	"github.com/AlexLemna/chorebank/internal/service"
	"github.com/AlexLemna/chorebank/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type ChoreHandler interface {
	ListChores(w http.ResponseWriter, r *http.Request)
	CreateChore(w http.ResponseWriter, r *http.Request)
	UpdateChore(w http.ResponseWriter, r *http.Request)
	ToggleChore(w http.ResponseWriter, r *http.Request)
}

type SubmissionHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	GetChildDashboard(w http.ResponseWriter, r *http.Request)
	GetParentDashboard(w http.ResponseWriter, r *http.Request)
	ApproveSubmission(w http.ResponseWriter, r *http.Request)
	RecordFine(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	ChoreHandler      ChoreHandler
	SubmissionHandler SubmissionHandler
	LedgerHandler     LedgerHandler

	metrics *metrics.Metrics
}

func New(s *service.Services, m *metrics.Metrics) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		ChoreHandler:      chorehandlers.New(s.ChoreService),
		SubmissionHandler: submissionhandlers.New(s.SubmissionService),
		LedgerHandler:     ledgerhandlers.New(s.LedgerService, s.SubmissionService, s.ChoreService),
		metrics:           m,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		h.metrics.Middleware,
	)
	r.Handle("/metrics", h.metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Route("/child", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.RequireRole(domain.RoleChild))
			r.Get("/dashboard", h.LedgerHandler.GetChildDashboard)
			r.Post("/submissions", h.SubmissionHandler.Submit)
		})

		r.Route("/parent", func(r chi.Router) {
			r.Use(auth.AuthMiddleware, auth.RequireRole(domain.RoleParent))
			r.Get("/dashboard", h.LedgerHandler.GetParentDashboard)
			r.Route("/chores", func(r chi.Router) {
				r.Get("/", h.ChoreHandler.ListChores)
				r.Post("/", h.ChoreHandler.CreateChore)
				r.Put("/{id}", h.ChoreHandler.UpdateChore)
				r.Post("/{id}/toggle", h.ChoreHandler.ToggleChore)
			})
			r.Post("/submissions/{id}/approve", h.LedgerHandler.ApproveSubmission)
			r.Post("/fines", h.LedgerHandler.RecordFine)
			r.Post("/payments", h.LedgerHandler.RecordPayment)
		})
	})

	return r
}
