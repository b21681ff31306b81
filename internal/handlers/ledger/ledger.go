package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/AlexLemna/chorebank/internal/domain"
	"github.com/AlexLemna/chorebank/internal/dto"
	"github.com/AlexLemna/chorebank/internal/quota"
	ledgerservice "github.com/AlexLemna/chorebank/internal/service/ledgerservice"
	"github.com/AlexLemna/chorebank/pkg/auth"
	"github.com/AlexLemna/chorebank/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Approve(ctx context.Context, submissionID int) error
	RecordFine(ctx context.Context, userID int, description string, amount float64) error
	RecordPayment(ctx context.Context, userID int, amount float64) error
	GetDashboardSummary(ctx context.Context, userID int) (*ledgerservice.DashboardSummary, error)
	Child(ctx context.Context) (*domain.User, error)
}

type SubmissionService interface {
	GetAvailability(ctx context.Context, userID int, day time.Time) (map[int]quota.Availability, error)
}

type ChoreService interface {
	ListAll(ctx context.Context) ([]domain.ChoreTemplate, error)
	ListActive(ctx context.Context) ([]domain.ChoreTemplate, error)
}

type LedgerHandler struct {
	ledgerService     Service
	submissionService SubmissionService
	choreService      ChoreService
	now               func() time.Time
}

func New(ledgerService Service, submissionService SubmissionService, choreService ChoreService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService:     ledgerService,
		submissionService: submissionService,
		choreService:      choreService,
		now:               time.Now,
	}
}

func toSubmissionDTOs(submissions []domain.Submission, choreNames map[int]string) []dto.SubmissionResponseDTO {
	out := make([]dto.SubmissionResponseDTO, 0, len(submissions))
	for _, sub := range submissions {
		out = append(out, dto.SubmissionResponseDTO{
			ID:          sub.ID,
			ChoreID:     sub.ChoreTemplateID,
			ChoreName:   choreNames[sub.ChoreTemplateID],
			Status:      sub.Status,
			SubmittedAt: sub.SubmittedAt,
			ApprovedAt:  sub.ApprovedAt,
			Note:        sub.Note,
		})
	}
	return out
}

func toDashboardDTO(summary *ledgerservice.DashboardSummary, choreNames map[int]string) dto.DashboardResponseDTO {
	resp := dto.DashboardResponseDTO{
		Balance:            summary.Balance,
		PendingEarnings:    summary.PendingEarnings,
		ApprovedEarnings:   summary.ApprovedEarnings,
		TotalFines:         summary.TotalFines,
		TotalPayments:      summary.TotalPayments,
		Submissions:        toSubmissionDTOs(summary.Submissions, choreNames),
		PendingSubmissions: toSubmissionDTOs(summary.PendingSubmissions, choreNames),
		Transactions:       make([]dto.TransactionResponseDTO, 0, len(summary.Transactions)),
	}
	for _, txn := range summary.Transactions {
		resp.Transactions = append(resp.Transactions, dto.TransactionResponseDTO{
			ID:          txn.ID,
			Kind:        txn.Kind,
			Description: txn.Description,
			Amount:      txn.Amount,
			CreatedAt:   txn.CreatedAt,
		})
	}
	return resp
}

func (h *LedgerHandler) choreNames(ctx context.Context) (map[int]string, error) {
	templates, err := h.choreService.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(templates))
	for _, tpl := range templates {
		names[tpl.ID] = tpl.Name
	}
	return names, nil
}

// GetChildDashboard godoc
//
//	@Summary		Child dashboard
//	@Description	Balance, history and today's chore availability for the signed-in child
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	dto.ChildDashboardResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/child/dashboard [get]
func (h *LedgerHandler) GetChildDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	summary, err := h.ledgerService.GetDashboardSummary(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	names, err := h.choreNames(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	day := h.now().UTC()
	availability, err := h.submissionService.GetAvailability(r.Context(), userID, day)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	active, err := h.choreService.ListActive(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	resp := dto.ChildDashboardResponseDTO{
		DashboardResponseDTO: toDashboardDTO(summary, names),
		Chores:               make([]dto.ChildChoreDTO, 0, len(active)),
	}
	for _, tpl := range active {
		avail := availability[tpl.ID]
		resp.Chores = append(resp.Chores, dto.ChildChoreDTO{
			ID:          tpl.ID,
			Name:        tpl.Name,
			Description: tpl.Description,
			Value:       tpl.Value,
			Availability: dto.AvailabilityDTO{
				CanSubmit:  avail.CanSubmit,
				TodayCount: avail.TodayCount,
				Limit:      avail.Limit,
				Remaining:  avail.Remaining,
				Days:       quota.DayAbbreviations(tpl.Limits),
			},
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetParentDashboard godoc
//
//	@Summary		Parent dashboard
//	@Description	The child's balance, submissions and transaction history
//	@Tags			Dashboard
//	@Produce		json
//	@Success		200	{object}	dto.DashboardResponseDTO
//	@Failure		404	{object}	utils.Response	"No child account found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/parent/dashboard [get]
func (h *LedgerHandler) GetParentDashboard(w http.ResponseWriter, r *http.Request) {
	child, err := h.ledgerService.Child(r.Context())
	if err != nil {
		if errors.Is(err, ledgerservice.ErrNoChildAccount) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	summary, err := h.ledgerService.GetDashboardSummary(r.Context(), child.ID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	names, err := h.choreNames(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toDashboardDTO(summary, names))
}

// ApproveSubmission godoc
//
//	@Summary		Approve a submission
//	@Description	Mark a pending submission approved and credit its value; approving twice is harmless
//	@Tags			Ledger
//	@Produce		json
//	@Param			id	path		int	true	"Submission id"
//	@Success		200	{object}	utils.Response
//	@Failure		400	{object}	utils.Response	"Invalid submission id"
//	@Failure		404	{object}	utils.Response	"Submission not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/parent/submissions/{id}/approve [post]
func (h *LedgerHandler) ApproveSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid submission id")
		return
	}
	err = h.ledgerService.Approve(r.Context(), id)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Submission approved"})
	case errors.Is(err, ledgerservice.ErrAlreadyApproved):
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Submission already approved"})
	case errors.Is(err, ledgerservice.ErrSubmissionNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to approve submission")
	}
}

// RecordFine godoc
//
//	@Summary		Record a fine
//	@Description	Deduct a named amount from the child's balance
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.FineRequestDTO	true	"Fine"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"No child account found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/parent/fines [post]
func (h *LedgerHandler) RecordFine(w http.ResponseWriter, r *http.Request) {
	var req dto.FineRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	child, err := h.ledgerService.Child(r.Context())
	if err != nil {
		if errors.Is(err, ledgerservice.ErrNoChildAccount) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record fine")
		return
	}
	err = h.ledgerService.RecordFine(r.Context(), child.ID, req.Description, req.Amount)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Fine recorded"})
	case errors.Is(err, ledgerservice.ErrInvalidAmount), errors.Is(err, ledgerservice.ErrEmptyDescription):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record fine")
	}
}

// RecordPayment godoc
//
//	@Summary		Record a payment
//	@Description	Record money handed to the child, reducing the balance owed
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PaymentRequestDTO	true	"Payment"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"No child account found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/parent/payments [post]
func (h *LedgerHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	child, err := h.ledgerService.Child(r.Context())
	if err != nil {
		if errors.Is(err, ledgerservice.ErrNoChildAccount) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record payment")
		return
	}
	err = h.ledgerService.RecordPayment(r.Context(), child.ID, req.Amount)
	switch {
	case err == nil:
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Payment recorded"})
	case errors.Is(err, ledgerservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record payment")
	}
}
