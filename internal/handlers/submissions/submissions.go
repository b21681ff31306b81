package submissions

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/AlexLemna/chorebank/internal/dto"
	"github.com/AlexLemna/chorebank/internal/quota"
	submissionservice "github.com/AlexLemna/chorebank/internal/service/submissionservice"
	"github.com/AlexLemna/chorebank/pkg/auth"
	"github.com/AlexLemna/chorebank/pkg/utils"
)

type Service interface {
	SubmitBatch(ctx context.Context, userID int, claims map[int]submissionservice.Claim, day time.Time) ([]string, []submissionservice.Rejection, error)
	GetAvailability(ctx context.Context, userID int, day time.Time) (map[int]quota.Availability, error)
}

type SubmissionHandler struct {
	submissionService Service
	now               func() time.Time
}

func New(submissionService Service) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		now:               time.Now,
	}
}

// Submit godoc
//
//	@Summary		Submit chore completions
//	@Description	Batch-submit today's chore claims; quota rejections come back as warnings
//	@Tags			Submissions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitRequestDTO	true	"Claims keyed by chore template id"
//	@Success		200		{object}	dto.SubmitResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/child/submissions [post]
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(auth.UserIDKey).(int)
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.SubmitRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	claims := make(map[int]submissionservice.Claim, len(req.Claims))
	for choreID, claim := range req.Claims {
		claims[choreID] = submissionservice.Claim{Count: claim.Count, Note: claim.Note}
	}

	submitted, rejections, err := h.submissionService.SubmitBatch(r.Context(), userID, claims, h.now().UTC())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit chores")
		return
	}

	resp := dto.SubmitResponseDTO{Submitted: submitted}
	for _, rejection := range rejections {
		resp.Warnings = append(resp.Warnings, dto.SubmissionWarningDTO{
			ChoreID:   rejection.ChoreID,
			ChoreName: rejection.ChoreName,
			Reason:    rejection.Reason,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}
