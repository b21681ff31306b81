package chores

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlexLemna/chorebank/internal/domain"
	"github.com/AlexLemna/chorebank/internal/dto"
	"github.com/AlexLemna/chorebank/internal/quota"
	"github.com/AlexLemna/chorebank/internal/service/choreservice"
	"github.com/AlexLemna/chorebank/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Create(ctx context.Context, name, description string, value float64, limits [7]int) (*domain.ChoreTemplate, error)
	Update(ctx context.Context, id int, name, description string, value float64, limits [7]int) (*domain.ChoreTemplate, error)
	Toggle(ctx context.Context, id int) (*domain.ChoreTemplate, error)
	ListAll(ctx context.Context) ([]domain.ChoreTemplate, error)
	ListActive(ctx context.Context) ([]domain.ChoreTemplate, error)
}

type ChoreHandler struct {
	choreService Service
}

func New(choreService Service) *ChoreHandler {
	return &ChoreHandler{
		choreService: choreService,
	}
}

func toResponse(tpl *domain.ChoreTemplate) dto.ChoreResponseDTO {
	return dto.ChoreResponseDTO{
		ID:          tpl.ID,
		Name:        tpl.Name,
		Description: tpl.Description,
		Value:       tpl.Value,
		Limits:      tpl.Limits,
		Days:        quota.DayAbbreviations(tpl.Limits),
		Active:      tpl.Active,
	}
}

// ListChores godoc
//
//	@Summary		List chore templates
//	@Description	All templates, active and inactive, with day abbreviations
//	@Tags			Chores
//	@Produce		json
//	@Success		200	{array}		dto.ChoreResponseDTO
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/parent/chores [get]
func (h *ChoreHandler) ListChores(w http.ResponseWriter, r *http.Request) {
	templates, err := h.choreService.ListAll(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to list chores")
		return
	}
	resp := make([]dto.ChoreResponseDTO, 0, len(templates))
	for i := range templates {
		resp = append(resp, toResponse(&templates[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// CreateChore godoc
//
//	@Summary		Create a chore template
//	@Description	Define a chore with its value and per-weekday limits
//	@Tags			Chores
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ChoreRequestDTO	true	"Chore template"
//	@Success		200		{object}	dto.ChoreResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/parent/chores [post]
func (h *ChoreHandler) CreateChore(w http.ResponseWriter, r *http.Request) {
	var req dto.ChoreRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tpl, err := h.choreService.Create(r.Context(), req.Name, req.Description, req.Value, req.Limits)
	if err != nil {
		if errors.Is(err, choreservice.ErrInvalidChore) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create chore")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(tpl))
}

// UpdateChore godoc
//
//	@Summary		Edit a chore template
//	@Description	Replace a template's name, description, value and limits
//	@Tags			Chores
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Template id"
//	@Param			request	body		dto.ChoreRequestDTO	true	"Chore template"
//	@Success		200		{object}	dto.ChoreResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Chore not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/parent/chores/{id} [put]
func (h *ChoreHandler) UpdateChore(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid chore id")
		return
	}
	var req dto.ChoreRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	tpl, err := h.choreService.Update(r.Context(), id, req.Name, req.Description, req.Value, req.Limits)
	if err != nil {
		switch {
		case errors.Is(err, choreservice.ErrInvalidChore):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, choreservice.ErrChoreNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update chore")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(tpl))
}

// ToggleChore godoc
//
//	@Summary		Toggle a chore template
//	@Description	Flip a template between active and inactive
//	@Tags			Chores
//	@Produce		json
//	@Param			id	path		int	true	"Template id"
//	@Success		200	{object}	dto.ChoreResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid chore id"
//	@Failure		404	{object}	utils.Response	"Chore not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/parent/chores/{id}/toggle [post]
func (h *ChoreHandler) ToggleChore(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid chore id")
		return
	}
	tpl, err := h.choreService.Toggle(r.Context(), id)
	if err != nil {
		if errors.Is(err, choreservice.ErrChoreNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to toggle chore")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(tpl))
}
