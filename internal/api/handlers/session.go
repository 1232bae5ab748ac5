package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/returnlens/Annualized-Return-Backend/internal/api/request"
	"github.com/returnlens/Annualized-Return-Backend/internal/api/response"
	"github.com/returnlens/Annualized-Return-Backend/internal/apperrors"
	"github.com/returnlens/Annualized-Return-Backend/internal/model"
	"github.com/returnlens/Annualized-Return-Backend/internal/service"
	"github.com/returnlens/Annualized-Return-Backend/internal/validation"
)

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	sessionService     *service.SessionService
	calculationService *service.CalculationService
	chartService       *service.ChartService
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessionService *service.SessionService, calculationService *service.CalculationService, chartService *service.ChartService) *SessionHandler {
	return &SessionHandler{
		sessionService:     sessionService,
		calculationService: calculationService,
		chartService:       chartService,
	}
}

// SessionResponse carries a session's inputs together with whatever the
// presenter can currently show: validation messages when the inputs are
// unusable, otherwise the formatted result. The two are mutually exclusive.
type SessionResponse struct {
	ID        string           `json:"id"`
	Inputs    model.InputState `json:"inputs"`
	Errors    []string         `json:"errors,omitempty"`
	Result    *ResultResponse  `json:"result,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// Create starts a new session with the default inputs (15% over 12
// monthly periods) and returns its computed state.
//
// Endpoint: POST /api/session
// Response: 201 Created with SessionResponse
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	session := h.sessionService.Create()
	respondJSON(w, http.StatusCreated, h.buildSessionResponse(session))
}

// Get returns the current state of a session.
//
// Endpoint: GET /api/session/{uuid}
// Response: 200 OK with SessionResponse
// Error: 404 Not Found for unknown session IDs
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionService.Get(chi.URLParam(r, "uuid"))
	if err != nil {
		h.respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.buildSessionResponse(session))
}

// UpdateInputs replaces the session's inputs and recomputes the result
// synchronously. Inputs that fail validation are stored and echoed back
// with the error messages; the result stays absent until they are fixed.
//
// Endpoint: PUT /api/session/{uuid}/inputs
// Response: 200 OK with the new SessionResponse
// Error: 400 on an unreadable body, 404 for unknown session IDs
func (h *SessionHandler) UpdateInputs(w http.ResponseWriter, r *http.Request) {
	var req request.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	session, err := h.sessionService.UpdateInputs(chi.URLParam(r, "uuid"), req.InputState())
	if err != nil {
		h.respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, h.buildSessionResponse(session))
}

// Delete ends a session.
//
// Endpoint: DELETE /api/session/{uuid}
// Response: 204 No Content
// Error: 404 Not Found for unknown session IDs
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionService.Delete(chi.URLParam(r, "uuid")); err != nil {
		h.respondSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// buildSessionResponse runs the validate-then-calculate pass over the
// session's inputs. The calculation result is only produced when the
// validation message list is empty.
func (h *SessionHandler) buildSessionResponse(session model.Session) SessionResponse {
	resp := SessionResponse{
		ID:        session.ID,
		Inputs:    session.Inputs,
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}

	if errs := validation.ValidateInputs(session.Inputs.TotalReturnPercent, session.Inputs.Periods); len(errs) > 0 {
		resp.Errors = errs
		return resp
	}

	result := h.calculationService.Calculate(session.Inputs)
	formatted := buildResultResponse(session.Inputs, result, h.chartService.BuildSeries(result))
	resp.Result = &formatted
	return resp
}

func (h *SessionHandler) respondSessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, apperrors.ErrSessionNotFound) {
		response.RespondError(w, http.StatusNotFound, "session not found", err.Error())
		return
	}
	response.RespondError(w, http.StatusInternalServerError, "session operation failed", err.Error())
}
