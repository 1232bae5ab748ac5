package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/returnlens/Annualized-Return-Backend/internal/api/request"
	"github.com/returnlens/Annualized-Return-Backend/internal/api/response"
	"github.com/returnlens/Annualized-Return-Backend/internal/apperrors"
	"github.com/returnlens/Annualized-Return-Backend/internal/model"
	"github.com/returnlens/Annualized-Return-Backend/internal/service"
	"github.com/returnlens/Annualized-Return-Backend/internal/validation"
)

// CalculationHandler handles stateless calculation requests
type CalculationHandler struct {
	calculationService *service.CalculationService
	chartService       *service.ChartService
}

// NewCalculationHandler creates a new CalculationHandler
func NewCalculationHandler(calculationService *service.CalculationService, chartService *service.ChartService) *CalculationHandler {
	return &CalculationHandler{
		calculationService: calculationService,
		chartService:       chartService,
	}
}

// CalculationResponse pairs the resolved inputs with the formatted result.
type CalculationResponse struct {
	Input  model.InputState `json:"input"`
	Result ResultResponse   `json:"result"`
}

// Calculate handles GET requests with the inputs in query parameters.
//
// Endpoint: GET /api/calculation?total_return=15&periods=12&period_type=monthly
// Response: 200 OK with CalculationResponse
// Error: 422 Unprocessable Entity with the ordered validation messages
func (h *CalculationHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	in := request.ParseCalculationQuery(r.URL.Query())
	h.respond(w, in)
}

// CalculateBody handles POST requests with the inputs in a JSON body.
// Absent or malformed fields take the same fallbacks as the query form.
//
// Endpoint: POST /api/calculation
// Response: 200 OK with CalculationResponse
// Error: 400 Bad Request on an unreadable body, 422 on validation failure
func (h *CalculationHandler) CalculateBody(w http.ResponseWriter, r *http.Request) {
	var req request.CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	h.respond(w, req.InputState())
}

// Chart renders the comparison bar chart for the given inputs as a PNG.
//
// Endpoint: GET /api/calculation/chart?total_return=15&periods=12&period_type=monthly
// Response: 200 OK, image/png
// Error: 422 on validation failure or when no result component is valid
func (h *CalculationHandler) Chart(w http.ResponseWriter, r *http.Request) {
	in := request.ParseCalculationQuery(r.URL.Query())

	if errs := validation.ValidateInputs(in.TotalReturnPercent, in.Periods); len(errs) > 0 {
		response.RespondError(w, http.StatusUnprocessableEntity, "validation failed", errs)
		return
	}

	result := h.calculationService.Calculate(in)
	entries := h.chartService.BuildSeries(result)

	img, err := h.chartService.Render(entries, result.FrequencyDescription)
	if err != nil {
		if errors.Is(err, apperrors.ErrNothingToChart) {
			response.RespondError(w, http.StatusUnprocessableEntity, "nothing to chart", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to render chart", err.Error())
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img); err != nil {
		// Client went away mid-write; nothing to recover.
		return
	}
}

// respond validates the resolved inputs and either returns the ordered
// error messages or computes and formats the result. The result only
// exists when validation passes.
func (h *CalculationHandler) respond(w http.ResponseWriter, in model.InputState) {
	if errs := validation.ValidateInputs(in.TotalReturnPercent, in.Periods); len(errs) > 0 {
		response.RespondError(w, http.StatusUnprocessableEntity, "validation failed", errs)
		return
	}

	result := h.calculationService.Calculate(in)
	respondJSON(w, http.StatusOK, CalculationResponse{
		Input:  in,
		Result: buildResultResponse(in, result, h.chartService.BuildSeries(result)),
	})
}
