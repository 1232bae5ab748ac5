package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/returnlens/Annualized-Return-Backend/internal/model"
)

// invalidCalculationText is shown wherever a result component is undefined.
const invalidCalculationText = "Invalid calculation"

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// ResultResponse is the JSON shape of a completed calculation. Numeric
// fields are null when the corresponding component is undefined; display
// strings carry the 3-decimal percentage or the invalid-calculation text.
type ResultResponse struct {
	AnnualizedReturn           *float64           `json:"annualizedReturn"`
	LogReturn                  *float64           `json:"logReturn"`
	AnnualizedLogReturn        *float64           `json:"annualizedLogReturn"`
	IsValidAnnualized          bool               `json:"isValidAnnualized"`
	IsValidLog                 bool               `json:"isValidLog"`
	FrequencyDescription       string             `json:"frequencyDescription"`
	AnnualizedReturnDisplay    string             `json:"annualizedReturnDisplay"`
	AnnualizedLogReturnDisplay string             `json:"annualizedLogReturnDisplay"`
	Formulas                   []string           `json:"formulas"`
	Chart                      []model.ChartEntry `json:"chart"`
}

// buildResultResponse formats a calculation result for display. It only
// formats: all numbers come straight from the result record.
func buildResultResponse(in model.InputState, res model.CalculationResult, chart []model.ChartEntry) ResultResponse {
	resp := ResultResponse{
		IsValidAnnualized:          res.IsValidAnnualized,
		IsValidLog:                 res.IsValidLog,
		FrequencyDescription:       res.FrequencyDescription,
		AnnualizedReturnDisplay:    invalidCalculationText,
		AnnualizedLogReturnDisplay: invalidCalculationText,
		Formulas:                   formulaLines(in, res),
		Chart:                      chart,
	}

	if res.IsValidAnnualized {
		v := res.AnnualizedReturn
		resp.AnnualizedReturn = &v
		resp.AnnualizedReturnDisplay = formatPercent(v)
	}
	if res.IsValidLog {
		l, al := res.LogReturn, res.AnnualizedLogReturn
		resp.LogReturn = &l
		resp.AnnualizedLogReturn = &al
		resp.AnnualizedLogReturnDisplay = formatPercent(al)
	}

	return resp
}

// formatPercent renders a decimal rate as a percentage with 3 decimals.
func formatPercent(v float64) string {
	return fmt.Sprintf("%.3f%%", v*100)
}

// formulaLines restates both formulas with the submitted values
// substituted, one line per result component. Undefined components get no
// line.
func formulaLines(in model.InputState, res model.CalculationResult) []string {
	returnDecimal := in.TotalReturnPercent / 100
	freq := in.PeriodType.Frequency()

	lines := make([]string, 0, 2)
	if res.IsValidAnnualized {
		lines = append(lines, fmt.Sprintf(
			"annualized return = (1 + %.4f)^(%g / %g) - 1 = %s",
			returnDecimal, freq, in.Periods, formatPercent(res.AnnualizedReturn),
		))
	}
	if res.IsValidLog {
		lines = append(lines, fmt.Sprintf(
			"annualized log return = ln(1 + %.4f) * (%g / %g) = %s",
			returnDecimal, freq, in.Periods, formatPercent(res.AnnualizedLogReturn),
		))
	}
	return lines
}
