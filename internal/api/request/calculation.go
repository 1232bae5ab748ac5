package request

import (
	"math"
	"net/url"
	"strconv"

	"github.com/returnlens/Annualized-Return-Backend/internal/model"
)

// Fallback values substituted for malformed numeric entry. A broken number
// never propagates: the field silently takes its safe default before the
// inputs reach validation.
const (
	FallbackTotalReturn = 0
	FallbackPeriods     = 1
)

// CalculationRequest carries the calculator inputs as submitted in a JSON
// body. Fields are pointers so that absent and malformed fields can fall
// back to the defaults.
type CalculationRequest struct {
	TotalReturn *float64 `json:"totalReturn"`
	Periods     *float64 `json:"periods"`
	PeriodType  string   `json:"periodType"`
}

// InputState resolves the request into a complete input record, applying
// the fallback rules for anything missing or out of the enum.
func (req CalculationRequest) InputState() model.InputState {
	in := model.InputState{
		TotalReturnPercent: FallbackTotalReturn,
		Periods:            FallbackPeriods,
		PeriodType:         model.PeriodMonthly,
	}

	if req.TotalReturn != nil && isFinite(*req.TotalReturn) {
		in.TotalReturnPercent = *req.TotalReturn
	}
	if req.Periods != nil && isFinite(*req.Periods) {
		in.Periods = *req.Periods
	}
	if pt := model.PeriodType(req.PeriodType); pt.Valid() {
		in.PeriodType = pt
	}

	return in
}

// ParseCalculationQuery reads the calculator inputs from query parameters
// (total_return, periods, period_type). Non-numeric entry falls back to 0
// for the total return and 1 for the period count; an unknown period type
// falls back to monthly.
func ParseCalculationQuery(q url.Values) model.InputState {
	in := model.InputState{
		TotalReturnPercent: FallbackTotalReturn,
		Periods:            FallbackPeriods,
		PeriodType:         model.PeriodMonthly,
	}

	if v, err := strconv.ParseFloat(q.Get("total_return"), 64); err == nil && isFinite(v) {
		in.TotalReturnPercent = v
	}
	if v, err := strconv.ParseFloat(q.Get("periods"), 64); err == nil && isFinite(v) {
		in.Periods = v
	}
	if pt := model.PeriodType(q.Get("period_type")); pt.Valid() {
		in.PeriodType = pt
	}

	return in
}

// isFinite rejects the NaN/Inf spellings strconv accepts, which would
// otherwise slip past the range checks (every comparison with NaN is
// false).
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
