package service

import (
	"fmt"
	"math"

	"github.com/returnlens/Annualized-Return-Backend/internal/model"
)

// CalculationService derives annualized rates from a cumulative return.
// It is stateless: identical inputs always produce identical results.
type CalculationService struct{}

// NewCalculationService creates a new CalculationService
func NewCalculationService() *CalculationService {
	return &CalculationService{}
}

// Calculate converts the cumulative return over the observation window into
// an annualized (geometric) rate and a continuously compounded rate.
//
// The math:
//   - annualizedReturn = (1 + r)^(freq/periods) - 1, the constant per-year
//     compound rate that reproduces the observed total return
//   - logReturn = ln(1 + r), the continuously compounded total return
//   - annualizedLogReturn = logReturn * (freq/periods); log returns are
//     additive across time so annualization is linear
//
// where r is the total return as a decimal and freq is the number of
// periods per calendar year for the selected period type.
//
// A total return at or below -100% makes both formulas undefined (log of a
// non-positive number, negative base with a fractional exponent). That case
// returns NaN fields with both validity flags false instead of letting
// NaN/Inf leak into callers unflagged. Validation keeps such inputs out of
// the normal path; the guard covers callers that bypass it.
func (s *CalculationService) Calculate(in model.InputState) model.CalculationResult {
	returnDecimal := in.TotalReturnPercent / 100
	freq := in.PeriodType.Frequency()

	// Domain guard: growth factor must be positive.
	if 1+returnDecimal <= 0 {
		return model.CalculationResult{
			AnnualizedReturn:    math.NaN(),
			LogReturn:           math.NaN(),
			AnnualizedLogReturn: math.NaN(),
		}
	}

	periodsPerYear := freq / in.Periods
	annualized := math.Pow(1+returnDecimal, periodsPerYear) - 1
	logReturn := math.Log(1 + returnDecimal)
	annualizedLog := logReturn * periodsPerYear

	// Validation rejects periods <= 0 upstream. If such a value still gets
	// here, periodsPerYear is Inf and the results are flagged invalid
	// rather than crashing or surfacing garbage. The two log fields share
	// one flag: they are defined together or not at all.
	return model.CalculationResult{
		AnnualizedReturn:     annualized,
		LogReturn:            logReturn,
		AnnualizedLogReturn:  annualizedLog,
		IsValidAnnualized:    isFinite(annualized),
		IsValidLog:           isFinite(logReturn) && isFinite(annualizedLog),
		FrequencyDescription: fmt.Sprintf("%g periods per year", freq),
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
