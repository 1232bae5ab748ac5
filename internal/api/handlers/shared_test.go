package handlers

import (
	"math"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/returnlens/Annualized-Return-Backend/internal/model"
)

// TestRespondJSON tests the respondJSON helper function.
// This is an internal test (package handlers, not handlers_test) because
// respondJSON is unexported.
func TestRespondJSON(t *testing.T) {
	t.Run("sets content-type and status code correctly", func(t *testing.T) {
		w := httptest.NewRecorder()
		data := map[string]string{"message": "success"}

		respondJSON(w, 200, data)

		if w.Code != 200 {
			t.Errorf("Expected status 200, got %d", w.Code)
		}

		if w.Header().Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type 'application/json', got '%s'", w.Header().Get("Content-Type"))
		}
	})

	t.Run("handles nil data without error", func(t *testing.T) {
		w := httptest.NewRecorder()

		respondJSON(w, 204, nil)

		if w.Code != 204 {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
	})

	t.Run("handles un-encodable data gracefully", func(t *testing.T) {
		w := httptest.NewRecorder()

		// Channels cannot be JSON encoded
		data := map[string]interface{}{
			"channel": make(chan int),
		}

		// Should not panic, just log the error
		respondJSON(w, 200, data)

		// Status should still be set even if encoding fails
		if w.Code != 200 {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0.15, "15.000%"},
		{0.13976, "13.976%"},
		{0, "0.000%"},
		{-0.295, "-29.500%"},
		{1.234567, "123.457%"},
	}

	for _, tc := range cases {
		if got := formatPercent(tc.value); got != tc.want {
			t.Errorf("formatPercent(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestBuildResultResponse(t *testing.T) {
	in := model.InputState{TotalReturnPercent: 15, Periods: 12, PeriodType: model.PeriodMonthly}

	t.Run("valid result exposes numbers, displays and formulas", func(t *testing.T) {
		res := model.CalculationResult{
			AnnualizedReturn:     0.15,
			LogReturn:            0.13976,
			AnnualizedLogReturn:  0.13976,
			IsValidAnnualized:    true,
			IsValidLog:           true,
			FrequencyDescription: "12 periods per year",
		}

		resp := buildResultResponse(in, res, nil)

		if resp.AnnualizedReturn == nil || *resp.AnnualizedReturn != 0.15 {
			t.Errorf("Expected annualized return 0.15, got %v", resp.AnnualizedReturn)
		}
		if resp.AnnualizedReturnDisplay != "15.000%" {
			t.Errorf("Expected '15.000%%', got %q", resp.AnnualizedReturnDisplay)
		}
		if len(resp.Formulas) != 2 {
			t.Fatalf("Expected two formula lines, got %v", resp.Formulas)
		}
		if !strings.Contains(resp.Formulas[0], "(1 + 0.1500)^(12 / 12) - 1") {
			t.Errorf("Formula does not restate the substituted values: %q", resp.Formulas[0])
		}
		if !strings.Contains(resp.Formulas[1], "ln(1 + 0.1500)") {
			t.Errorf("Log formula does not restate the substituted values: %q", resp.Formulas[1])
		}
	})

	t.Run("invalid result falls back to the invalid-calculation text", func(t *testing.T) {
		res := model.CalculationResult{
			AnnualizedReturn:    math.NaN(),
			LogReturn:           math.NaN(),
			AnnualizedLogReturn: math.NaN(),
		}

		resp := buildResultResponse(in, res, nil)

		if resp.AnnualizedReturn != nil || resp.LogReturn != nil || resp.AnnualizedLogReturn != nil {
			t.Error("Expected nil numeric fields for an invalid result")
		}
		if resp.AnnualizedReturnDisplay != invalidCalculationText {
			t.Errorf("Expected %q, got %q", invalidCalculationText, resp.AnnualizedReturnDisplay)
		}
		if resp.AnnualizedLogReturnDisplay != invalidCalculationText {
			t.Errorf("Expected %q, got %q", invalidCalculationText, resp.AnnualizedLogReturnDisplay)
		}
		if len(resp.Formulas) != 0 {
			t.Errorf("Expected no formula lines, got %v", resp.Formulas)
		}
	})
}
