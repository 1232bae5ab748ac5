package testutil

import (
	"testing"

	"github.com/returnlens/Annualized-Return-Backend/internal/repository"
	"github.com/returnlens/Annualized-Return-Backend/internal/service"
)

// Chart dimensions used in tests; smaller than production defaults to keep
// rendering fast.
const (
	TestChartWidth  = 400
	TestChartHeight = 300
)

func NewTestCalculationService(t *testing.T) *service.CalculationService {
	t.Helper()
	return service.NewCalculationService()
}

func NewTestChartService(t *testing.T) *service.ChartService {
	t.Helper()
	return service.NewChartService(TestChartWidth, TestChartHeight)
}

func NewTestSessionService(t *testing.T) *service.SessionService {
	t.Helper()
	return service.NewSessionService(repository.NewSessionRepository())
}
