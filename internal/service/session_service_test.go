package service

import (
	"errors"
	"testing"

	"github.com/returnlens/Annualized-Return-Backend/internal/apperrors"
	"github.com/returnlens/Annualized-Return-Backend/internal/model"
	"github.com/returnlens/Annualized-Return-Backend/internal/repository"
)

func TestSessionService(t *testing.T) {
	newService := func(t *testing.T) *SessionService {
		t.Helper()
		return NewSessionService(repository.NewSessionRepository())
	}

	t.Run("create starts from the form defaults", func(t *testing.T) {
		svc := newService(t)

		session := svc.Create()
		if session.ID == "" {
			t.Fatal("Expected a session ID")
		}
		if session.Inputs != model.DefaultInputState() {
			t.Errorf("Expected default inputs, got %+v", session.Inputs)
		}
		if session.Inputs.TotalReturnPercent != 15 || session.Inputs.Periods != 12 || session.Inputs.PeriodType != model.PeriodMonthly {
			t.Errorf("Defaults drifted: %+v", session.Inputs)
		}
	})

	t.Run("sessions are independent", func(t *testing.T) {
		svc := newService(t)

		a := svc.Create()
		b := svc.Create()
		if a.ID == b.ID {
			t.Fatal("Expected distinct session IDs")
		}

		_, err := svc.UpdateInputs(a.ID, model.InputState{TotalReturnPercent: 50, Periods: 24, PeriodType: model.PeriodMonthly})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		got, err := svc.Get(b.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Inputs != model.DefaultInputState() {
			t.Errorf("Session b should be untouched, got %+v", got.Inputs)
		}
	})

	t.Run("update replaces the inputs wholesale", func(t *testing.T) {
		svc := newService(t)
		session := svc.Create()

		updated, err := svc.UpdateInputs(session.ID, model.InputState{TotalReturnPercent: -50, Periods: 36, PeriodType: model.PeriodWeekly})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Inputs.TotalReturnPercent != -50 || updated.Inputs.Periods != 36 || updated.Inputs.PeriodType != model.PeriodWeekly {
			t.Errorf("Unexpected inputs after update: %+v", updated.Inputs)
		}
		if updated.UpdatedAt.Before(session.UpdatedAt) {
			t.Error("Expected UpdatedAt to advance")
		}
	})

	t.Run("invalid inputs are stored, not rejected", func(t *testing.T) {
		// The session mirrors what the user typed; validation messages are
		// the presenter's concern.
		svc := newService(t)
		session := svc.Create()

		updated, err := svc.UpdateInputs(session.ID, model.InputState{TotalReturnPercent: -150, Periods: 0, PeriodType: model.PeriodDaily})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Inputs.TotalReturnPercent != -150 {
			t.Errorf("Expected stored inputs, got %+v", updated.Inputs)
		}
	})

	t.Run("delete ends the session", func(t *testing.T) {
		svc := newService(t)
		session := svc.Create()

		if err := svc.Delete(session.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := svc.Get(session.ID); !errors.Is(err, apperrors.ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("unknown session IDs report not found", func(t *testing.T) {
		svc := newService(t)

		if _, err := svc.Get("ba3866bc-0000-0000-0000-000000000000"); !errors.Is(err, apperrors.ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound from Get, got %v", err)
		}
		if _, err := svc.UpdateInputs("ba3866bc-0000-0000-0000-000000000000", model.DefaultInputState()); !errors.Is(err, apperrors.ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound from UpdateInputs, got %v", err)
		}
		if err := svc.Delete("ba3866bc-0000-0000-0000-000000000000"); !errors.Is(err, apperrors.ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound from Delete, got %v", err)
		}
	})
}
