package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/decalage/internal/app"
	"github.com/alexanderramin/decalage/internal/domain"
	"github.com/alexanderramin/decalage/internal/missed"
	"github.com/alexanderramin/decalage/internal/repository"
)

type calculatorService struct {
	days     repository.DaySlotRepo
	sessions repository.SessionRepo
	loc      *time.Location
	observer UseCaseObserver
}

// NewCalculatorService wires the calculation use case. loc is the zone in
// which selected day/hour pairs are interpreted; nil means time.Local.
func NewCalculatorService(
	days repository.DaySlotRepo,
	sessions repository.SessionRepo,
	loc *time.Location,
	observers ...UseCaseObserver,
) CalculatorService {
	if loc == nil {
		loc = time.Local
	}
	return &calculatorService{
		days:     days,
		sessions: sessions,
		loc:      loc,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *calculatorService) Calculate(ctx context.Context, req app.CalculateRequest) (resp *app.CalculateResponse, err error) {
	fields := map[string]any{
		"start_day": req.StartDay,
		"end_day":   req.EndDay,
	}
	defer observe(ctx, s.observer, "calculate", time.Now(), fields, &err)

	days, err := s.lookupDays(ctx, req.StartDay, req.EndDay)
	if err != nil {
		return nil, err
	}

	window, err := missed.ResolveWindow(days, missed.Selection{
		StartDay:  req.StartDay,
		StartHour: req.StartHour,
		EndDay:    req.EndDay,
		EndHour:   req.EndHour,
	}, s.loc)
	if err != nil {
		return nil, toCalcError(err)
	}

	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}

	totals := missed.Accumulate(window, sessions)
	resp = &app.CalculateResponse{
		Window:       window,
		Totals:       totals,
		GraphHours:   totals.GraphHours(),
		RushHours:    totals.RushHours(),
		SessionCount: len(sessions),
		Overlapping:  len(missed.Overlapping(window, sessions)),
	}
	fields["graph_min"] = totals.GraphMinutes
	fields["rush_min"] = totals.RushMinutes
	return resp, nil
}

// lookupDays fetches the slots for the given labels. Empty and unknown labels
// are skipped so window resolution reports them as missing.
func (s *calculatorService) lookupDays(ctx context.Context, labels ...string) ([]*domain.DaySlot, error) {
	days := make([]*domain.DaySlot, 0, len(labels))
	for _, label := range labels {
		if label == "" {
			continue
		}
		d, err := s.days.GetByLabel(ctx, label)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading day %q: %w", label, err)
		}
		days = append(days, d)
	}
	return days, nil
}

// toCalcError maps window resolution failures onto user-facing errors.
func toCalcError(err error) error {
	switch {
	case errors.Is(err, missed.ErrMissingDay):
		return &app.CalcError{Code: app.CalcErrMissingDay, Message: app.MissingDayMessage}
	case errors.Is(err, missed.ErrInvalidHour):
		return &app.CalcError{Code: app.CalcErrInvalidHour, Message: err.Error()}
	default:
		return err
	}
}
