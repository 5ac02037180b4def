package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// budgetSummaryService implements the BudgetSummarySvc interface
type budgetSummaryService struct {
	BaseService
	tripRepo   portsrepo.TripReader
	budgetRepo portsrepo.BudgetReader
	converter  portssvc.CurrencyConverterSvc
}

// NewBudgetSummaryService creates the service that aggregates a trip's ledger.
func NewBudgetSummaryService(tripRepo portsrepo.TripReader, budgetRepo portsrepo.BudgetReader, converter portssvc.CurrencyConverterSvc) portssvc.BudgetSummarySvc {
	return &budgetSummaryService{
		tripRepo:   tripRepo,
		budgetRepo: budgetRepo,
		converter:  converter,
	}
}

var _ portssvc.BudgetSummarySvc = (*budgetSummaryService)(nil)

func (s *budgetSummaryService) Summarize(ctx context.Context, tripID, targetCurrency string) (*domain.BudgetSummary, error) {
	trip, entries, err := s.loadTripAndLedger(ctx, tripID)
	if err != nil {
		return nil, err
	}

	target, err := normalizeTarget(targetCurrency)
	if err != nil {
		return nil, err
	}

	summary := domain.SummarizeLedger(*trip, entries)
	if target == "" || target == domain.ReferenceCurrency {
		return &summary, nil
	}

	conversion, err := s.converter.ConvertWithFallback(ctx, decimal.NewFromInt(1), domain.ReferenceCurrency, target)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			return nil, err
		}
		s.LogWarn(ctx, err, "Budget summary returned without conversion",
			slog.String("trip_id", tripID), slog.String("currency", target))
		summary.Warning = unavailableWarning(target)
		return &summary, nil
	}

	summary.ConvertedValues = summary.Convert(target, conversion.Rate, conversion.Source)
	if conversion.Source == domain.RateSourceFallback {
		summary.Warning = fallbackWarning(target)
	}
	return &summary, nil
}

func (s *budgetSummaryService) ConvertTripBudget(ctx context.Context, tripID, currency string) (*domain.TripBudgetConversion, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		return nil, tripLoadError(err, tripID)
	}

	target, err := normalizeTarget(currency)
	if err != nil {
		return nil, err
	}
	if target == "" {
		target = domain.ReferenceCurrency
	}

	result := &domain.TripBudgetConversion{TripID: trip.TripID, Budget: trip.Budget, Currency: target}
	conversion, err := s.converter.ConvertWithFallback(ctx, trip.Budget, domain.ReferenceCurrency, target)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			return nil, err
		}
		s.LogWarn(ctx, err, "Trip budget returned without conversion",
			slog.String("trip_id", tripID), slog.String("currency", target))
		result.Warning = unavailableWarning(target)
		return result, nil
	}

	result.Conversion = conversion
	if conversion.Source == domain.RateSourceFallback {
		result.Warning = fallbackWarning(target)
	}
	return result, nil
}

// loadTripAndLedger reads the trip and its entries concurrently. Neither
// read cancels the other, so a missing trip is always reported as such even
// when the ledger read fails too.
func (s *budgetSummaryService) loadTripAndLedger(ctx context.Context, tripID string) (*domain.Trip, []domain.BudgetEntry, error) {
	var (
		g          errgroup.Group
		trip       *domain.Trip
		entries    []domain.BudgetEntry
		tripErr    error
		entriesErr error
	)
	g.Go(func() error {
		trip, tripErr = s.tripRepo.FindTripByID(ctx, tripID)
		return tripErr
	})
	g.Go(func() error {
		entries, entriesErr = s.budgetRepo.ListBudgetEntriesByTrip(ctx, tripID)
		return entriesErr
	})
	_ = g.Wait()

	if tripErr != nil {
		return nil, nil, tripLoadError(tripErr, tripID)
	}
	if entriesErr != nil {
		s.LogError(ctx, entriesErr, "Failed to load budget entries", slog.String("trip_id", tripID))
		return nil, nil, fmt.Errorf("failed to load budget entries of trip %s: %w", tripID, entriesErr)
	}
	return trip, entries, nil
}

func normalizeTarget(code string) (string, error) {
	target := domain.NormalizeCurrencyCode(code)
	if target != "" && !domain.IsSupportedCurrency(target) {
		return "", apperrors.NewUnsupportedCurrencyError(target)
	}
	return target, nil
}

func tripLoadError(err error, tripID string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewNotFoundError("trip not found")
	}
	return fmt.Errorf("failed to load trip %s: %w", tripID, err)
}

func unavailableWarning(currency string) string {
	return fmt.Sprintf("exchange rate to %s is currently unavailable; amounts are shown in %s only", currency, domain.ReferenceCurrency)
}

func fallbackWarning(currency string) string {
	return fmt.Sprintf("live exchange rate to %s is unavailable; converted using an approximate fallback rate", currency)
}
