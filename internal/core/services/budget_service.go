package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/SscSPs/travel_planner_app/internal/dto"
	"github.com/google/uuid"
)

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
	tripRepo   portsrepo.TripReader
	now        func() time.Time
}

// NewBudgetService creates a ledger service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepositoryFacade, tripRepo portsrepo.TripReader) portssvc.BudgetSvcFacade {
	return &budgetService{
		budgetRepo: budgetRepo,
		tripRepo:   tripRepo,
		now:        time.Now,
	}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

func (s *budgetService) CreateBudgetEntry(ctx context.Context, tripID string, req dto.CreateBudgetRequest) (*domain.BudgetEntry, error) {
	if req.Amount == nil {
		return nil, apperrors.NewValidationError("amount is required")
	}

	entry := domain.BudgetEntry{
		BudgetID:    uuid.NewString(),
		TripID:      tripID,
		Category:    req.Category,
		Amount:      *req.Amount,
		Description: req.Description,
		Date:        s.now().UTC(),
	}
	if d := req.Date.Ptr(); d != nil {
		entry.Date = *d
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.tripRepo.FindTripByID(ctx, tripID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("trip not found")
		}
		s.LogError(ctx, err, "Failed to load trip for budget entry", slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to load trip %s: %w", tripID, err)
	}

	if err := s.budgetRepo.SaveBudgetEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save budget entry",
			slog.String("trip_id", tripID),
			slog.String("budget_id", entry.BudgetID))
		return nil, fmt.Errorf("failed to save budget entry: %w", err)
	}

	s.LogInfo(ctx, "Budget entry created",
		slog.String("trip_id", tripID),
		slog.String("budget_id", entry.BudgetID),
		slog.String("category", string(entry.Category)),
		slog.String("amount", entry.Amount.String()))
	return &entry, nil
}

func (s *budgetService) ListBudgetEntries(ctx context.Context, tripID string) ([]domain.BudgetEntry, error) {
	entries, err := s.budgetRepo.ListBudgetEntriesByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budget entries", slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to list budget entries: %w", err)
	}
	if entries == nil {
		return []domain.BudgetEntry{}, nil
	}
	return entries, nil
}

func (s *budgetService) DeleteBudgetEntry(ctx context.Context, tripID, budgetID string) (*domain.BudgetEntry, error) {
	entry, err := s.budgetRepo.FindBudgetEntryByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("budget not found")
		}
		return nil, fmt.Errorf("failed to load budget entry %s: %w", budgetID, err)
	}
	if entry.TripID != tripID {
		s.LogWarn(ctx, nil, "Budget entry belongs to another trip",
			slog.String("budget_id", budgetID),
			slog.String("requested_trip_id", tripID),
			slog.String("owner_trip_id", entry.TripID))
		return nil, apperrors.NewNotFoundError("budget not found")
	}

	deleted, err := s.budgetRepo.DeleteBudgetEntry(ctx, budgetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("budget not found")
		}
		s.LogError(ctx, err, "Failed to delete budget entry", slog.String("budget_id", budgetID))
		return nil, fmt.Errorf("failed to delete budget entry: %w", err)
	}

	s.LogInfo(ctx, "Budget entry deleted", slog.String("trip_id", tripID), slog.String("budget_id", budgetID))
	return deleted, nil
}
