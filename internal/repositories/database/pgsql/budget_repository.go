package pgsql

import (
	"context"
	"net/http"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	"github.com/SscSPs/travel_planner_app/internal/models"
	"github.com/SscSPs/travel_planner_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBudgetRepository struct {
	BaseRepository
}

// newPgxBudgetRepository creates a new repository for the budget ledger.
func newPgxBudgetRepository(pool *pgxpool.Pool) portsrepo.BudgetRepositoryFacade {
	return &PgxBudgetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BudgetRepositoryFacade = (*PgxBudgetRepository)(nil)

const budgetColumns = `budget_id, trip_id, category, amount, description, entry_date`

func (r *PgxBudgetRepository) SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error {
	m := mapping.ToModelBudgetEntry(entry)
	query := `
		INSERT INTO budgets (` + budgetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.BudgetID, m.TripID, m.Category, m.Amount, m.Description, m.EntryDate)
	if err != nil {
		switch pgErrorCode(err) {
		case pgForeignKeyViolation:
			return apperrors.NewNotFoundError("trip not found")
		case pgUniqueViolation:
			return apperrors.NewAppError(http.StatusConflict, "budget ID "+m.BudgetID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save budget entry "+m.BudgetID, err)
	}
	return nil
}

func (r *PgxBudgetRepository) ListBudgetEntriesByTrip(ctx context.Context, tripID string) ([]domain.BudgetEntry, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE trip_id = $1 ORDER BY entry_date, created_at, budget_id;`
	rows, err := r.Pool.Query(ctx, query, tripID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query budget entries", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BudgetEntry])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect budget rows", err)
	}
	return mapping.ToDomainBudgetEntrySlice(modelEntries), nil
}

func (r *PgxBudgetRepository) FindBudgetEntryByID(ctx context.Context, budgetID string) (*domain.BudgetEntry, error) {
	query := `SELECT ` + budgetColumns + ` FROM budgets WHERE budget_id = $1;`
	rows, err := r.Pool.Query(ctx, query, budgetID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query budget entry", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.BudgetEntry])
	if err != nil {
		return nil, notFoundOr(err, "failed to read budget entry "+budgetID)
	}
	entry := mapping.ToDomainBudgetEntry(m)
	return &entry, nil
}

func (r *PgxBudgetRepository) DeleteBudgetEntry(ctx context.Context, budgetID string) (*domain.BudgetEntry, error) {
	query := `DELETE FROM budgets WHERE budget_id = $1 RETURNING ` + budgetColumns + `;`
	rows, err := r.Pool.Query(ctx, query, budgetID)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to delete budget entry", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.BudgetEntry])
	if err != nil {
		return nil, notFoundOr(err, "failed to delete budget entry "+budgetID)
	}
	entry := mapping.ToDomainBudgetEntry(m)
	return &entry, nil
}

func (r *PgxBudgetRepository) DeleteBudgetEntriesByTrip(ctx context.Context, tripID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM budgets WHERE trip_id = $1;`, tripID)
	if err != nil {
		return 0, apperrors.NewAppError(http.StatusInternalServerError, "failed to delete budget entries of trip "+tripID, err)
	}
	return tag.RowsAffected(), nil
}
