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

type PgxDestinationRepository struct {
	BaseRepository
}

// newPgxDestinationRepository creates a new repository for destination data.
func newPgxDestinationRepository(pool *pgxpool.Pool) portsrepo.DestinationRepositoryFacade {
	return &PgxDestinationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.DestinationRepositoryFacade = (*PgxDestinationRepository)(nil)

const destinationColumns = `destination_id, name, description, activities, start_date, end_date,
	photos, created_at, updated_at`

func (r *PgxDestinationRepository) getDestinations(ctx context.Context, filterQuery string, args ...any) ([]domain.Destination, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+destinationColumns+` FROM destinations `+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to query destinations", err)
	}
	defer rows.Close()

	modelDestinations, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Destination])
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to collect destination rows", err)
	}
	return mapping.ToDomainDestinationSlice(modelDestinations), nil
}

func (r *PgxDestinationRepository) FindDestinationByID(ctx context.Context, destinationID string) (*domain.Destination, error) {
	destinations, err := r.getDestinations(ctx, `WHERE destination_id = $1`, destinationID)
	if err != nil {
		return nil, err
	}
	if len(destinations) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &destinations[0], nil
}

func (r *PgxDestinationRepository) FindDestinationsByIDs(ctx context.Context, destinationIDs []string) (map[string]domain.Destination, error) {
	found := make(map[string]domain.Destination, len(destinationIDs))
	if len(destinationIDs) == 0 {
		return found, nil
	}
	destinations, err := r.getDestinations(ctx, `WHERE destination_id = ANY($1)`, destinationIDs)
	if err != nil {
		return nil, err
	}
	for _, d := range destinations {
		found[d.DestinationID] = d
	}
	return found, nil
}

func (r *PgxDestinationRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	return r.getDestinations(ctx, `ORDER BY name, destination_id`)
}

func (r *PgxDestinationRepository) SaveDestination(ctx context.Context, destination domain.Destination) error {
	m := mapping.ToModelDestination(destination)
	query := `
		INSERT INTO destinations (` + destinationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DestinationID, m.Name, m.Description, m.Activities, m.StartDate, m.EndDate,
		m.Photos, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return apperrors.NewAppError(http.StatusConflict, "destination ID "+m.DestinationID+" already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to save destination "+m.DestinationID, err)
	}
	return nil
}

func (r *PgxDestinationRepository) UpdateDestination(ctx context.Context, destination domain.Destination) error {
	m := mapping.ToModelDestination(destination)
	query := `
		UPDATE destinations SET
			name = $2, description = $3, activities = $4, start_date = $5,
			end_date = $6, photos = $7, updated_at = $8
		WHERE destination_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.DestinationID, m.Name, m.Description, m.Activities, m.StartDate, m.EndDate, m.Photos, m.UpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to update destination "+m.DestinationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDestinationRepository) DeleteDestination(ctx context.Context, destinationID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM destinations WHERE destination_id = $1;`, destinationID)
	if err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "failed to delete destination "+destinationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
